package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servicehub/internal/domain"
)

func manyServices(n int) []domain.Service {
	out := make([]domain.Service, n)
	for i := range out {
		out[i] = domain.Service{ID: int64(i + 1), Title: "Service", CategoryID: 1}
	}
	return out
}

func TestServiceBrowser_DefaultsToGridPage(t *testing.T) {
	b := NewServiceBrowser(manyServices(30))

	p := b.Page()
	assert.Equal(t, 1, p.Number)
	assert.Len(t, p.Items, GridPageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestServiceBrowser_FilterChangeResetsPage(t *testing.T) {
	services := manyServices(30)
	services[0].Title = "Deep Cleaning"
	b := NewServiceBrowser(services)

	b.SetPage(3)
	assert.Equal(t, 3, b.Page().Number)

	b.SetQuery("cleaning")
	p := b.Page()
	assert.Equal(t, 1, p.Number)
	assert.Len(t, p.Items, 1)
	assert.Equal(t, int64(1), p.Items[0].ID)
}

func TestServiceBrowser_CategoryAndPageSizeResetPage(t *testing.T) {
	b := NewServiceBrowser(manyServices(30))

	b.SetPage(2)
	b.SetCategory(1)
	assert.Equal(t, 1, b.Page().Number)

	b.SetPage(2)
	b.SetPageSize(10)
	p := b.Page()
	assert.Equal(t, 1, p.Number)
	assert.Len(t, p.Items, 10)
}

func TestServiceBrowser_PriceRangeResetsPage(t *testing.T) {
	b := NewServiceBrowser(manyServices(30))
	b.SetPage(3)

	b.SetPriceRange(dec("0"), dec("100"))
	assert.Equal(t, 1, b.Page().Number)
}

func TestServiceBrowser_ReloadResetsPage(t *testing.T) {
	b := NewServiceBrowser(manyServices(30))
	b.SetPage(3)

	b.SetServices(manyServices(5))
	p := b.Page()
	assert.Equal(t, 1, p.Number)
	assert.Len(t, p.Items, 5)
}

func TestServiceBrowser_BadPageSizeFallsBack(t *testing.T) {
	b := NewServiceBrowser(manyServices(30))
	b.SetPageSize(0)

	assert.Len(t, b.Page().Items, GridPageSize)
}
