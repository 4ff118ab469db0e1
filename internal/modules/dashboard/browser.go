package dashboard

import (
	"github.com/shopspring/decimal"

	"servicehub/internal/domain"
)

// ServiceBrowser is the view state behind the service grid: the raw
// collection plus the current filter and page. Any filter or page-size
// change snaps back to page 1.
type ServiceBrowser struct {
	all      []domain.Service
	filter   ServiceFilter
	page     int
	pageSize int
}

func NewServiceBrowser(services []domain.Service) *ServiceBrowser {
	return &ServiceBrowser{
		all:      services,
		page:     1,
		pageSize: GridPageSize,
	}
}

func (b *ServiceBrowser) SetServices(services []domain.Service) {
	b.all = services
	b.page = 1
}

func (b *ServiceBrowser) SetQuery(q string) {
	b.filter.Query = q
	b.page = 1
}

func (b *ServiceBrowser) SetCategory(categoryID int64) {
	b.filter.CategoryID = categoryID
	b.page = 1
}

func (b *ServiceBrowser) SetPriceRange(min, max *decimal.Decimal) {
	b.filter.PriceMin = min
	b.filter.PriceMax = max
	b.page = 1
}

func (b *ServiceBrowser) SetPageSize(size int) {
	if size < 1 {
		size = GridPageSize
	}
	b.pageSize = size
	b.page = 1
}

func (b *ServiceBrowser) SetPage(page int) { b.page = page }

func (b *ServiceBrowser) Filtered() []domain.Service {
	return FilterServices(b.all, b.filter)
}

func (b *ServiceBrowser) Page() Page[domain.Service] {
	return Paginate(b.Filtered(), b.page, b.pageSize)
}
