package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nums(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_Basics(t *testing.T) {
	p := Paginate(nums(25), 1, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.TotalItems)

	p = Paginate(nums(25), 3, 10)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Items)
}

func TestPaginate_ClampsOutOfRangePages(t *testing.T) {
	p := Paginate(nums(25), 99, 10)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Items)

	p = Paginate(nums(25), 0, 10)
	assert.Equal(t, 1, p.Number)

	p = Paginate(nums(25), -5, 10)
	assert.Equal(t, 1, p.Number)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]int{}, 1, 10)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
}

func TestPaginate_PageSizeFloor(t *testing.T) {
	p := Paginate(nums(3), 1, 0)
	assert.Equal(t, []int{1}, p.Items)
	assert.Equal(t, 3, p.TotalPages)
}

// Concatenating every page reproduces the input, for each selectable size.
func TestPaginate_PagesConcatenateToWhole(t *testing.T) {
	for _, total := range []int{0, 1, 11, 12, 13, 25, 100, 101} {
		items := nums(total)
		for _, size := range append(PageSizes, GridPageSize) {
			first := Paginate(items, 1, size)
			joined := make([]int, 0, total)
			for page := 1; page <= first.TotalPages; page++ {
				joined = append(joined, Paginate(items, page, size).Items...)
			}
			assert.Equal(t, items, joined, "total=%d size=%d", total, size)
		}
	}
}
