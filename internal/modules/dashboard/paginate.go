package dashboard

// PageSizes are the selectable page sizes for tables; service grids default
// to GridPageSize.
var PageSizes = []int{10, 20, 50, 100}

const GridPageSize = 12

type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices items for one page. Pages are 1-based; out-of-range page
// numbers are clamped, so concatenating pages 1..TotalPages always
// reproduces items in order with nothing lost.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
