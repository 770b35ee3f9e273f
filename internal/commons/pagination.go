package commons

// Pagination is an offset/limit window over an already-ordered result set.
// Limit 0 means "through the end of the list".
type Pagination struct {
	Offset int
	Limit  int
}

// Paginate slices the list by the window. An offset past the end yields an
// empty slice, never an error.
func Paginate[T any](items []T, p Pagination) []T {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}

	return items[p.Offset:end]
}
