// Package pagination implements the console's client-side page slicing.
// The invariant: 1 <= page <= max(1, ceil(count/size)) after any sequence
// of operations.
package pagination

// Page is the pagination portion of a list view-model.
type Page struct {
	Number     int `json:"page"`
	TotalPages int `json:"totalPages"`
	Size       int `json:"pageSize"`
}

// TotalPages returns max(1, ceil(count/size)). An empty collection still
// has one (empty) page.
func TotalPages(count, size int) int {
	if size <= 0 {
		return 1
	}
	n := (count + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// New clamps the requested page number into the valid range for the
// collection.
func New(requested, count, size int) Page {
	total := TotalPages(count, size)
	if requested < 1 {
		requested = 1
	}
	if requested > total {
		requested = total
	}
	return Page{Number: requested, TotalPages: total, Size: size}
}

// Next advances one page; a no-op at the last page.
func (p Page) Next() Page {
	if p.Number < p.TotalPages {
		p.Number++
	}
	return p
}

// Prev goes back one page; a no-op at page 1.
func (p Page) Prev() Page {
	if p.Number > 1 {
		p.Number--
	}
	return p
}

// Slice returns the items of the current page.
func Slice[T any](items []T, p Page) []T {
	if p.Size <= 0 {
		return items
	}
	start := p.Size * (p.Number - 1)
	if start >= len(items) {
		return items[:0]
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
