package pagination

import "strconv"

// DefaultPerPage is the number of posts shown on every feed page.
const DefaultPerPage = 10

type Page[T any] struct {
	Items      []T
	Number     int
	PerPage    int
	TotalItems int64
	TotalPages int
}

// ParseNumber reads a ?page= query value. Absent or malformed values
// fall back to the first page.
func ParseNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}

// Clamp normalizes a requested page number against the total item count.
// Out-of-range requests land on the nearest valid page instead of failing.
func Clamp(number, perPage int, totalItems int64) int {
	if number < 1 {
		return 1
	}
	totalPages := TotalPages(perPage, totalItems)
	if number > totalPages {
		return totalPages
	}
	return number
}

func TotalPages(perPage int, totalItems int64) int {
	if totalItems <= 0 {
		return 1
	}
	pages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Offset converts a clamped page number to a query offset.
func Offset(number, perPage int) int {
	return (number - 1) * perPage
}

func NewPage[T any](items []T, number, perPage int, totalItems int64) *Page[T] {
	return &Page[T]{
		Items:      items,
		Number:     number,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: TotalPages(perPage, totalItems),
	}
}

func (p *Page[T]) HasPrev() bool { return p.Number > 1 }

func (p *Page[T]) HasNext() bool { return p.Number < p.TotalPages }

func (p *Page[T]) PrevNumber() int { return p.Number - 1 }

func (p *Page[T]) NextNumber() int { return p.Number + 1 }
