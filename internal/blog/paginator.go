package blog

import (
	"math"
	"strconv"
	"strings"
)

// PageSize is the number of posts on every listing page.
const PageSize = 10

const lastPage = "last"

// ParsePage turns a raw page parameter into a page number. Missing or
// malformed values give the first page, "last" gives the last one.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == lastPage {
		return math.MaxInt32
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// Pager maps a page number onto a collection of known size. Page numbers past
// the end are clamped to the last page; an empty collection has one empty page.
type Pager struct {
	Number int
	Size   int
	Total  int
}

func NewPager(total, page, size int) Pager {
	if size < 1 {
		size = PageSize
	}
	if total < 0 {
		total = 0
	}

	p := Pager{Size: size, Total: total}
	p.Number = min(max(page, 1), p.TotalPages())

	return p
}

func (p Pager) TotalPages() int {
	if p.Total == 0 {
		return 1
	}

	return (p.Total + p.Size - 1) / p.Size
}

func (p Pager) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Pager) Limit() int {
	return p.Size
}

// Page is one page of an ordered collection.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	Total      int
	HasNext    bool
	HasPrev    bool
}

func NewPage[T any](p Pager, items []T) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return Page[T]{
		Items:      items,
		Number:     p.Number,
		TotalPages: p.TotalPages(),
		Total:      p.Total,
		HasNext:    p.Number < p.TotalPages(),
		HasPrev:    p.Number > 1,
	}
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

func (p Page[T]) PrevNumber() int {
	return p.Number - 1
}

// Paginate cuts page number page out of an in-memory slice.
func Paginate[T any](items []T, page, size int) Page[T] {
	pager := NewPager(len(items), page, size)
	start := min(pager.Offset(), len(items))
	end := min(start+pager.Limit(), len(items))

	return NewPage(pager, items[start:end])
}
