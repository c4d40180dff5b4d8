// Package paging turns a (skip, pageSize, total) triple into a bounded set of
// page navigation controls.
package paging

import "github.com/mexm/mydmam-browser/internal/constants"

// Page is one entry of the navigation list.
//
// Number is 1-based. For a separator, Number carries the 1-based current page
// when that page falls inside the elided gap, and 0 otherwise.
type Page struct {
	Number    int
	Skip      int
	Current   bool
	Separator bool
}

// NavButton is a previous/next affordance.
type NavButton struct {
	Visible    bool
	PageNumber int // 1-based target page
	Skip       int
}

// Window is the computed navigation for one listing response.
type Window struct {
	Pages    []Page
	Previous NavButton
	Next     NavButton

	// CurrentPage is 0-based.
	CurrentPage int
	PageCount   int
	PageSize    int
	Total       int
}

// Empty reports whether there is nothing to navigate.
func (w Window) Empty() bool {
	return len(w.Pages) == 0
}

// EffectivePageSize returns the page size used for paging math: the larger of
// what was requested and what the server says it returned.
func EffectivePageSize(requested, returned int) int {
	if returned > requested {
		return returned
	}
	return requested
}

// Compute builds the navigation window. maxButtons <= 0 selects the default.
func Compute(skip, pageSize, total, maxButtons int) Window {
	if maxButtons <= 0 {
		maxButtons = constants.DefaultMaxPageButtons
	}
	if skip < 0 {
		skip = 0
	}
	w := Window{PageSize: pageSize, Total: total}
	if pageSize <= 0 || total <= 0 {
		return w
	}

	current := skip / pageSize
	pageCount := (total + pageSize - 1) / pageSize
	w.CurrentPage = current
	w.PageCount = pageCount

	if pageCount < maxButtons {
		w.Pages = make([]Page, 0, pageCount)
		for n := 0; n < pageCount; n++ {
			w.Pages = append(w.Pages, pageAt(n, pageSize, skip))
		}
	} else {
		half := maxButtons / 2
		w.Pages = make([]Page, 0, 2*half+1)
		for n := 0; n < half; n++ {
			w.Pages = append(w.Pages, pageAt(n, pageSize, skip))
		}

		sep := Page{Separator: true}
		if current > half-1 && current < pageCount-half {
			sep.Number = current + 1
			sep.Skip = current * pageSize
		}
		w.Pages = append(w.Pages, sep)

		for n := pageCount - half; n < pageCount; n++ {
			w.Pages = append(w.Pages, pageAt(n, pageSize, skip))
		}
	}

	if current > 0 {
		w.Previous = NavButton{Visible: true, PageNumber: current, Skip: (current - 1) * pageSize}
	}
	if total-skip >= pageSize {
		w.Next = NavButton{Visible: true, PageNumber: current + 2, Skip: (current + 1) * pageSize}
	}
	return w
}

func pageAt(n, pageSize, skip int) Page {
	return Page{
		Number:  n + 1,
		Skip:    n * pageSize,
		Current: n*pageSize <= skip && skip < (n+1)*pageSize,
	}
}
