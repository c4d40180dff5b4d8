package paging

import (
	"slices"
	"testing"
)

func nonSeparators(pages []Page) []Page {
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		if !p.Separator {
			out = append(out, p)
		}
	}
	return out
}

func separators(pages []Page) []Page {
	out := make([]Page, 0, 1)
	for _, p := range pages {
		if p.Separator {
			out = append(out, p)
		}
	}
	return out
}

func TestComputeEmpty(t *testing.T) {
	tests := []struct {
		name            string
		total, pageSize int
	}{
		{"zero total", 0, 20},
		{"zero page size", 100, 0},
		{"negative page size", 100, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(0, tt.pageSize, tt.total, 10)
			if !w.Empty() {
				t.Errorf("Compute() pages = %d, want empty", len(w.Pages))
			}
			if w.Previous.Visible || w.Next.Visible {
				t.Errorf("Compute() nav = %+v / %+v, want both hidden", w.Previous, w.Next)
			}
		})
	}
}

func TestComputeShortList(t *testing.T) {
	w := Compute(0, 20, 95, 10)

	if len(w.Pages) != 5 {
		t.Fatalf("pages = %d, want 5", len(w.Pages))
	}
	if w.PageCount != 5 || w.CurrentPage != 0 {
		t.Errorf("PageCount = %d, CurrentPage = %d; want 5, 0", w.PageCount, w.CurrentPage)
	}
	if !w.Pages[0].Current {
		t.Error("first page should be current")
	}
	for _, p := range w.Pages[1:] {
		if p.Current {
			t.Errorf("page %d marked current", p.Number)
		}
	}
	if w.Previous.Visible {
		t.Error("Previous should be hidden")
	}
	if want := (NavButton{Visible: true, PageNumber: 2, Skip: 20}); w.Next != want {
		t.Errorf("Next = %+v, want %+v", w.Next, want)
	}
}

func TestComputeNavigation(t *testing.T) {
	tests := []struct {
		name        string
		skip, total int
		current     int
		previous    NavButton
		next        NavButton
	}{
		{
			name: "middle page", skip: 40, total: 95, current: 2,
			previous: NavButton{Visible: true, PageNumber: 2, Skip: 20},
			next:     NavButton{Visible: true, PageNumber: 4, Skip: 60},
		},
		{
			name: "last page hides next", skip: 80, total: 95, current: 4,
			previous: NavButton{Visible: true, PageNumber: 4, Skip: 60},
		},
		{
			// total-skip equal to the page size is not treated as the tail.
			name: "exact tail keeps next", skip: 80, total: 100, current: 4,
			previous: NavButton{Visible: true, PageNumber: 4, Skip: 60},
			next:     NavButton{Visible: true, PageNumber: 6, Skip: 100},
		},
		{
			name: "unaligned skip", skip: 30, total: 95, current: 1,
			previous: NavButton{Visible: true, PageNumber: 1, Skip: 0},
			next:     NavButton{Visible: true, PageNumber: 3, Skip: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(tt.skip, 20, tt.total, 10)
			if w.CurrentPage != tt.current {
				t.Errorf("CurrentPage = %d, want %d", w.CurrentPage, tt.current)
			}
			if !w.Pages[tt.current].Current {
				t.Errorf("page %d not marked current", tt.current+1)
			}
			if w.Previous.Visible != tt.previous.Visible || w.Previous.Skip != tt.previous.Skip {
				t.Errorf("Previous = %+v, want %+v", w.Previous, tt.previous)
			}
			if w.Next.Visible != tt.next.Visible || (tt.next.Visible && w.Next.Skip != tt.next.Skip) {
				t.Errorf("Next = %+v, want %+v", w.Next, tt.next)
			}
		})
	}
}

func TestComputeTruncatedWithCurrentInGap(t *testing.T) {
	w := Compute(500, 10, 1000, 10)

	if w.CurrentPage != 50 || w.PageCount != 100 {
		t.Errorf("CurrentPage = %d, PageCount = %d; want 50, 100", w.CurrentPage, w.PageCount)
	}
	if len(w.Pages) != 11 {
		t.Fatalf("pages = %d, want 11", len(w.Pages))
	}

	regular := nonSeparators(w.Pages)
	var numbers []int
	for _, p := range regular {
		numbers = append(numbers, p.Number)
		if p.Current {
			t.Errorf("page %d marked current", p.Number)
		}
	}
	if want := []int{1, 2, 3, 4, 5, 96, 97, 98, 99, 100}; !slices.Equal(numbers, want) {
		t.Errorf("page numbers = %v, want %v", numbers, want)
	}

	seps := separators(w.Pages)
	if len(seps) != 1 {
		t.Fatalf("separators = %d, want 1", len(seps))
	}
	if seps[0].Number != 51 || seps[0].Skip != 500 {
		t.Errorf("separator = %+v, want page 51 at skip 500", seps[0])
	}
	if !w.Pages[5].Separator {
		t.Error("separator should sit between the two blocks")
	}
}

func TestComputeTruncatedWithCurrentInHeadOrTail(t *testing.T) {
	tests := []struct {
		name        string
		skip        int
		currentPage int
	}{
		{"first page", 0, 1},
		{"end of first block", 40, 5},
		{"start of last block", 950, 96},
		{"last page", 990, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(tt.skip, 10, 1000, 10)

			seps := separators(w.Pages)
			if len(seps) != 1 {
				t.Fatalf("separators = %d, want 1", len(seps))
			}
			if seps[0].Number != 0 {
				t.Errorf("separator number = %d, want 0", seps[0].Number)
			}

			var current []int
			for _, p := range nonSeparators(w.Pages) {
				if p.Current {
					current = append(current, p.Number)
				}
			}
			if !slices.Equal(current, []int{tt.currentPage}) {
				t.Errorf("current pages = %v, want [%d]", current, tt.currentPage)
			}
		})
	}
}

func TestComputePageCountEqualToMaxButtons(t *testing.T) {
	w := Compute(0, 10, 100, 10)

	if len(w.Pages) != 11 {
		t.Fatalf("pages = %d, want 11", len(w.Pages))
	}
	if n := len(nonSeparators(w.Pages)); n != 10 {
		t.Errorf("regular pages = %d, want 10", n)
	}
	if n := separators(w.Pages)[0].Number; n != 0 {
		t.Errorf("separator number = %d, want 0", n)
	}
}

func TestComputeSkipMatchesPageNumber(t *testing.T) {
	for _, skip := range []int{0, 130, 370, 990} {
		w := Compute(skip, 10, 997, 10)
		for _, p := range nonSeparators(w.Pages) {
			if p.Skip != (p.Number-1)*10 {
				t.Errorf("skip=%d: page %d has Skip %d", skip, p.Number, p.Skip)
			}
		}
	}
}

func TestComputeDefaultMaxButtons(t *testing.T) {
	if w := Compute(0, 1, 50, 0); len(w.Pages) != 11 {
		t.Errorf("pages = %d, want 11", len(w.Pages))
	}
}

func TestEffectivePageSize(t *testing.T) {
	tests := []struct {
		requested, listSize, want int
	}{
		{20, 7, 20},
		{20, 50, 50},
		{20, 20, 20},
	}
	for _, tt := range tests {
		if got := EffectivePageSize(tt.requested, tt.listSize); got != tt.want {
			t.Errorf("EffectivePageSize(%d, %d) = %d, want %d", tt.requested, tt.listSize, got, tt.want)
		}
	}
}
