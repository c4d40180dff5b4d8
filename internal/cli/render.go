package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mexm/mydmam-browser/internal/constraints"
	"github.com/mexm/mydmam-browser/internal/display"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/paging"
	"github.com/mexm/mydmam-browser/internal/services"
	"github.com/mexm/mydmam-browser/internal/sorting"
	"github.com/mexm/mydmam-browser/internal/util/sanitize"
	ustrings "github.com/mexm/mydmam-browser/internal/util/strings"
)

const (
	defaultTermWidth = 100
	minNameWidth     = 16
	sizeColumnWidth  = 18
	dateColumnWidth  = 26
)

// terminalWidth returns the width of stdout, or a default when it is not a
// terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad right-fills s with spaces up to width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// pageNav renders a window as "‹ 1 [2] 3 … 9 10 ›". The current page is
// bracketed; a current page hidden in the gap is shown inside the separator.
func pageNav(w paging.Window) string {
	if w.Empty() {
		return ""
	}
	parts := make([]string, 0, len(w.Pages)+2)
	if w.Previous.Visible {
		parts = append(parts, "‹")
	}
	for _, p := range w.Pages {
		switch {
		case p.Separator && p.Number > 0:
			parts = append(parts, "… ["+strconv.Itoa(p.Number)+"] …")
		case p.Separator:
			parts = append(parts, "…")
		case p.Current:
			parts = append(parts, "["+strconv.Itoa(p.Number)+"]")
		default:
			parts = append(parts, strconv.Itoa(p.Number))
		}
	}
	if w.Next.Visible {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ")
}

// breadcrumbLine renders "storage:/a/b/current".
func breadcrumbLine(resp *models.FileResponse, crumbs []services.Crumb) string {
	var b strings.Builder
	b.WriteString(resp.Storage)
	b.WriteString(":")
	for _, c := range crumbs {
		b.WriteString("/")
		b.WriteString(c.Name)
	}
	if resp.CurrentItem != nil && resp.CurrentItem.Path != "" && resp.CurrentItem.Path != "/" {
		b.WriteString("/")
		b.WriteString(resp.CurrentItem.Name())
	} else if len(crumbs) == 0 {
		b.WriteString("/")
	}
	return sanitize.DisplayName(b.String())
}

// listingPrinter renders listing pages and search hits.
type listingPrinter struct {
	out       io.Writer
	formatter *display.Formatter
	mode      display.Mode
	nowMs     int64
	width     int
}

func (p *listingPrinter) nameWidth() int {
	w := p.width - sizeColumnWidth - dateColumnWidth - 6
	if w < minNameWidth {
		return minNameWidth
	}
	return w
}

func (p *listingPrinter) item(f models.FileItemResponse) string {
	name := sanitize.DisplayName(f.Name())
	size := display.FormatSize(f.Length)
	if f.Directory {
		name += "/"
		size = ""
	}
	date := p.formatter.Format(f.Modified, p.nowMs, p.mode)
	nw := p.nameWidth()
	return fmt.Sprintf("  %s  %*s  %s", pad(truncate(name, nw), nw), sizeColumnWidth, size, date)
}

// header renders the column titles with their active sort orders.
func (p *listingPrinter) header(fs models.FileSort) string {
	nw := p.nameWidth()
	line := fmt.Sprintf("  %s  %*s  %s",
		pad(truncate(sorting.Label("Name", fs.Name), nw), nw),
		sizeColumnWidth, sorting.Label("Size", fs.Size),
		sorting.Label("Date", fs.Date))
	if fs.Type != models.SortNone {
		line += "  (" + sorting.Label("Type", fs.Type) + ")"
	}
	return line
}

func (p *listingPrinter) listing(resp *models.FileResponse, crumbs []services.Crumb, w paging.Window, fs models.FileSort) {
	fmt.Fprintln(p.out, breadcrumbLine(resp, crumbs))
	if len(resp.List) == 0 {
		fmt.Fprintln(p.out, "  (empty directory)")
	} else {
		fmt.Fprintln(p.out, p.header(fs))
	}
	for _, f := range resp.List {
		fmt.Fprintln(p.out, p.item(f))
	}

	fmt.Fprintln(p.out)
	first := resp.SkipCount + 1
	last := resp.SkipCount + len(resp.List)
	if len(resp.List) == 0 {
		first = resp.SkipCount
	}
	fmt.Fprintf(p.out, "%d-%d of %d %s\n", first, last, resp.Total, ustrings.Pluralize("item", int64(resp.Total)))
	if nav := pageNav(w); nav != "" {
		fmt.Fprintln(p.out, nav)
	}
}

// filters prints the active search filters, one per line.
func (p *listingPrinter) filters(c models.FileSearchConstraints) {
	fmt.Fprintln(p.out, "Filters:")
	for _, line := range constraints.Describe(c, p.formatter, p.nowMs, p.mode) {
		fmt.Fprintf(p.out, "  %s\n", line)
	}
	fmt.Fprintln(p.out)
}

// results prints the hit count and one line per hit.
func (p *listingPrinter) results(resp *models.OpenSearchResponse, q string) {
	hits := resp.Result.FoundedFiles
	if len(hits) == 0 {
		fmt.Fprintf(p.out, "No results for %q\n", q)
		return
	}
	total := resp.Result.TotalFounded
	if total < len(hits) {
		total = len(hits)
	}
	fmt.Fprintf(p.out, "%d %s for %q", total, ustrings.Pluralize("result", int64(total)), q)
	if total > len(hits) {
		fmt.Fprintf(p.out, ", showing %d", len(hits))
	}
	fmt.Fprintln(p.out)
	for _, h := range hits {
		fmt.Fprintln(p.out, p.hit(h, resp.RelatedFiles))
	}
}

func (p *listingPrinter) hit(h models.FileSearchResult, related map[string]models.FileItemResponse) string {
	location := sanitize.DisplayName(h.Storage + ":" + strings.TrimSuffix(h.ParentPath, "/") + "/" + h.Name)
	line := fmt.Sprintf("  %s  (%.2f)", truncate(location, p.nameWidth()+sizeColumnWidth), h.Score)
	if f, ok := related[h.HashPath]; ok {
		if f.Directory {
			line += "  directory"
		} else {
			line += "  " + display.FormatSize(f.Length)
		}
		line += "  " + p.formatter.Format(f.Modified, p.nowMs, p.mode)
	}
	return line
}
