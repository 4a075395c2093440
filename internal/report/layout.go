// Package report turns filtered record sets into paginated PDF documents.
// Layout is computed up front by a pure engine so page breaks are
// deterministic and testable without a PDF backend.
package report

// Engine lays ordered blocks onto pages of a fixed usable height.
type Engine struct {
	UsableHeight float64
}

// Pages assigns each block a 0-based page number. Blocks keep their order,
// none is dropped, and a block never splits across pages: when a block does
// not fit into the remaining budget it moves whole to the next page. A
// block taller than a full page gets a page of its own.
func (e Engine) Pages(heights []float64) []int {
	pages := make([]int, len(heights))
	page := 0
	var used float64
	for i, h := range heights {
		if used > 0 && used+h > e.UsableHeight {
			page++
			used = 0
		}
		pages[i] = page
		used += h
	}
	return pages
}

// PageCount returns the number of pages the assignment spans.
func PageCount(pages []int) int {
	if len(pages) == 0 {
		return 0
	}
	return pages[len(pages)-1] + 1
}
