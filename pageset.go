package exppager

import "github.com/samber/lo"

// PagesInSet returns the page set: every series offset shifted by the current
// page and clipped to [FirstPage, LastPage]. The result is ascending and may
// be shorter than PagesPerSet near the dataset boundaries, where few offsets
// survive clipping.
//
// Recomputed on every call; only the underlying series is cached.
func (p *Pager) PagesInSet() []int {
	var (
		current = p.CurrentPage()
		last    = p.LastPage()
	)

	return lo.FilterMap(p.series.Series(), func(offset int, _ int) (int, bool) {
		page := current + offset
		return page, page >= p.firstPage && page <= last
	})
}

// PreviousSetAnchor returns the jump target one page-set block back, using
// only the innermost tier's stride (2 * pagesPerExponent). ok is false when
// the anchor falls before the first page.
//
// Together with NextSetAnchor this emulates a plain sliding-window pager:
// the stride ignores the exponential tiers above tier 0.
func (p *Pager) PreviousSetAnchor() (int, bool) {
	anchor := p.CurrentPage() - 2*p.series.PagesPerExponent() - 1
	if anchor < p.firstPage {
		return 0, false
	}

	return anchor, true
}

// NextSetAnchor returns the jump target one page-set block forward. ok is
// false when the anchor falls past the last page.
func (p *Pager) NextSetAnchor() (int, bool) {
	anchor := p.CurrentPage() + 2*p.series.PagesPerExponent() - 1
	if anchor > p.LastPage() {
		return 0, false
	}

	return anchor, true
}
