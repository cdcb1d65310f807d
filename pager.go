package exppager

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Pager holds page-number pagination state. The four primitive quantities
// (total entries, entries per page, first page, current page) are stored;
// everything else is derived on demand.
//
// The current page is always observed inside [FirstPage, LastPage]: writes
// store the clamped value and reads clamp again, so shrinking the dataset via
// SetTotalEntries never exposes a current page past the end.
//
// A Pager is not safe for concurrent mutation; confine each instance to one
// goroutine or guard the setters externally.
type Pager struct {
	totalEntries   int
	entriesPerPage int
	firstPage      int
	currentPage    int
	series         *SeriesConfig
}

// NewPager returns a Pager with no entries, 10 entries per page, first and
// current page 1, and the default series configuration.
func NewPager() *Pager {
	return &Pager{
		totalEntries:   0,
		entriesPerPage: DefaultEntriesPerPage,
		firstPage:      1,
		currentPage:    1,
		series:         DefaultSeriesConfig(),
	}
}

// WithFirstPage sets the number of the first page. Construction-time knob;
// the first page is immutable for the pager's lifetime afterwards.
func (p *Pager) WithFirstPage(page int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.firstPage = page
	p.currentPage = page

	return p
}

// WithSeries sets the series configuration used to build page sets.
// nil resets to the default configuration.
func (p *Pager) WithSeries(cfg *SeriesConfig) *Pager {
	if p == nil {
		p = NewPager()
	}

	if cfg == nil {
		cfg = DefaultSeriesConfig()
	}
	p.series = cfg

	return p
}

// SetTotalEntries stores the total item count. Returns ErrInvalidArgument if
// total < 0.
//
// The current page is not rebased here: if the dataset shrank below it, the
// next CurrentPage read clamps to the new last page.
func (p *Pager) SetTotalEntries(total int) error {
	if total < 0 {
		return fmt.Errorf("%w: total entries must be non-negative, got %d", ErrInvalidArgument, total)
	}

	p.totalEntries = total

	return nil
}

// SetEntriesPerPage changes the page size. Returns ErrInvalidArgument if
// perPage <= 0.
//
// The current page is rebased so that the entry which was first on the old
// current page stays approximately first under the new page size. Changing
// page size must not disorient the reader mid-listing.
func (p *Pager) SetEntriesPerPage(perPage int) error {
	if perPage <= 0 {
		return fmt.Errorf("%w: entries per page must be positive, got %d", ErrInvalidArgument, perPage)
	}

	firstEntry := p.FirstEntryIndex()
	p.entriesPerPage = perPage
	p.currentPage = p.firstPage + int(math.Floor(float64(firstEntry)/float64(perPage)))

	return nil
}

// SetCurrentPage stores the requested page and returns the value actually
// stored. An out-of-range page is not an error: values below FirstPage clamp
// to FirstPage, values above LastPage clamp to LastPage. The caller always
// gets the effective page back, never the rejected input.
func (p *Pager) SetCurrentPage(page int) int {
	p.currentPage = lo.Clamp(page, p.firstPage, p.LastPage())

	return p.currentPage
}

// TotalEntries returns the total item count.
func (p *Pager) TotalEntries() int {
	return p.totalEntries
}

// EntriesPerPage returns the page size.
func (p *Pager) EntriesPerPage() int {
	return p.entriesPerPage
}

// FirstPage returns the number of the first page.
func (p *Pager) FirstPage() int {
	return p.firstPage
}

// LastPage returns the number of the last page: FirstPage when the dataset is
// empty, otherwise ceil(totalEntries / entriesPerPage).
func (p *Pager) LastPage() int {
	if p.totalEntries == 0 {
		return p.firstPage
	}

	return (p.totalEntries + p.entriesPerPage - 1) / p.entriesPerPage
}

// CurrentPage returns the current page clamped into [FirstPage, LastPage].
func (p *Pager) CurrentPage() int {
	return lo.Clamp(p.currentPage, p.firstPage, p.LastPage())
}

// FirstEntryIndex returns the 1-based index of the first entry on the current
// page, or 0 when the dataset is empty.
func (p *Pager) FirstEntryIndex() int {
	if p.totalEntries == 0 {
		return 0
	}

	return (p.CurrentPage()-1)*p.entriesPerPage + 1
}

// LastEntryIndex returns the 1-based index of the last entry on the current
// page. On the last page this is the total entry count; earlier pages are
// always full.
func (p *Pager) LastEntryIndex() int {
	current := p.CurrentPage()
	if current == p.LastPage() {
		return p.totalEntries
	}

	return current * p.entriesPerPage
}

// EntriesOnCurrentPage returns the number of entries on the current page,
// 0 for an empty dataset.
func (p *Pager) EntriesOnCurrentPage() int {
	if p.totalEntries == 0 {
		return 0
	}

	return p.LastEntryIndex() - p.FirstEntryIndex() + 1
}

// PreviousPage returns the page before the current one. ok is false on the
// first page.
func (p *Pager) PreviousPage() (int, bool) {
	current := p.CurrentPage()
	if current <= p.firstPage {
		return 0, false
	}

	return current - 1, true
}

// NextPage returns the page after the current one. ok is false on the last
// page.
func (p *Pager) NextPage() (int, bool) {
	current := p.CurrentPage()
	if current >= p.LastPage() {
		return 0, false
	}

	return current + 1, true
}

// SkippedCount returns the number of entries on the pages before the current
// one, i.e. the OFFSET for the current page. 0 for an empty dataset.
func (p *Pager) SkippedCount() int {
	if p.totalEntries == 0 {
		return 0
	}

	return p.FirstEntryIndex() - 1
}

// SliceItems cuts the current page out of an in-memory result set using the
// pager's 1-based entry window [FirstEntryIndex, LastEntryIndex]. Items
// shorter than the window are cut short; items shorter than the window's
// start yield an empty slice.
func SliceItems[T any](p *Pager, items []T) []T {
	first := p.FirstEntryIndex()
	if first == 0 {
		return []T{}
	}

	return lo.Slice(items, first-1, min(p.LastEntryIndex(), len(items)))
}
