package exppager

import (
	"fmt"
	"math"
)

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - requested page number. Fractional values are floored; values
	// outside the valid page range are clamped, never rejected.
	Page float64 `json:"page"`
	// PerPage - page size. Non-positive values fall back to
	// DefaultEntriesPerPage, values above MaxEntriesPerPage are capped.
	PerPage int `json:"perPage"`
	// TotalEntries - total number of items in the dataset.
	TotalEntries int `json:"totalEntries"`

	// ExponentBase, ExponentMax, PagesPerExponent - optional series knobs.
	// Zero values mean "use the default". ExponentMax is a pointer because
	// 0 is a meaningful ceiling (a single linear tier).
	ExponentBase     int  `json:"exponentBase,omitempty"`
	ExponentMax      *int `json:"exponentMax,omitempty"`
	PagesPerExponent int  `json:"pagesPerExponent,omitempty"`
}

// Decode converts RawPager into a *Pager, normalizing PerPage, validating
// TotalEntries and the series knobs, and clamping Page into the valid range.
func (r RawPager) Decode() (*Pager, error) {
	base := r.ExponentBase
	if base == 0 {
		base = DefaultExponentBase
	}
	exponentMax := DefaultExponentMax
	if r.ExponentMax != nil {
		exponentMax = *r.ExponentMax
	}
	perExponent := r.PagesPerExponent
	if perExponent == 0 {
		perExponent = DefaultPagesPerExponent
	}

	series, err := NewSeriesConfig(base, exponentMax, perExponent)
	if err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}

	p := NewPager().WithSeries(series)

	if err = p.SetTotalEntries(r.TotalEntries); err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}
	if err = p.SetEntriesPerPage(NormalizeEntriesPerPage(r.PerPage)); err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}

	p.SetCurrentPage(floorPage(r.Page))

	return p, nil
}

// floorPage floors a requested page number; anything that is not a finite
// number counts as 0 (and ends up clamped to the first page).
func floorPage(page float64) int {
	if math.IsNaN(page) || math.IsInf(page, 0) {
		return 0
	}

	return int(math.Floor(page))
}
