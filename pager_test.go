package exppager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Pager_EmptyDataset(t *testing.T) {
	p := NewPager()

	require.Equal(t, 1, p.LastPage())
	require.Equal(t, 1, p.CurrentPage())
	require.Equal(t, 0, p.FirstEntryIndex())
	require.Equal(t, 0, p.LastEntryIndex())
	require.Equal(t, 0, p.EntriesOnCurrentPage())
	require.Equal(t, 0, p.SkippedCount())

	_, ok := p.PreviousPage()
	require.False(t, ok)
	_, ok = p.NextPage()
	require.False(t, ok)
}

func Test_Pager_LastPage(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"empty -> first page", 0, 10, 1},
		{"exact division", 1200, 5, 240},
		{"partial last page", 101, 10, 11},
		{"single entry", 1, 10, 1},
		{"one entry per page", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetTotalEntries(tt.total))
			require.NoError(t, p.SetEntriesPerPage(tt.perPage))

			require.Equal(t, tt.want, p.LastPage())
		})
	}
}

func Test_Pager_SetTotalEntries(t *testing.T) {
	p := NewPager()

	require.ErrorIs(t, p.SetTotalEntries(-1), ErrInvalidArgument)
	require.NoError(t, p.SetTotalEntries(0))
	require.NoError(t, p.SetTotalEntries(1200))
	require.Equal(t, 1200, p.TotalEntries())
}

func Test_Pager_SetCurrentPage_clamps(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		want  int
	}{
		{"below first page", 2400, -5, 1},
		{"zero", 2400, 0, 1},
		{"in range stays", 2400, 50, 50},
		{"last page stays", 2400, 240, 240},
		{"above last page", 2400, 99999, 240},
		{"empty dataset always first", 0, 17, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetTotalEntries(tt.total))

			got := p.SetCurrentPage(tt.page)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, p.CurrentPage())
		})
	}
}

func Test_Pager_CurrentPage_clampsAfterShrink(t *testing.T) {
	p := NewPager()
	require.NoError(t, p.SetTotalEntries(1000))
	require.Equal(t, 100, p.SetCurrentPage(100))

	// Removing entries does not rebase the current page eagerly; the next
	// read clamps against the new last page.
	require.NoError(t, p.SetTotalEntries(55))
	require.Equal(t, 6, p.CurrentPage())
	require.Equal(t, 51, p.FirstEntryIndex())
	require.Equal(t, 55, p.LastEntryIndex())
}

func Test_Pager_EntryIndices(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		perPage     int
		page        int
		wantFirst   int
		wantLast    int
		wantOnPage  int
		wantSkipped int
	}{
		{"first page full", 101, 10, 1, 1, 10, 10, 0},
		{"middle page full", 101, 10, 5, 41, 50, 10, 40},
		{"last page partial", 101, 10, 11, 101, 101, 1, 100},
		{"single full page", 10, 10, 1, 1, 10, 10, 0},
		{"empty", 0, 10, 1, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetTotalEntries(tt.total))
			require.NoError(t, p.SetEntriesPerPage(tt.perPage))
			p.SetCurrentPage(tt.page)

			require.Equal(t, tt.wantFirst, p.FirstEntryIndex())
			require.Equal(t, tt.wantLast, p.LastEntryIndex())
			require.Equal(t, tt.wantOnPage, p.EntriesOnCurrentPage())
			require.Equal(t, tt.wantSkipped, p.SkippedCount())
		})
	}
}

func Test_Pager_PreviousNextPage(t *testing.T) {
	p := NewPager()
	require.NoError(t, p.SetTotalEntries(30))

	p.SetCurrentPage(1)
	_, ok := p.PreviousPage()
	require.False(t, ok)
	next, ok := p.NextPage()
	require.True(t, ok)
	require.Equal(t, 2, next)

	p.SetCurrentPage(2)
	prev, ok := p.PreviousPage()
	require.True(t, ok)
	require.Equal(t, 1, prev)
	next, ok = p.NextPage()
	require.True(t, ok)
	require.Equal(t, 3, next)

	p.SetCurrentPage(3)
	_, ok = p.NextPage()
	require.False(t, ok)
}

func Test_Pager_SetEntriesPerPage_rebases(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		oldPerPage int
		page       int
		newPerPage int
		wantPage   int
	}{
		// Page 5 of 10/page starts at entry 41; under 20/page entry 41
		// lives on page 3 (41..60).
		{"grow page size", 1000, 10, 5, 20, 3},
		// Page 3 of 10/page starts at entry 21; under 5/page that is
		// page 1 + floor(21/5) = 5, covering 21..25.
		{"shrink page size", 1000, 10, 3, 5, 5},
		{"first page stays first-ish", 1000, 10, 1, 25, 1},
		{"empty dataset resets to first", 0, 10, 1, 25, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetTotalEntries(tt.total))
			require.NoError(t, p.SetEntriesPerPage(tt.oldPerPage))
			p.SetCurrentPage(tt.page)

			oldFirst := p.FirstEntryIndex()
			require.NoError(t, p.SetEntriesPerPage(tt.newPerPage))
			require.Equal(t, tt.wantPage, p.CurrentPage())

			// The old first entry stays on (or adjacent to) the new page.
			if tt.total > 0 {
				require.InDelta(t, oldFirst, p.FirstEntryIndex(), float64(tt.newPerPage))
			}
		})
	}
}

func Test_Pager_SetEntriesPerPage_invalid(t *testing.T) {
	p := NewPager()

	require.ErrorIs(t, p.SetEntriesPerPage(0), ErrInvalidArgument)
	require.ErrorIs(t, p.SetEntriesPerPage(-3), ErrInvalidArgument)
	require.Equal(t, DefaultEntriesPerPage, p.EntriesPerPage())
}

func Test_Pager_WithFirstPage(t *testing.T) {
	p := NewPager().WithFirstPage(0)
	require.NoError(t, p.SetTotalEntries(25))

	require.Equal(t, 0, p.FirstPage())
	require.Equal(t, 0, p.CurrentPage())
	require.Equal(t, 0, p.SetCurrentPage(-10))

	_, ok := p.PreviousPage()
	require.False(t, ok)
}

func Test_SliceItems(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name    string
		total   int
		perPage int
		page    int
		want    []string
	}{
		{"first page", 7, 3, 1, []string{"a", "b", "c"}},
		{"middle page", 7, 3, 2, []string{"d", "e", "f"}},
		{"partial last page", 7, 3, 3, []string{"g"}},
		{"items shorter than window", 100, 3, 2, []string{"d", "e", "f"}},
		{"items end before window starts", 100, 3, 30, []string{}},
		{"empty dataset", 0, 3, 1, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetTotalEntries(tt.total))
			require.NoError(t, p.SetEntriesPerPage(tt.perPage))
			p.SetCurrentPage(tt.page)

			require.Equal(t, tt.want, SliceItems(p, items))
		})
	}
}
