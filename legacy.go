package exppager

// SlidingPager is the method set of a classic sliding-window pager. Code
// written against a plain first/last/previous/next pager can take a
// SlidingPager and receive a *Pager without knowing about exponential page
// sets: the set anchors degrade to a fixed stride of 2*pagesPerExponent,
// independent of the exponent tiers above tier 0.
type SlidingPager interface {
	TotalEntries() int
	EntriesPerPage() int
	FirstPage() int
	LastPage() int
	CurrentPage() int
	FirstEntryIndex() int
	LastEntryIndex() int
	EntriesOnCurrentPage() int
	PreviousPage() (int, bool)
	NextPage() (int, bool)
	SkippedCount() int
}

var _ SlidingPager = (*Pager)(nil)
