package exppager

// Package exppager provides page-number pagination with exponentially spaced
// page sets.
//
// Overview
//
// exppager keeps the four primitive pager quantities (total entries, entries
// per page, first page, current page) and derives everything else from them:
// last page, entry indices, previous/next page, and a bounded "page set" of
// navigation shortcuts. The page set is built from a symmetric series of
// offsets spaced at geometrically increasing intervals, so a result set of
// thousands of pages still renders as a short jump list
// (1, 2, 3, 10, 20, 30, 100, ...).
//
// Key concepts
//   - Pager: holds pager state, clamps the current page into its valid range
//     and slices in-memory result sets.
//   - SeriesConfig: exponent base, exponent ceiling and per-exponent density;
//     generates the symmetric offset series once and caches it.
//   - PagesInSet: maps the series onto the current page and clips it to the
//     valid page range.
//   - Set anchors: previous/next jump targets compatible with classic
//     sliding-window pagers.
//
// See README for examples and usage details.
