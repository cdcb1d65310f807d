package exppager

import (
	"fmt"

	"gorm.io/gorm"
)

// Paginate applies the pager's window to a gorm query: optional ORDER BY from
// orderings, then OFFSET SkippedCount and LIMIT EntriesPerPage. Returns an
// error if an ordering fails validation.
//
// Call CountTotal (or SetTotalEntries) first so the current page is clamped
// against the real dataset bounds; on a pager with zero total entries the
// offset is always 0.
func (p *Pager) Paginate(db *gorm.DB, orderings ...OrderBy) (*gorm.DB, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot paginate: %w: nil pager", ErrInvalidArgument)
	}

	sort := Orderings(orderings)
	if err := sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}
	if len(sort) > 0 {
		db = sort.Apply(db)
	}

	return db.Offset(p.SkippedCount()).Limit(p.EntriesPerPage()), nil
}

// Scope returns the pager window as a gorm scope:
//
//	db.Scopes(pager.Scope()).Find(&items)
//
// Unlike Paginate it cannot surface ordering errors, so it takes none.
func (p *Pager) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.SkippedCount()).Limit(p.EntriesPerPage())
	}
}

// CountTotal runs a COUNT over the query and feeds the result into
// SetTotalEntries. Apply the same filters to the counted and the paginated
// query, otherwise the page bounds will not match the fetched rows.
func (p *Pager) CountTotal(db *gorm.DB) error {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fmt.Errorf("cannot count total entries: %w", err)
	}

	return p.SetTotalEntries(int(total))
}
