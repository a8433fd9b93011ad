package repository

import (
	"gorm.io/gorm"

	"project-tracker-api/internal/database"
)

// base resolves the gorm handle per call. Repositories are constructed
// at startup even when the database is still connecting in the
// background; once the shared connection is established they pick it up
// instead of holding a nil handle forever. Before that, calls fail with
// gorm.ErrInvalidDB rather than panicking.
type base struct {
	db *gorm.DB
}

func (b base) conn() (*gorm.DB, error) {
	if b.db != nil {
		return b.db, nil
	}
	if db := database.GetDB(); db != nil {
		return db, nil
	}
	return nil, gorm.ErrInvalidDB
}
