package users

import (
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// Repository stores user records. Implementations are safe for concurrent
// use; every returned record is a copy.
type Repository interface {
	// Save inserts or replaces u. A zero ID allocates the next id and
	// stamps CreatedAt; UpdatedAt is always stamped.
	Save(u models.User) models.User
	// Replace overwrites an existing record keeping its ID and CreatedAt.
	// It reports false and stores nothing if the ID is unknown.
	Replace(u models.User) (models.User, bool)
	FindByID(id uint64) (models.User, bool)
	FindAll() []models.User
	FindByStatus(status models.Status) []models.User
	// FindPaginated skips page*size records in id order and returns at
	// most size of the rest. Arguments are not range checked.
	FindPaginated(page, size int) []models.User
	DeleteByID(id uint64) bool
	ExistsByID(id uint64) bool
	Count() int
}
