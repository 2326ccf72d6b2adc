// Package genres provides database operations for genre management.
package genres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/entities"
)

// ErrIncorrectNames is returned by FindByNames when at least one of the
// requested names does not resolve to a stored genre.
var ErrIncorrectNames = errors.New("genres: one or more names do not exist")

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new genre and sets its generated ID.
// The unique index on name surfaces duplicates as gorm.ErrDuplicatedKey.
func (r *Repository) Create(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// GetByID retrieves a genre by ID.
func (r *Repository) GetByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, id).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetAll returns all genres ordered by name.
func (r *Repository) GetAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// Update renames a genre. Returns gorm.ErrRecordNotFound if no row matches.
func (r *Repository) Update(id uint, name string) error {
	result := r.db.Model(&entities.Genre{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a genre by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Genre{}, id).Error
}

// FindByNames resolves genre names to stored genres, all or nothing.
// A partial match returns ErrIncorrectNames rather than a shorter list.
func (r *Repository) FindByNames(names []string) ([]entities.Genre, error) {
	genres := make([]entities.Genre, 0, len(names))
	if len(names) == 0 {
		return genres, nil
	}
	err := r.db.Where("name IN ?", names).Find(&genres).Error
	if err != nil {
		return nil, err
	}
	if len(genres) != len(names) {
		return nil, ErrIncorrectNames
	}
	return genres, nil
}
