package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/entities"
)

// GenreInput carries the fields for creating or updating a genre.
type GenreInput struct {
	Name string `json:"name" binding:"required"`
}

// GenresService implements genre CRUD.
type GenresService struct {
	db *database.Database
}

// NewGenresService creates a new genres service.
func NewGenresService(db *database.Database) *GenresService {
	return &GenresService{db: db}
}

// Get returns a genre by ID.
func (s *GenresService) Get(id uint) (Genre, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Genre{}, err
	}
	defer tx.Rollback()

	genre, err := tx.Genres.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Genre{}, ErrGenreNotFound
	}
	if err != nil {
		return Genre{}, err
	}
	return newGenreModel(*genre), nil
}

// GetAll returns all genres.
func (s *GenresService) GetAll() ([]Genre, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Genres.GetAll()
	if err != nil {
		return nil, err
	}
	genres := make([]Genre, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, newGenreModel(row))
	}
	return genres, nil
}

// Create adds a genre and returns the generated ID. A duplicate name fails
// with ErrDuplicateGenre.
func (s *GenresService) Create(data GenreInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	genre := &entities.Genre{Name: data.Name}
	if err := tx.Genres.Create(genre); err != nil {
		return 0, mapGenreWriteError(err)
	}
	if err := tx.Commit(); err != nil {
		return 0, mapGenreWriteError(err)
	}
	return genre.ID, nil
}

// Update renames a genre.
func (s *GenresService) Update(id uint, data GenreInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := tx.Genres.Update(id, data.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGenreNotFound
		}
		return 0, mapGenreWriteError(err)
	}
	if err := tx.Commit(); err != nil {
		return 0, mapGenreWriteError(err)
	}
	return id, nil
}

// Delete removes a genre by ID.
func (s *GenresService) Delete(id uint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Genres.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return err
	}
	if err := tx.Genres.Delete(id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapGenreWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateGenre
	}
	return err
}
