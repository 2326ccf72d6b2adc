package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/database/books"
	"github.com/storlay/book-bookings-api/internal/database/genres"
	"github.com/storlay/book-bookings-api/internal/entities"
)

// BookInput carries the fields for creating or updating a book. Genres are
// referenced by name and resolved all-or-nothing.
type BookInput struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"gte=0"`
	AuthorID uint     `json:"author_id" binding:"required"`
	Genres   []string `json:"genres"`
}

// BookFilters narrows a book search.
type BookFilters struct {
	AuthorFirstName string
	AuthorLastName  string
	Genres          []string
	MinPrice        *float64
	MaxPrice        *float64
}

// BooksService implements book CRUD and filtered search.
type BooksService struct {
	db *database.Database
}

// NewBooksService creates a new books service.
func NewBooksService(db *database.Database) *BooksService {
	return &BooksService{db: db}
}

// Get returns a book by ID with its genre set resolved.
func (s *BooksService) Get(id uint) (Book, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Book{}, err
	}
	defer tx.Rollback()

	book, err := tx.Books.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Book{}, ErrBookNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return newBookModel(*book), nil
}

// GetAll returns all books.
func (s *BooksService) GetAll() ([]Book, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Books.GetAll()
	if err != nil {
		return nil, err
	}
	return newBookModels(rows), nil
}

// Create adds a book, resolves its genre names and returns the generated ID.
// An unknown author or genre name rolls the whole operation back.
func (s *BooksService) Create(data BookInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Users.GetByID(data.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrIncorrectAuthor
		}
		return 0, err
	}

	genreSet, err := tx.Genres.FindByNames(data.Genres)
	if err != nil {
		return 0, mapGenreNamesError(err)
	}

	book := &entities.Book{
		Name:     data.Name,
		Price:    data.Price,
		AuthorID: data.AuthorID,
	}
	if err := tx.Books.Create(book); err != nil {
		return 0, mapBookWriteError(err)
	}
	if err := tx.Books.ReplaceGenres(book, genreSet); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, mapBookWriteError(err)
	}
	return book.ID, nil
}

// Update replaces a book's fields and genre set.
func (s *BooksService) Update(id uint, data BookInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Users.GetByID(data.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrIncorrectAuthor
		}
		return 0, err
	}

	genreSet, err := tx.Genres.FindByNames(data.Genres)
	if err != nil {
		return 0, mapGenreNamesError(err)
	}

	book := &entities.Book{
		ID:       id,
		Name:     data.Name,
		Price:    data.Price,
		AuthorID: data.AuthorID,
	}
	if err := tx.Books.Update(book); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrBookNotFound
		}
		return 0, mapBookWriteError(err)
	}
	if err := tx.Books.ReplaceGenres(book, genreSet); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, mapBookWriteError(err)
	}
	return id, nil
}

// Delete removes a book by ID.
func (s *BooksService) Delete(id uint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Books.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	if err := tx.Books.Delete(id); err != nil {
		return err
	}
	return tx.Commit()
}

// FindWithFilters searches books by author initials, genre names and price
// bounds.
func (s *BooksService) FindWithFilters(filters BookFilters) ([]Book, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Books.FindWithFilters(books.Filters{
		AuthorFirstName: filters.AuthorFirstName,
		AuthorLastName:  filters.AuthorLastName,
		Genres:          filters.Genres,
		MinPrice:        filters.MinPrice,
		MaxPrice:        filters.MaxPrice,
	})
	if err != nil {
		return nil, err
	}
	return newBookModels(rows), nil
}

func newBookModels(rows []entities.Book) []Book {
	models := make([]Book, 0, len(rows))
	for _, row := range rows {
		models = append(models, newBookModel(row))
	}
	return models
}

func mapGenreNamesError(err error) error {
	if errors.Is(err, genres.ErrIncorrectNames) {
		return ErrIncorrectGenreNames
	}
	return err
}

// mapBookWriteError translates a dangling author foreign key, the store-level
// backstop behind the explicit existence check.
func mapBookWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrIncorrectAuthor
	}
	return err
}
