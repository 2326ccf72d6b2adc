// Package books provides database operations for book management.
//
// Genre sets are read with an explicit Preload and written through
// ReplaceGenres; there is no implicit lazy loading.
package books

import (
	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/entities"
)

// Filters narrows a book search. Nil price bounds and empty strings/slices
// mean "no constraint".
type Filters struct {
	AuthorFirstName string
	AuthorLastName  string
	Genres          []string
	MinPrice        *float64
	MaxPrice        *float64
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book and sets its generated ID. Genres are written
// separately via ReplaceGenres.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Genres").Create(book).Error
}

// GetByID retrieves a book with its genre set resolved.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Genres").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll returns all books with their genre sets resolved.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genres").Order("id ASC").Find(&books).Error
	return books, err
}

// Update overwrites the mutable fields of a book.
// Returns gorm.ErrRecordNotFound if no row matches the ID.
func (r *Repository) Update(book *entities.Book) error {
	result := r.db.Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"name":      book.Name,
			"price":     book.Price,
			"author_id": book.AuthorID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a book by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// ReplaceGenres overwrites the book's genre associations with the given set.
func (r *Repository) ReplaceGenres(book *entities.Book, genres []entities.Genre) error {
	return r.db.Model(book).Association("Genres").Replace(&genres)
}

// FindWithFilters searches books through explicit joins on the author and the
// books_genres association table.
func (r *Repository) FindWithFilters(filters Filters) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{}).Preload("Genres")

	if filters.AuthorFirstName != "" || filters.AuthorLastName != "" {
		query = query.Joins("JOIN users ON users.id = books.author_id")
		if filters.AuthorFirstName != "" {
			query = query.Where("users.first_name = ?", filters.AuthorFirstName)
		}
		if filters.AuthorLastName != "" {
			query = query.Where("users.last_name = ?", filters.AuthorLastName)
		}
	}

	if len(filters.Genres) > 0 {
		query = query.
			Joins("JOIN books_genres ON books_genres.book_id = books.id").
			Joins("JOIN genres ON genres.id = books_genres.genre_id").
			Where("genres.name IN ?", filters.Genres).
			Distinct("books.*")
	}

	if filters.MinPrice != nil {
		query = query.Where("books.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("books.price <= ?", *filters.MaxPrice)
	}

	var books []entities.Book
	err := query.Order("books.id ASC").Find(&books).Error
	return books, err
}
