// Package services implements the domain logic for bookings, books, genres
// and users. Every operation runs inside one unit of work obtained from the
// database layer and either commits as a whole or rolls back.
package services

import (
	"strconv"
	"time"

	"github.com/storlay/book-bookings-api/internal/entities"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone semantics.
// It serializes as an ISO date ("2024-01-10") and is stored as midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses an ISO calendar date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// Read models: the externally visible shapes, decoupled from the gorm rows.

type Booking struct {
	ID       uint `json:"id"`
	BookID   uint `json:"book_id"`
	UserID   uint `json:"user_id"`
	DateFrom Date `json:"date_from"`
	DateTo   Date `json:"date_to"`
}

type Book struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	AuthorID uint     `json:"author_id"`
	Genres   []string `json:"genres"`
}

type Genre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	AvatarPath string `json:"avatar_path,omitempty"`
}

func newBookingModel(booking entities.Booking) Booking {
	return Booking{
		ID:       booking.ID,
		BookID:   booking.BookID,
		UserID:   booking.UserID,
		DateFrom: DateOf(booking.DateFrom),
		DateTo:   DateOf(booking.DateTo),
	}
}

func newBookModel(book entities.Book) Book {
	genres := make([]string, 0, len(book.Genres))
	for _, genre := range book.Genres {
		genres = append(genres, genre.Name)
	}
	return Book{
		ID:       book.ID,
		Name:     book.Name,
		Price:    book.Price,
		AuthorID: book.AuthorID,
		Genres:   genres,
	}
}

func newGenreModel(genre entities.Genre) Genre {
	return Genre{ID: genre.ID, Name: genre.Name}
}

func newUserModel(user entities.User) User {
	return User{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		AvatarPath: user.AvatarPath,
	}
}
