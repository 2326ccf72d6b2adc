package services

import "errors"

// Domain errors returned by the service layer. Every error here is raised
// before the enclosing transaction commits; the HTTP layer maps each to a
// client-facing status.
var (
	ErrInvalidDateRange        = errors.New("date_from cannot be after date_to")
	ErrInvalidBookingReference = errors.New("user or book does not exist")
	ErrBookingConflict         = errors.New("book is already booked for the requested dates")
	ErrBookingNotFound         = errors.New("booking was not found")

	ErrBookNotFound    = errors.New("book was not found")
	ErrIncorrectAuthor = errors.New("book author does not exist")

	ErrGenreNotFound       = errors.New("genre was not found")
	ErrDuplicateGenre      = errors.New("genre with this name already exists")
	ErrIncorrectGenreNames = errors.New("one or more genre names do not exist")

	ErrUserNotFound      = errors.New("user was not found")
	ErrAvatarNotUploaded = errors.New("user has no uploaded avatar")
	ErrAvatarFileMissing = errors.New("avatar file was not found")
)
