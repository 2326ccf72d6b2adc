package services

import (
	"errors"
	"io"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/avatars"
	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/entities"
)

// UserInput carries the user initials for create and update.
type UserInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// UsersService implements user CRUD and avatar management. File I/O is
// delegated to the avatar store; the database row only keeps the path.
type UsersService struct {
	db      *database.Database
	avatars *avatars.Store
}

// NewUsersService creates a new users service.
func NewUsersService(db *database.Database, avatarStore *avatars.Store) *UsersService {
	return &UsersService{db: db, avatars: avatarStore}
}

// Get returns a user by ID.
func (s *UsersService) Get(id uint) (User, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback()

	user, err := tx.Users.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return newUserModel(*user), nil
}

// GetAll returns all users.
func (s *UsersService) GetAll() ([]User, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Users.GetAll()
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, newUserModel(row))
	}
	return users, nil
}

// Create adds a user and returns the generated ID.
func (s *UsersService) Create(data UserInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	user := &entities.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
	if err := tx.Users.Create(user); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Update replaces the user's initials.
func (s *UsersService) Update(id uint, data UserInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	user := &entities.User{
		ID:        id,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
	if err := tx.Users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes a user and their avatar file, if any.
func (s *UsersService) Delete(id uint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	user, err := tx.Users.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if err := tx.Users.Delete(id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// The row is gone; a leftover file is only worth a log line.
	if user.AvatarPath != "" {
		if err := s.avatars.Remove(user.AvatarPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove avatar for user %d: %v", id, err)
		}
	}
	return nil
}

// UploadAvatar stores the avatar file for a user and records its path.
func (s *UsersService) UploadAvatar(id uint, avatar io.Reader) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Users.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	path, err := s.avatars.Save(id, avatar)
	if err != nil {
		return 0, err
	}
	if err := tx.Users.SetAvatarPath(id, path); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteAvatar removes the user's avatar file and clears the stored path.
func (s *UsersService) DeleteAvatar(id uint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	user, err := tx.Users.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.AvatarPath == "" {
		return ErrAvatarNotUploaded
	}

	if err := s.avatars.Remove(user.AvatarPath); err != nil {
		if os.IsNotExist(err) {
			return ErrAvatarFileMissing
		}
		return err
	}
	if err := tx.Users.SetAvatarPath(id, ""); err != nil {
		return err
	}
	return tx.Commit()
}
