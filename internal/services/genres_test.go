package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresService_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewGenresService(db)

	id, err := service.Create(GenreInput{Name: "Fantasy"})
	require.NoError(t, err)

	genre, err := service.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", genre.Name)
}

func TestGenresService_DuplicateName(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewGenresService(db)

	_, err := service.Create(GenreInput{Name: "Fantasy"})
	require.NoError(t, err)

	_, err = service.Create(GenreInput{Name: "Fantasy"})
	assert.ErrorIs(t, err, ErrDuplicateGenre)

	t.Run("renaming onto a taken name fails the same way", func(t *testing.T) {
		id, err := service.Create(GenreInput{Name: "Horror"})
		require.NoError(t, err)

		_, err = service.Update(id, GenreInput{Name: "Fantasy"})
		assert.ErrorIs(t, err, ErrDuplicateGenre)
	})
}

func TestGenresService_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewGenresService(db)

	_, err := service.Get(12345)
	assert.ErrorIs(t, err, ErrGenreNotFound)

	_, err = service.Update(12345, GenreInput{Name: "Fantasy"})
	assert.ErrorIs(t, err, ErrGenreNotFound)

	assert.ErrorIs(t, service.Delete(12345), ErrGenreNotFound)
}

func TestGenresService_DeleteTwice(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewGenresService(db)

	id, err := service.Create(GenreInput{Name: "Fantasy"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(id))
	assert.ErrorIs(t, service.Delete(id), ErrGenreNotFound)
}
