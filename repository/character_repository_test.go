package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/starblogbackend/models"
)

func TestCharacterCreateAndGetRoundTrip(t *testing.T) {
	repo := NewCharacterRepository(newTestDB(t))

	character := models.Character{
		UID:       "1",
		Name:      "Luke Skywalker",
		Gender:    strPtr("male"),
		BirthYear: strPtr("19BBY"),
	}
	require.NoError(t, repo.Create(&character))

	got, err := repo.GetByID(character.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Name)
	require.NotNil(t, got.BirthYear)
	assert.Equal(t, "19BBY", *got.BirthYear)
	assert.Nil(t, got.Height)
}

func TestCharacterDuplicateUID(t *testing.T) {
	repo := NewCharacterRepository(newTestDB(t))

	uid := uuid.NewString()
	require.NoError(t, repo.Create(&models.Character{UID: uid, Name: "Leia"}))
	require.ErrorIs(t, repo.Create(&models.Character{UID: uid, Name: "Leia Again"}), ErrDuplicate)
}

func TestCharacterDeleteMissing(t *testing.T) {
	repo := NewCharacterRepository(newTestDB(t))

	_, err := repo.Delete(999)
	require.ErrorIs(t, err, ErrNotFound)
}
