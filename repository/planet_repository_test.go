package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/starblogbackend/models"
)

func TestPlanetCreateAndGetRoundTrip(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))

	planet := models.Planet{
		UID:        "1",
		Name:       "Tatooine",
		Climate:    strPtr("arid"),
		Population: strPtr("200000"),
	}
	require.NoError(t, repo.Create(&planet))
	require.NotZero(t, planet.ID)

	got, err := repo.GetByID(planet.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.UID)
	assert.Equal(t, "Tatooine", got.Name)
	require.NotNil(t, got.Climate)
	assert.Equal(t, "arid", *got.Climate)
	assert.Nil(t, got.Terrain)
	assert.Nil(t, got.URL)
}

func TestPlanetDuplicateUID(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))

	uid := uuid.NewString()
	require.NoError(t, repo.Create(&models.Planet{UID: uid, Name: "Hoth"}))

	err := repo.Create(&models.Planet{UID: uid, Name: "Hoth Again"})
	require.ErrorIs(t, err, ErrDuplicate)

	// the rejected insert must not leave a second row
	planets, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestPlanetGetMissing(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))

	_, err := repo.GetByID(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetDelete(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))

	planet := models.Planet{UID: "2", Name: "Alderaan"}
	require.NoError(t, repo.Create(&planet))

	deleted, err := repo.Delete(planet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alderaan", deleted.Name)

	_, err = repo.GetByID(planet.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Delete(planet.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetListAllInsertionOrder(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))

	for _, name := range []string{"Dagobah", "Endor", "Naboo"} {
		require.NoError(t, repo.Create(&models.Planet{UID: uuid.NewString(), Name: name}))
	}

	planets, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, planets, 3)
	assert.Equal(t, "Dagobah", planets[0].Name)
	assert.Equal(t, "Naboo", planets[2].Name)
}
