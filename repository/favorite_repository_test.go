package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camden-git/starblogbackend/models"
)

type favoriteFixture struct {
	db        *gorm.DB
	users     *UserRepository
	planets   *PlanetRepository
	chars     *CharacterRepository
	favorites *FavoriteRepository

	user      models.User
	planet    models.Planet
	character models.Character
}

func newFavoriteFixture(t *testing.T) *favoriteFixture {
	t.Helper()
	db := newTestDB(t)

	f := &favoriteFixture{
		db:      db,
		users:   NewUserRepository(db),
		planets: NewPlanetRepository(db),
		chars:   NewCharacterRepository(db),
	}
	var err error
	f.favorites, err = NewFavoriteRepository(db)
	require.NoError(t, err)

	f.user = models.User{Email: uuid.NewString() + "@example.com", Password: "pw", IsActive: true}
	require.NoError(t, f.users.Create(&f.user))

	f.planet = models.Planet{UID: uuid.NewString(), Name: "Kashyyyk"}
	require.NoError(t, f.planets.Create(&f.planet))

	f.character = models.Character{UID: uuid.NewString(), Name: "Chewbacca"}
	require.NoError(t, f.chars.Create(&f.character))

	return f
}

func TestFavoriteCreateAndListByUser(t *testing.T) {
	f := newFavoriteFixture(t)

	fav := models.Favorite{UserID: f.user.ID, PlanetID: &f.planet.ID}
	require.NoError(t, f.favorites.Create(&fav))
	require.NotZero(t, fav.ID)

	got, err := f.favorites.ListByUserID(f.user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.user.ID, got[0].UserID)
	require.NotNil(t, got[0].PlanetID)
	assert.Equal(t, f.planet.ID, *got[0].PlanetID)
	assert.Nil(t, got[0].CharacterID)

	// other users see nothing
	other, err := f.favorites.ListByUserID(f.user.ID + 1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFavoriteRequiresExactlyOneTarget(t *testing.T) {
	f := newFavoriteFixture(t)

	err := f.favorites.Create(&models.Favorite{UserID: f.user.ID})
	require.ErrorIs(t, err, ErrInvalidTarget)

	err = f.favorites.Create(&models.Favorite{
		UserID:      f.user.ID,
		PlanetID:    &f.planet.ID,
		CharacterID: &f.character.ID,
	})
	require.ErrorIs(t, err, ErrInvalidTarget)

	got, err := f.favorites.ListByUserID(f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoriteDanglingReferencesRejected(t *testing.T) {
	f := newFavoriteFixture(t)

	missing := uint(9999)

	err := f.favorites.Create(&models.Favorite{UserID: missing, PlanetID: &f.planet.ID})
	require.ErrorIs(t, err, ErrForeignKey)

	err = f.favorites.Create(&models.Favorite{UserID: f.user.ID, PlanetID: &missing})
	require.ErrorIs(t, err, ErrForeignKey)

	got, err := f.favorites.ListByUserID(f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, got, "no orphan favorite may be persisted")
}

func TestFavoriteDeleteByUserAndTarget(t *testing.T) {
	f := newFavoriteFixture(t)

	require.NoError(t, f.favorites.Create(&models.Favorite{UserID: f.user.ID, PlanetID: &f.planet.ID}))
	require.NoError(t, f.favorites.Create(&models.Favorite{UserID: f.user.ID, CharacterID: &f.character.ID}))

	require.NoError(t, f.favorites.DeleteByUserAndPlanet(f.user.ID, f.planet.ID))
	require.ErrorIs(t, f.favorites.DeleteByUserAndPlanet(f.user.ID, f.planet.ID), ErrNotFound)

	got, err := f.favorites.ListByUserID(f.user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CharacterID)

	require.NoError(t, f.favorites.DeleteByUserAndCharacter(f.user.ID, f.character.ID))
	require.ErrorIs(t, f.favorites.DeleteByUserAndCharacter(f.user.ID, f.character.ID), ErrNotFound)
}

func TestFavoriteCascadesWithTarget(t *testing.T) {
	f := newFavoriteFixture(t)

	require.NoError(t, f.favorites.Create(&models.Favorite{UserID: f.user.ID, PlanetID: &f.planet.ID}))
	require.NoError(t, f.favorites.Create(&models.Favorite{UserID: f.user.ID, CharacterID: &f.character.ID}))

	_, err := f.planets.Delete(f.planet.ID)
	require.NoError(t, err)

	got, err := f.favorites.ListByUserID(f.user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1, "planet favorite must be cascaded away")
	assert.Nil(t, got[0].PlanetID)
	require.NotNil(t, got[0].CharacterID)
	assert.Equal(t, f.character.ID, *got[0].CharacterID)
}
