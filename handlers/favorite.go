package handlers

import (
	"net/http"

	"github.com/camden-git/starblogbackend/models"
	"github.com/camden-git/starblogbackend/repository"
	"github.com/go-chi/chi/v5"
)

// FavoriteHandler serves the bookmark endpoints. The acting user comes from
// the request context via the CurrentUser middleware, never from the payload.
type FavoriteHandler struct {
	Favorites repository.FavoriteRepositoryInterface
}

func (fh *FavoriteHandler) ListMyFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "no acting user resolved")
		return
	}

	favorites, err := fh.Favorites.ListByUserID(userID)
	if err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (fh *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "no acting user resolved")
		return
	}

	planetID, err := parseID(chi.URLParam(r, "planet_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid planet ID format")
		return
	}

	favorite := models.Favorite{UserID: userID, PlanetID: &planetID}
	if err := fh.Favorites.Create(&favorite); err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (fh *FavoriteHandler) AddFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "no acting user resolved")
		return
	}

	characterID, err := parseID(chi.URLParam(r, "character_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid character ID format")
		return
	}

	favorite := models.Favorite{UserID: userID, CharacterID: &characterID}
	if err := fh.Favorites.Create(&favorite); err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (fh *FavoriteHandler) DeleteFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "no acting user resolved")
		return
	}

	planetID, err := parseID(chi.URLParam(r, "planet_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid planet ID format")
		return
	}

	if err := fh.Favorites.DeleteByUserAndPlanet(userID, planetID); err != nil {
		writeRepositoryError(w, err, "Favorite not found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Favorite deleted"})
}

func (fh *FavoriteHandler) DeleteFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "no acting user resolved")
		return
	}

	characterID, err := parseID(chi.URLParam(r, "character_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid character ID format")
		return
	}

	if err := fh.Favorites.DeleteByUserAndCharacter(userID, characterID); err != nil {
		writeRepositoryError(w, err, "Favorite not found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Favorite deleted"})
}
