package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/camden-git/starblogbackend/models"
	"github.com/camden-git/starblogbackend/repository"
	"github.com/go-chi/chi/v5"
)

type PlanetHandler struct {
	Planets repository.PlanetRepositoryInterface
}

type planetPayload struct {
	UID        string  `json:"uid"`
	Name       string  `json:"name"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
	URL        *string `json:"url"`
}

func (ph *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := ph.Planets.ListAll()
	if err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	if planets == nil {
		planets = []models.Planet{}
	}
	writeJSON(w, http.StatusOK, planets)
}

func (ph *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "planet_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid planet ID format")
		return
	}

	planet, err := ph.Planets.GetByID(id)
	if err != nil {
		writeRepositoryError(w, err, "Planet not found", "")
		return
	}
	writeJSON(w, http.StatusOK, planet)
}

func (ph *PlanetHandler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req planetPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.UID) == "" {
		writeAPIError(w, http.StatusBadRequest, "Missing required fields: name, uid")
		return
	}

	planet := models.Planet{
		UID:        req.UID,
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
		URL:        req.URL,
	}

	if err := ph.Planets.Create(&planet); err != nil {
		writeRepositoryError(w, err, "", "Planet already exists with this uid")
		return
	}
	writeJSON(w, http.StatusCreated, planet)
}

func (ph *PlanetHandler) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "planet_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid planet ID format")
		return
	}

	planet, err := ph.Planets.Delete(id)
	if err != nil {
		writeRepositoryError(w, err, "Planet not found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Planet %s deleted", planet.Name)})
}

// parseID parses a positive integer path parameter into a surrogate key.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
