package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/camden-git/starblogbackend/models"
	"github.com/camden-git/starblogbackend/repository"
	"github.com/go-chi/chi/v5"
)

type CharacterHandler struct {
	Characters repository.CharacterRepositoryInterface
}

type characterPayload struct {
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	Gender    *string `json:"gender"`
	BirthYear *string `json:"birth_year"`
	Height    *string `json:"height"`
	URL       *string `json:"url"`
}

func (ch *CharacterHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := ch.Characters.ListAll()
	if err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	if characters == nil {
		characters = []models.Character{}
	}
	writeJSON(w, http.StatusOK, characters)
}

func (ch *CharacterHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "character_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid character ID format")
		return
	}

	character, err := ch.Characters.GetByID(id)
	if err != nil {
		writeRepositoryError(w, err, "Character not found", "")
		return
	}
	writeJSON(w, http.StatusOK, character)
}

func (ch *CharacterHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req characterPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.UID) == "" {
		writeAPIError(w, http.StatusBadRequest, "Missing required fields: name, uid")
		return
	}

	character := models.Character{
		UID:       req.UID,
		Name:      req.Name,
		Gender:    req.Gender,
		BirthYear: req.BirthYear,
		Height:    req.Height,
		URL:       req.URL,
	}

	if err := ch.Characters.Create(&character); err != nil {
		writeRepositoryError(w, err, "", "Character already exists with this uid")
		return
	}
	writeJSON(w, http.StatusCreated, character)
}

func (ch *CharacterHandler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "character_id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid character ID format")
		return
	}

	character, err := ch.Characters.Delete(id)
	if err != nil {
		writeRepositoryError(w, err, "Character not found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Character %s deleted", character.Name)})
}
