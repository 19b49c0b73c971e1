package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/camden-git/starblogbackend/models"
	"github.com/camden-git/starblogbackend/repository"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	Users repository.UserRepositoryInterface
}

type userPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uh *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uh.Users.ListAll()
	if err != nil {
		writeRepositoryError(w, err, "", "")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (uh *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := uh.Users.GetByEmail(email)
	if err != nil {
		writeRepositoryError(w, err, "User not found", "")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateUser registers a new account. Duplicate emails are rejected by the
// unique index rather than a prior lookup, so concurrent signups with the
// same address cannot both succeed.
func (uh *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		writeAPIError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: req.Password,
		IsActive: true,
	}

	if err := uh.Users.Create(&user); err != nil {
		writeRepositoryError(w, err, "", "User already exists with this email")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}
