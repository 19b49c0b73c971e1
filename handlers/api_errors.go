package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/camden-git/starblogbackend/repository"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// writeAPIError writes the uniform error envelope used by every endpoint.
func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRepositoryError is the single translation point from repository
// sentinels to HTTP responses. notFoundMsg names the missing resource;
// conflictMsg describes the uniqueness clash for create endpoints. Anything
// unrecognized is logged and becomes a generic 500 so driver errors never
// reach the client.
func writeRepositoryError(w http.ResponseWriter, err error, notFoundMsg, conflictMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeAPIError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrDuplicate):
		writeAPIError(w, http.StatusBadRequest, conflictMsg)
	case errors.Is(err, repository.ErrForeignKey):
		writeAPIError(w, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, repository.ErrInvalidTarget):
		writeAPIError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected storage error: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
	}
}
