package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/models"
)

// register creates a new account from a JSON credentials body.
//
// A successful registration answers 201 with the stored username and
// password hash. Validation failures (missing fields, taken username)
// answer 400 with a per-field message map.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Username: registeredUser.Username,
		Password: registeredUser.Password,
	}, http.StatusCreated)
}

// login exchanges credentials for the account's opaque token.
//
// Wrong username and wrong password answer the same 400 body so the
// endpoint cannot be used to probe for registered usernames.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.Key}, http.StatusOK)
}

// listUsers answers every registered account. The stored password hash
// is included in the body, mirroring the users table.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
