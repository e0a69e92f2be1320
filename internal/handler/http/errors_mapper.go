package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/internal/validators"
	"github.com/MKhiriev/go-todo-api/models"
)

// todoItemNotFound is the body text of every 404 produced by an
// id-or-owner miss. Its wording is part of the wire contract.
const todoItemNotFound = "TodoItem matching query does not exist."

// writeDomainError renders a service-layer failure onto the response.
//
// Three error families carry their own wire shape:
//   - [validators.FieldErrors] → 400 with the per-field message map as body.
//   - [validators.DueDateFormatError] → 400 with {"error": <message>}.
//   - [store.ErrTodoItemNotFound] → 404 with the fixed not-found body.
//
// Everything else is an internal failure and yields a bare 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		utils.WriteJSON(w, fieldErrs, http.StatusBadRequest)
		return
	}

	var formatErr *validators.DueDateFormatError
	if errors.As(err, &formatErr) {
		utils.WriteJSON(w, models.ErrorResponse{Error: formatErr.Error()}, http.StatusBadRequest)
		return
	}

	if errors.Is(err, store.ErrTodoItemNotFound) {
		utils.WriteJSON(w, models.ErrorResponse{Error: todoItemNotFound}, http.StatusNotFound)
		return
	}

	log.Err(err).Msg("unexpected error while handling request")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
