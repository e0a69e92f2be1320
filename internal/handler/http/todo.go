package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/models"
)

// createTodo persists a new item owned by the authenticated caller.
// Answers 201 with the full item, tags inlined as titles.
func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.TodoItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.TodoService.CreateItem(ctx, userID, input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	log.Debug().Int64("itemID", item.ItemID).Int64("userID", userID).Msg("todo item created")

	utils.WriteJSON(w, models.NewTodoItemResponse(item), http.StatusCreated)
}

// getTodo answers one of the caller's items. A foreign or missing id
// yields the fixed 404 body.
func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID, ok := itemIDFromURL(w, r)
	if !ok {
		return
	}

	item, err := h.services.TodoService.GetItem(ctx, userID, itemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTodoItemResponse(item), http.StatusOK)
}

// listTodos answers every item of the authenticated caller.
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.TodoService.ListItems(ctx, userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTodoItemResponses(items), http.StatusOK)
}

// listAllTodos answers every item of every owner. The route carries no
// authentication.
func (h *Handler) listAllTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.services.TodoService.ListAllItems(ctx)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTodoItemResponses(items), http.StatusOK)
}

// updateTodo replaces one of the caller's items and answers the updated
// representation.
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID, ok := itemIDFromURL(w, r)
	if !ok {
		return
	}

	var input models.TodoItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.TodoService.UpdateItem(ctx, userID, itemID, input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	log.Debug().Int64("itemID", itemID).Int64("userID", userID).Msg("todo item updated")

	utils.WriteJSON(w, models.NewTodoItemResponse(item), http.StatusOK)
}

// deleteTodo removes one of the caller's items and answers a
// confirmation message naming the deleted id.
func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID, ok := itemIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.DeleteItem(ctx, userID, itemID); err != nil {
		writeDomainError(w, r, err)
		return
	}

	log.Debug().Int64("itemID", itemID).Int64("userID", userID).Msg("todo item deleted")

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Item %d deleted successfully!", itemID),
	}, http.StatusOK)
}

// itemIDFromURL parses the {id} route parameter. A non-numeric id cannot
// name any item, so it answers the same 404 body as a missing row and
// reports false.
func itemIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: todoItemNotFound}, http.StatusNotFound)
		return 0, false
	}

	return itemID, true
}
