package service

import (
	"context"

	"github.com/MKhiriev/go-todo-api/models"
)

type AuthService interface {
	// RegisterUser creates a new account from the given credentials. The
	// returned user carries the stored password hash, never the
	// submitted plaintext.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials and returns the account's bearer
	// token, minting one on first login.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ResolveToken maps an opaque token key to its owning user.
	ResolveToken(ctx context.Context, key string) (models.User, error)

	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]models.User, error)
}

type TodoService interface {
	// CreateItem validates the input, clamps a past due date to today,
	// and persists a new item owned by userID with its tags resolved.
	CreateItem(ctx context.Context, userID int64, input models.TodoItemInput) (models.TodoItem, error)

	// GetItem fetches one of the owner's items with tags loaded.
	GetItem(ctx context.Context, userID, itemID int64) (models.TodoItem, error)

	// ListItems returns the owner's items with tags loaded.
	ListItems(ctx context.Context, userID int64) ([]models.TodoItem, error)

	// ListAllItems returns every item of every owner with tags loaded.
	ListAllItems(ctx context.Context) ([]models.TodoItem, error)

	// UpdateItem replaces the mutable fields of one of the owner's items
	// and rebuilds its tag set from the input.
	UpdateItem(ctx context.Context, userID, itemID int64, input models.TodoItemInput) (models.TodoItem, error)

	// DeleteItem removes one of the owner's items.
	DeleteItem(ctx context.Context, userID, itemID int64) error
}
