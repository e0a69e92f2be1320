package store

import (
	"context"

	"github.com/MKhiriev/go-todo-api/models"
)

// UserRepository handles account rows in the "users" table.
type UserRepository interface {
	// CreateUser persists a new account. The Password field must already
	// hold the encoded hash. Returns ErrUsernameTaken on a username
	// collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves an account by its unique username.
	// Returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsers returns every account, ordered by primary key.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TokenRepository handles the opaque bearer tokens in "auth_tokens".
type TokenRepository interface {
	// GetOrCreateToken returns the user's existing token, or inserts
	// candidateKey as the new token when the user has none. The
	// uniqueness constraint on user_id makes concurrent calls converge
	// on a single row.
	GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error)

	// FindUserByTokenKey resolves an opaque token key to its owning
	// user. Returns ErrTokenNotFound when the key is unknown.
	FindUserByTokenKey(ctx context.Context, key string) (models.User, error)
}

// TagRepository handles tags and their associations to to-do items.
type TagRepository interface {
	// GetOrCreateTag looks a tag up by its title and creates it when
	// absent. The lookup-or-insert is a single conflict-tolerant
	// statement so concurrent creators of the same title converge on
	// one row.
	GetOrCreateTag(ctx context.Context, title string) (models.Tag, error)

	// AttachTag associates a tag with an item. Attaching an already
	// associated tag is a no-op.
	AttachTag(ctx context.Context, itemID, tagID int64) error

	// ClearItemTags removes every tag association of the item. The tags
	// themselves persist.
	ClearItemTags(ctx context.Context, itemID int64) error

	// ListItemTags returns the item's tags in association order.
	ListItemTags(ctx context.Context, itemID int64) ([]models.Tag, error)

	// ListTagsByItemIDs returns the tags of many items at once, keyed
	// by item id, each list in association order.
	ListTagsByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]models.Tag, error)
}

// TodoRepository handles rows in the "todo_items" table. Methods taking
// a userID filter by ownership: an item owned by someone else behaves
// exactly like a missing item.
type TodoRepository interface {
	// CreateItem inserts a new item and returns it with server-assigned
	// fields (ItemID, CreatedAt) populated.
	CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)

	// FindItemByID fetches a single item filtered by id AND owner.
	// Returns ErrTodoItemNotFound when absent or owned by another user.
	FindItemByID(ctx context.Context, itemID, userID int64) (models.TodoItem, error)

	// ListItemsByUser returns the owner's items ordered by primary key.
	ListItemsByUser(ctx context.Context, userID int64) ([]models.TodoItem, error)

	// ListAllItems returns every item of every owner, ordered by
	// primary key.
	ListAllItems(ctx context.Context) ([]models.TodoItem, error)

	// UpdateItem rewrites the mutable columns of the item identified by
	// item.ItemID and item.UserID. Returns ErrTodoItemNotFound when the
	// id+owner filter matches nothing. CreatedAt is never touched.
	UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)

	// DeleteItem hard-deletes the item identified by id+owner.
	// Returns ErrTodoItemNotFound when the filter matches nothing.
	DeleteItem(ctx context.Context, itemID, userID int64) error
}
