package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-api/models"
)

// Static queries. All statements use $N placeholders, which both the
// pgx and go-sqlite3 drivers accept.
const (
	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING user_id, username, password, created_at;`

	findUserByUsername = `SELECT user_id, username, password, created_at
    FROM users
    WHERE username = $1;`

	listUsers = `SELECT user_id, username, password, created_at
    FROM users
    ORDER BY user_id;`

	// getOrCreateToken inserts the candidate key unless the user already
	// holds a token; the no-op DO UPDATE makes the RETURNING clause
	// yield the surviving row either way, so a login race converges on
	// one token without a separate select.
	getOrCreateToken = `INSERT INTO auth_tokens (token_key, user_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET user_id = excluded.user_id
    RETURNING token_key, user_id, created_at;`

	findUserByTokenKey = `SELECT u.user_id, u.username, u.password, u.created_at
    FROM auth_tokens AS t
    JOIN users AS u ON u.user_id = t.user_id
    WHERE t.token_key = $1;`

	// getOrCreateTag resolves the check-then-create race through the
	// uniqueness constraint on the title: the losing inserter falls
	// back to the now-existing row via the no-op DO UPDATE.
	getOrCreateTag = `INSERT INTO tags (title)
    VALUES ($1)
    ON CONFLICT (title) DO UPDATE SET title = excluded.title
    RETURNING tag_id, title;`

	attachTag = `INSERT INTO todo_item_tags (item_id, tag_id)
    VALUES ($1, $2)
    ON CONFLICT (item_id, tag_id) DO NOTHING;`

	clearItemTags = `DELETE FROM todo_item_tags
    WHERE item_id = $1;`

	createTodoItem = `INSERT INTO todo_items (title, description, due_date, status, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING item_id, title, description, created_at, due_date, status, user_id;`
)

// todoItemColumns is the canonical column order scanned by every
// todo_items query.
var todoItemColumns = []string{
	"item_id",
	"title",
	"description",
	"created_at",
	"due_date",
	"status",
	"user_id",
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectItemsQuery builds the item listing query. A nil userID
// selects every item of every owner; otherwise the result is scoped to
// the given owner. Ordering is by primary key in both cases.
func buildSelectItemsQuery(userID *int64) (string, []any, error) {
	builder := psql.
		Select(todoItemColumns...).
		From("todo_items").
		OrderBy("item_id")

	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}

	return builder.ToSql()
}

// buildSelectItemByIDQuery builds the owner-scoped single-item lookup.
// The owner filter is part of the WHERE clause, so items of other users
// are indistinguishable from missing ones.
func buildSelectItemByIDQuery(itemID, userID int64) (string, []any, error) {
	return psql.
		Select(todoItemColumns...).
		From("todo_items").
		Where(sq.Eq{"item_id": itemID, "user_id": userID}).
		ToSql()
}

// buildUpdateItemQuery builds the owner-scoped item update. Every
// mutable column is rewritten; created_at is deliberately absent from
// the SET list. The RETURNING clause hands back the canonical row.
func buildUpdateItemQuery(item models.TodoItem) (string, []any, error) {
	return psql.
		Update("todo_items").
		Set("title", item.Title).
		Set("description", item.Description).
		Set("due_date", item.DueDate).
		Set("status", string(item.Status)).
		Where(sq.Eq{"item_id": item.ItemID, "user_id": item.UserID}).
		Suffix("RETURNING item_id, title, description, created_at, due_date, status, user_id").
		ToSql()
}

// buildDeleteItemQuery builds the owner-scoped hard delete.
func buildDeleteItemQuery(itemID, userID int64) (string, []any, error) {
	return psql.
		Delete("todo_items").
		Where(sq.Eq{"item_id": itemID, "user_id": userID}).
		ToSql()
}

// buildTagsByItemIDsQuery builds the bulk tag lookup for a set of
// items. squirrel expands the slice into an IN clause. Rows come back
// ordered by the join table's serial id, which is the association
// order shown on the wire.
func buildTagsByItemIDsQuery(itemIDs []int64) (string, []any, error) {
	return psql.
		Select("tt.item_id", "t.tag_id", "t.title").
		From("todo_item_tags AS tt").
		Join("tags AS t ON t.tag_id = tt.tag_id").
		Where(sq.Eq{"tt.item_id": itemIDs}).
		OrderBy("tt.id").
		ToSql()
}
