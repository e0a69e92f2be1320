package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/models"
)

// todoRepository is the SQL-backed implementation of [TodoRepository].
// Every owner-scoped method folds the user id into the WHERE clause, so
// another user's item and a nonexistent item are the same empty result.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts a new to-do item and returns the canonical row with
// server-assigned fields (ItemID, CreatedAt) populated. Tags are not
// touched here; associations live in the tag repository.
func (r *todoRepository) CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTodoItem,
		item.Title, item.Description, item.DueDate, string(item.Status), item.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateItem").Msg("error: row is nil")
		return models.TodoItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved item from db
	var created models.TodoItem
	if err := scanTodoItemRow(row, &created); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateItem").Msg("error: scanning error")
		return models.TodoItem{}, err
	}

	return created, nil
}

// FindItemByID fetches one item filtered by id and owner.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTodoItemNotFound]; items of other owners
//     surface the same way.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *todoRepository) FindItemByID(ctx context.Context, itemID, userID int64) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByIDQuery(itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindItemByID").Msg("error: building query")
		return models.TodoItem{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.FindItemByID").Msg("error: row is nil")
		return models.TodoItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.TodoItem
	if err := scanTodoItemRow(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoItemNotFound
		}
		log.Err(err).Str("func", "*todoRepository.FindItemByID").Msg("error: scanning error")
		return models.TodoItem{}, err
	}

	return found, nil
}

// ListItemsByUser returns the owner's items ordered by primary key.
func (r *todoRepository) ListItemsByUser(ctx context.Context, userID int64) ([]models.TodoItem, error) {
	return r.listItems(ctx, &userID)
}

// ListAllItems returns every item of every owner ordered by primary key.
func (r *todoRepository) ListAllItems(ctx context.Context) ([]models.TodoItem, error) {
	return r.listItems(ctx, nil)
}

func (r *todoRepository) listItems(ctx context.Context, userID *int64) ([]models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.listItems").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.listItems").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.TodoItem
	for rows.Next() {
		var item models.TodoItem
		if err := scanTodoItemRow(rows, &item); err != nil {
			log.Err(err).Str("func", "*todoRepository.listItems").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.listItems").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem rewrites the mutable columns of the row identified by
// item.ItemID and item.UserID and returns the canonical row via
// RETURNING. A filter that matches nothing (missing item or foreign
// owner) yields [ErrTodoItemNotFound].
func (r *todoRepository) UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateItem").Msg("error: building query")
		return models.TodoItem{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateItem").Msg("error: row is nil")
		return models.TodoItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.TodoItem
	if err := scanTodoItemRow(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TodoItem{}, ErrTodoItemNotFound
		}
		log.Err(err).Str("func", "*todoRepository.UpdateItem").Msg("error: scanning error")
		return models.TodoItem{}, err
	}

	return updated, nil
}

// DeleteItem hard-deletes the row identified by id and owner. The join
// table rows disappear through ON DELETE CASCADE. A zero-row delete
// yields [ErrTodoItemNotFound].
func (r *todoRepository) DeleteItem(ctx context.Context, itemID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteItem").Msg("error: building query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteItem").Msg("error: executing query")
		return errors.Join(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteItem").Msg("error: reading rows affected")
		return errors.Join(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoItemNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodoItemRow scans one row in the [todoItemColumns] order. DueDate
// and UserID are pointers so NULL columns land as nil.
func scanTodoItemRow(row rowScanner, item *models.TodoItem) error {
	return row.Scan(
		&item.ItemID,
		&item.Title,
		&item.Description,
		&item.CreatedAt,
		&item.DueDate,
		&item.Status,
		&item.UserID,
	)
}
