package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/models"
)

// tagRepository is the SQL-backed implementation of [TagRepository].
// It handles the global tag vocabulary in "tags" and the item
// associations in "todo_item_tags".
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateTag resolves a title to its tag row, inserting the row when
// the title is new. Concurrent creators of the same title converge on a
// single row through the uniqueness constraint.
func (r *tagRepository) GetOrCreateTag(ctx context.Context, title string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, getOrCreateTag, title)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tagRepository.GetOrCreateTag").Msg("error: row is nil")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&tag.TagID, &tag.Title); err != nil {
		log.Err(err).Str("func", "*tagRepository.GetOrCreateTag").Msg("error: scanning error")
		return models.Tag{}, err
	}

	return tag, nil
}

// AttachTag links a tag to an item. Re-attaching an existing link is a
// no-op thanks to the ON CONFLICT DO NOTHING clause.
func (r *tagRepository) AttachTag(ctx context.Context, itemID, tagID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, attachTag, itemID, tagID); err != nil {
		log.Err(err).Str("func", "*tagRepository.AttachTag").Msg("error: executing query")
		return errors.Join(ErrExecutingQuery, err)
	}

	return nil
}

// ClearItemTags removes every association of the item. The tag rows
// themselves are kept: tags are a shared vocabulary and may be linked
// to other items.
func (r *tagRepository) ClearItemTags(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearItemTags, itemID); err != nil {
		log.Err(err).Str("func", "*tagRepository.ClearItemTags").Msg("error: executing query")
		return errors.Join(ErrExecutingQuery, err)
	}

	return nil
}

// ListItemTags returns the tags of a single item in association order.
func (r *tagRepository) ListItemTags(ctx context.Context, itemID int64) ([]models.Tag, error) {
	byItem, err := r.ListTagsByItemIDs(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}

	return byItem[itemID], nil
}

// ListTagsByItemIDs fetches the tags of many items with one query and
// groups them by item id. Items without tags are absent from the map.
func (r *tagRepository) ListTagsByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]models.Tag, error) {
	log := logger.FromContext(ctx)

	if len(itemIDs) == 0 {
		return map[int64][]models.Tag{}, nil
	}

	query, args, err := buildTagsByItemIDsQuery(itemIDs)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTagsByItemIDs").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTagsByItemIDs").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tagsByItem := make(map[int64][]models.Tag)
	for rows.Next() {
		var itemID int64
		var tag models.Tag
		if err := rows.Scan(&itemID, &tag.TagID, &tag.Title); err != nil {
			log.Err(err).Str("func", "*tagRepository.ListTagsByItemIDs").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		tagsByItem[itemID] = append(tagsByItem[itemID], tag)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTagsByItemIDs").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return tagsByItem, nil
}
