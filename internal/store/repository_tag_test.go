package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestTagRepo(t *testing.T) (*tagRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &tagRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestGetOrCreateTag_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"tag_id", "title"}).
		AddRow(7, "urgent")

	mock.ExpectQuery("INSERT INTO tags").
		WithArgs("urgent").
		WillReturnRows(rows)

	tag, err := repo.GetOrCreateTag(ctx, "urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.TagID != 7 || tag.Title != "urgent" {
		t.Errorf("unexpected tag: %+v", tag)
	}
}

func TestGetOrCreateTag_DBError(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO tags").
		WithArgs("urgent").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetOrCreateTag(ctx, "urgent")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestAttachTag_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO todo_item_tags").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AttachTag(ctx, 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachTag_DuplicateIsNoop(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	// ON CONFLICT DO NOTHING: zero rows affected, still no error
	mock.ExpectExec("INSERT INTO todo_item_tags").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AttachTag(ctx, 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearItemTags_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM todo_item_tags").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.ClearItemTags(ctx, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearItemTags_DBError(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM todo_item_tags").
		WithArgs(int64(3)).
		WillReturnError(errors.New("db failure"))

	err := repo.ClearItemTags(ctx, 3)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListTagsByItemIDs_GroupsByItem(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"item_id", "tag_id", "title"}).
		AddRow(1, 10, "home").
		AddRow(1, 11, "urgent").
		AddRow(2, 10, "home")

	mock.ExpectQuery("SELECT tt.item_id").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	tagsByItem, err := repo.ListTagsByItemIDs(ctx, []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tagsByItem[1]) != 2 {
		t.Errorf("expected 2 tags for item 1, got %d", len(tagsByItem[1]))
	}
	if len(tagsByItem[2]) != 1 {
		t.Errorf("expected 1 tag for item 2, got %d", len(tagsByItem[2]))
	}
	if tagsByItem[1][0].Title != "home" || tagsByItem[1][1].Title != "urgent" {
		t.Errorf("tags out of association order: %+v", tagsByItem[1])
	}
}

func TestListTagsByItemIDs_EmptyInput(t *testing.T) {
	repo, _, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	// no query should hit the database
	tagsByItem, err := repo.ListTagsByItemIDs(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tagsByItem) != 0 {
		t.Fatalf("expected empty map, got %v", tagsByItem)
	}
}

func TestListItemTags_UntaggedItem(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT tt.item_id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "tag_id", "title"}))

	tags, err := repo.ListItemTags(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", tags)
	}
}
