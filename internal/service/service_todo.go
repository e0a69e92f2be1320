package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/internal/validators"
	"github.com/MKhiriev/go-todo-api/models"
)

// todoService is the concrete implementation of TodoService. It owns
// the write path of to-do items: due-date clamping, field validation,
// owner stamping, and tag materialisation all happen here, so the
// repositories below stay free of domain rules.
type todoService struct {
	todoRepository store.TodoRepository
	tagRepository  store.TagRepository

	// now returns the current wall-clock time; swapped in tests to pin
	// the due-date clamp.
	now func() time.Time

	logger *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given
// repositories.
func NewTodoService(todoRepository store.TodoRepository, tagRepository store.TagRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		tagRepository:  tagRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateItem validates the input and persists a new item owned by
// userID.
//
// A due date lying in the past is silently clamped to today before
// storage; a malformed one aborts with [validators.DueDateFormatError]
// before any field validation runs. Tags are resolved get-or-create by
// title and attached in payload order. The returned item is the
// persisted row with its tags loaded.
func (s *todoService) CreateItem(ctx context.Context, userID int64, input models.TodoItemInput) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	dueDate, err := s.resolveDueDate(input.DueDate)
	if err != nil {
		return models.TodoItem{}, err
	}

	if fieldErrs := validators.ValidateTodoInput(input); fieldErrs != nil {
		log.Error().Int64("userID", userID).Msg("invalid todo item data provided")
		return models.TodoItem{}, fieldErrs
	}

	item := models.TodoItem{
		Title:       *input.Title,
		Description: stringOrEmpty(input.Description),
		DueDate:     dueDate,
		Status:      resolveStatus(input.Status),
		UserID:      &userID,
	}

	created, err := s.todoRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("todo item creation ended with error")
		return models.TodoItem{}, fmt.Errorf("todo item creation ended with error: %w", err)
	}

	if err := s.materializeTags(ctx, created.ItemID, input.Tags); err != nil {
		return models.TodoItem{}, err
	}

	return s.withTags(ctx, created)
}

// GetItem fetches one of the owner's items with its tags loaded. An
// item owned by someone else surfaces as [store.ErrTodoItemNotFound].
func (s *todoService) GetItem(ctx context.Context, userID, itemID int64) (models.TodoItem, error) {
	item, err := s.todoRepository.FindItemByID(ctx, itemID, userID)
	if err != nil {
		return models.TodoItem{}, err
	}

	return s.withTags(ctx, item)
}

// ListItems returns the owner's items with tags loaded.
func (s *todoService) ListItems(ctx context.Context, userID int64) ([]models.TodoItem, error) {
	items, err := s.todoRepository.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.loadTags(ctx, items)
}

// ListAllItems returns every item of every owner with tags loaded.
func (s *todoService) ListAllItems(ctx context.Context) ([]models.TodoItem, error) {
	items, err := s.todoRepository.ListAllItems(ctx)
	if err != nil {
		return nil, err
	}

	return s.loadTags(ctx, items)
}

// UpdateItem replaces the mutable fields of one of the owner's items.
//
// The update is a full replace of title and status: an omitted status
// falls back to the default rather than keeping the stored one.
// Description and due date keep their stored values when absent from
// the input. The tag set is rebuilt from scratch, so an omitted tags
// list detaches everything.
func (s *todoService) UpdateItem(ctx context.Context, userID, itemID int64, input models.TodoItemInput) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	dueDate, err := s.resolveDueDate(input.DueDate)
	if err != nil {
		return models.TodoItem{}, err
	}

	existing, err := s.todoRepository.FindItemByID(ctx, itemID, userID)
	if err != nil {
		return models.TodoItem{}, err
	}

	if fieldErrs := validators.ValidateTodoInput(input); fieldErrs != nil {
		log.Error().Int64("userID", userID).Int64("itemID", itemID).Msg("invalid todo item data provided")
		return models.TodoItem{}, fieldErrs
	}

	existing.Title = *input.Title
	existing.Status = resolveStatus(input.Status)
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if dueDate != nil {
		existing.DueDate = dueDate
	}

	updated, err := s.todoRepository.UpdateItem(ctx, existing)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("itemID", itemID).Msg("todo item update ended with error")
		return models.TodoItem{}, fmt.Errorf("todo item update ended with error: %w", err)
	}

	if err := s.tagRepository.ClearItemTags(ctx, itemID); err != nil {
		return models.TodoItem{}, fmt.Errorf("clearing tag links ended with error: %w", err)
	}
	if err := s.materializeTags(ctx, itemID, input.Tags); err != nil {
		return models.TodoItem{}, err
	}

	return s.withTags(ctx, updated)
}

// DeleteItem removes one of the owner's items. Tag links vanish with
// the row; the tag vocabulary is untouched.
func (s *todoService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	return s.todoRepository.DeleteItem(ctx, itemID, userID)
}

// resolveDueDate clamps a submitted due date and parses it for storage.
// A nil input stays nil. A malformed value surfaces as
// [validators.DueDateFormatError].
func (s *todoService) resolveDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	clamped, err := validators.ValidateDueDate(*raw, s.now())
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(models.DueDateLayout, clamped)
	if err != nil {
		return nil, fmt.Errorf("parsing clamped due date: %w", err)
	}

	return &parsed, nil
}

// materializeTags resolves each title get-or-create and attaches it to
// the item. Attachment order follows the payload, which fixes the order
// tags are listed in responses.
func (s *todoService) materializeTags(ctx context.Context, itemID int64, titles []string) error {
	log := logger.FromContext(ctx)

	for _, title := range titles {
		tag, err := s.tagRepository.GetOrCreateTag(ctx, title)
		if err != nil {
			log.Err(err).Int64("itemID", itemID).Str("title", title).Msg("tag resolution ended with error")
			return fmt.Errorf("tag resolution ended with error: %w", err)
		}
		if err := s.tagRepository.AttachTag(ctx, itemID, tag.TagID); err != nil {
			log.Err(err).Int64("itemID", itemID).Str("title", title).Msg("tag attachment ended with error")
			return fmt.Errorf("tag attachment ended with error: %w", err)
		}
	}

	return nil
}

// withTags loads the single item's tags onto it.
func (s *todoService) withTags(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	tags, err := s.tagRepository.ListItemTags(ctx, item.ItemID)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("tag listing ended with error: %w", err)
	}

	item.Tags = tags
	return item, nil
}

// loadTags bulk-loads tags for a listing with one query.
func (s *todoService) loadTags(ctx context.Context, items []models.TodoItem) ([]models.TodoItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	tagsByItem, err := s.tagRepository.ListTagsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("tag listing ended with error: %w", err)
	}

	for i := range items {
		items[i].Tags = tagsByItem[items[i].ItemID]
	}

	return items, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// resolveStatus falls back to the default status when none was
// submitted. Validation has already rejected unknown values.
func resolveStatus(raw *string) models.Status {
	if raw == nil || *raw == "" {
		return models.StatusOpen
	}
	return models.Status(*raw)
}
