package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-api/models"
)

func Test_buildSelectItemsQuery_AllOwners(t *testing.T) {
	query, args, err := buildSelectItemsQuery(nil)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from todo_items")
	require.Contains(t, q, "order by item_id")

	// no owner filter, no placeholders
	require.NotContains(t, q, "where")
	require.Empty(t, args)
}

func Test_buildSelectItemsQuery_OwnerScoped(t *testing.T) {
	userID := int64(42)

	query, args, err := buildSelectItemsQuery(&userID)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, query, "$1")
	require.Contains(t, q, "order by item_id")

	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])
}

func Test_buildSelectItemsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectItemsQuery(nil)
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{
		"item_id",
		"title",
		"description",
		"created_at",
		"due_date",
		"status",
		"user_id",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}

	require.NotContains(t, q, "*", "query should not use SELECT *")
}

func Test_buildSelectItemByIDQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectItemByIDQuery(3, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from todo_items")
	require.Contains(t, q, "where")
	require.Contains(t, q, "item_id")
	require.Contains(t, q, "user_id")

	// both filters carry placeholders
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	require.Len(t, args, 2)
	require.ElementsMatch(t, []any{int64(3), int64(42)}, args)
}

func Test_buildUpdateItemQuery_SQLContainsParts(t *testing.T) {
	owner := int64(42)
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	item := models.TodoItem{
		ItemID:      3,
		Title:       "Renamed",
		Description: "notes",
		DueDate:     &due,
		Status:      models.StatusDone,
		UserID:      &owner,
	}

	query, args, err := buildUpdateItemQuery(item)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update todo_items")
	require.Contains(t, q, "set")
	require.Contains(t, q, "title")
	require.Contains(t, q, "description")
	require.Contains(t, q, "due_date")
	require.Contains(t, q, "status")
	require.Contains(t, q, "where")
	require.Contains(t, q, "returning")

	// created_at must never be rewritten
	setIdx := strings.Index(q, "set")
	whereIdx := strings.Index(q, "where")
	require.NotEqual(t, -1, setIdx)
	require.NotEqual(t, -1, whereIdx)
	setPart := q[setIdx:whereIdx]
	require.NotContains(t, setPart, "created_at")

	// 4 SET values + 2 filter values
	require.Len(t, args, 6)
	assert.Contains(t, args, "Renamed")
	assert.Contains(t, args, "notes")
	assert.Contains(t, args, "DONE")
}

func Test_buildUpdateItemQuery_Idempotent(t *testing.T) {
	owner := int64(1)
	item := models.TodoItem{ItemID: 5, Title: "t", Status: models.StatusOpen, UserID: &owner}

	query1, args1, err1 := buildUpdateItemQuery(item)
	require.NoError(t, err1)
	query2, args2, err2 := buildUpdateItemQuery(item)
	require.NoError(t, err2)

	require.Equal(t, query1, query2)
	require.Equal(t, args1, args2)
}

func Test_buildDeleteItemQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeleteItemQuery(3, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from todo_items")
	require.Contains(t, q, "where")
	require.Contains(t, q, "item_id")
	require.Contains(t, q, "user_id")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	require.Len(t, args, 2)
	require.ElementsMatch(t, []any{int64(3), int64(42)}, args)
}

func Test_buildTagsByItemIDsQuery_SQLContainsParts(t *testing.T) {
	tests := []struct {
		name       string
		itemIDs    []int64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "success: single item",
			itemIDs: []int64{3},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "select")
				require.Contains(t, q, "from todo_item_tags")
				require.Contains(t, q, "join tags")
				require.Contains(t, q, "where")
				require.Contains(t, query, "$1")

				require.Len(t, args, 1)
				require.Equal(t, int64(3), args[0])
			},
		},
		{
			name:    "success: multiple items expand to IN",
			itemIDs: []int64{1, 2, 3},
			checkQuery: func(t *testing.T, query string, args []any) {
				// squirrel generates IN ($1,$2,$3) for a slice
				require.Contains(t, query, "$1")
				require.Contains(t, query, "$2")
				require.Contains(t, query, "$3")

				require.Len(t, args, 3)
				require.Equal(t, int64(1), args[0])
				require.Equal(t, int64(2), args[1])
				require.Equal(t, int64(3), args[2])
			},
		},
		{
			name:    "success: ordered by join table id",
			itemIDs: []int64{7},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "order by tt.id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildTagsByItemIDsQuery(tt.itemIDs)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}
