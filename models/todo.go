package models

import "time"

// Status is the workflow state of a to-do item. It is a free-form enum:
// any authenticated owner may move an item between any two states in a
// single write. OVERDUE is declared but never derived by the server.
type Status string

const (
	StatusOpen    Status = "OPEN"
	StatusWorking Status = "WORKING"
	StatusDone    Status = "DONE"
	StatusOverdue Status = "OVERDUE"
)

// Valid reports whether s is one of the four declared statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusWorking, StatusDone, StatusOverdue:
		return true
	}
	return false
}

// DueDateLayout is the wire format of the due_date field.
// It corresponds to the strptime pattern %Y-%m-%d.
const DueDateLayout = "2006-01-02"

// Field length limits enforced on every write.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 1000
)

// TodoItem is the persisted representation of a single to-do entry.
type TodoItem struct {
	// ItemID is the server-assigned primary key.
	ItemID int64

	// Title is required and at most TitleMaxLen characters.
	Title string

	// Description is optional free text, at most DescriptionMaxLen characters.
	Description string

	// CreatedAt is assigned by the database on insert and never mutated.
	CreatedAt time.Time

	// DueDate is optional. Writes clamp it forward so that it is never
	// in the past; see the validators package.
	DueDate *time.Time

	Status Status

	// UserID is the owning user. The column is nullable, although every
	// mutating endpoint forces it to the authenticated caller.
	UserID *int64

	// Tags holds the associated tags in the join table's natural order.
	Tags []Tag
}

// TableName returns the name of the database table
// associated with the TodoItem model.
func (i TodoItem) TableName() string {
	return "todo_items"
}
