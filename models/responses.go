package models

// RegisterResponse is the body returned by a successful registration.
// Password carries the stored hash representation, mirroring what the
// users table holds, not the submitted plaintext.
type RegisterResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body returned by the delete endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the single-message error body used for date-format
// and not-found failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TodoItemResponse is the wire representation of a to-do item. Tags are
// inlined as their title strings in the association's natural order,
// and the creation timestamp is rendered as RFC 3339.
type TodoItemResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Timestamp   string   `json:"timestamp"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date"`
	Status      string   `json:"status"`
	User        *int64   `json:"user"`
	Tags        []string `json:"tags"`
}

// NewTodoItemResponse maps a persisted item to its wire representation.
func NewTodoItemResponse(item TodoItem) TodoItemResponse {
	var dueDate *string
	if item.DueDate != nil {
		formatted := item.DueDate.Format(DueDateLayout)
		dueDate = &formatted
	}

	tags := make([]string, 0, len(item.Tags))
	for _, tag := range item.Tags {
		tags = append(tags, tag.Title)
	}

	return TodoItemResponse{
		ID:          item.ItemID,
		Title:       item.Title,
		Timestamp:   item.CreatedAt.Format("2006-01-02T15:04:05.999999Z07:00"),
		Description: item.Description,
		DueDate:     dueDate,
		Status:      string(item.Status),
		User:        item.UserID,
		Tags:        tags,
	}
}

// NewTodoItemResponses maps a slice of items, preserving order.
func NewTodoItemResponses(items []TodoItem) []TodoItemResponse {
	responses := make([]TodoItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewTodoItemResponse(item))
	}
	return responses
}
