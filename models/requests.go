package models

// Credentials is the JSON body accepted by the registration and login
// endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TodoItemInput is the JSON body accepted by the create and update
// endpoints. Pointer fields distinguish "absent" from "empty": the
// update handler leaves absent optional fields untouched, while status
// falls back to its declared default when omitted.
type TodoItemInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Status      *string  `json:"status"`
	Tags        []string `json:"tags"`
}
