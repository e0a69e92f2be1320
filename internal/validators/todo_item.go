package validators

import (
	"fmt"

	"github.com/MKhiriev/go-todo-api/models"
)

// ValidateCredentials checks the registration/login payload: both
// username and password must be non-empty. Returns nil when valid.
func ValidateCredentials(credentials models.Credentials) FieldErrors {
	errs := FieldErrors{}

	if credentials.Username == "" {
		errs.add("username", msgRequired)
	}
	if credentials.Password == "" {
		errs.add("password", msgRequired)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateTodoInput checks a create/update payload for a to-do item.
//
// Rules:
//   - title is required and at most models.TitleMaxLen characters;
//   - description is at most models.DescriptionMaxLen characters;
//   - status, when present, must be one of the four declared choices.
//
// The due_date format is not checked here; it has its own contract and
// error shape, see ValidateDueDate.
//
// Returns nil when valid.
func ValidateTodoInput(input models.TodoItemInput) FieldErrors {
	errs := FieldErrors{}

	if input.Title == nil || *input.Title == "" {
		errs.add("title", msgRequired)
	} else if len(*input.Title) > models.TitleMaxLen {
		errs.add("title", fmt.Sprintf("ensure this field has no more than %d characters", models.TitleMaxLen))
	}

	if input.Description != nil && len(*input.Description) > models.DescriptionMaxLen {
		errs.add("description", fmt.Sprintf("ensure this field has no more than %d characters", models.DescriptionMaxLen))
	}

	if input.Status != nil && !models.Status(*input.Status).Valid() {
		errs.add("status", fmt.Sprintf("%q is not a valid choice", *input.Status))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
