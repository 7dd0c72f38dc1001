// Package validation holds the per-field sanitization rules for the note
// record kind. Only recognized fields exist on the input type; anything else
// dies at the JSON boundary, not here.
package validation

import (
	"strings"

	"notes-data-be/internal/entity"
	"notes-data-be/internal/pkg/apperror"
	"notes-data-be/pkg/sanitize"
)

// NoteInput is a partial field set for a note. A nil pointer means "field not
// supplied"; Sanitize touches only the fields that are present.
type NoteInput struct {
	UserId  *int64
	Title   *string
	Content *string
	Status  *string
}

// Sanitize normalizes every present field in place, or fails with a
// validation error on the first rule violation.
//
// Rules:
//   - user_id: must be > 0
//   - title: markup stripped, trimmed, non-empty afterwards
//   - content: restricted to a safe HTML subset, never fails
//   - status: trimmed, lower-cased, member of the allowed set
func (in *NoteInput) Sanitize() error {
	if in.UserId != nil && *in.UserId <= 0 {
		return apperror.Validationf("user_id must be a non-zero integer")
	}

	if in.Title != nil {
		title := sanitize.PlainText(*in.Title)
		if title == "" {
			return apperror.Validationf("title cannot be empty")
		}
		*in.Title = title
	}

	if in.Content != nil {
		*in.Content = sanitize.RichText(*in.Content)
	}

	if in.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*in.Status))
		if !entity.ValidStatus(status) {
			return apperror.Validationf("invalid status")
		}
		*in.Status = status
	}

	return nil
}

// Fields returns the present fields as a column map, ready for a partial
// update. Timestamps are stamped by the repository, not here.
func (in *NoteInput) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.UserId != nil {
		fields["user_id"] = *in.UserId
	}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	return fields
}
