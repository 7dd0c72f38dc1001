package entity

import "time"

// NoteStatus is the canonical lifecycle state of a note. Incoming values are
// lower-cased before validation, so "ACTIVE" and "active" are the same state.
type NoteStatus string

const (
	StatusDraft    NoteStatus = "draft"
	StatusActive   NoteStatus = "active"
	StatusArchived NoteStatus = "archived"
)

// AllowedStatuses lists every valid NoteStatus value.
var AllowedStatuses = []NoteStatus{StatusDraft, StatusActive, StatusArchived}

// ValidStatus reports whether s is a member of the allowed status set.
func ValidStatus(s string) bool {
	for _, allowed := range AllowedStatuses {
		if NoteStatus(s) == allowed {
			return true
		}
	}
	return false
}

type Note struct {
	Id        int64
	UserId    int64
	Title     string
	Content   string
	Status    NoteStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
