package contract

import (
	"context"

	"notes-data-be/internal/entity"
	"notes-data-be/internal/repository/specification"
	"notes-data-be/internal/validation"
)

// NoteRepository owns validation and query construction for notes. It trusts
// stored content on the way out and sanitizes everything on the way in.
type NoteRepository interface {
	// Create sanitizes the input, stamps timestamps and inserts. user_id and
	// title are required; status defaults to draft.
	Create(ctx context.Context, in *validation.NoteInput) (int64, error)

	// Get returns the note or nil when absent. Absence is not an error here.
	Get(ctx context.Context, id int64) (*entity.Note, error)

	// Update sanitizes and writes only the fields present in the input,
	// bumping updated_at. It does not merge with the existing record; the
	// caller supplies the full desired value for every field it wants kept.
	Update(ctx context.Context, id int64, in *validation.NoteInput) (bool, error)

	// Delete removes the row. False when the id did not exist.
	Delete(ctx context.Context, id int64) (bool, error)

	// Archive soft-deletes by forcing status to archived.
	Archive(ctx context.Context, id int64) (bool, error)

	// List returns the filtered, sorted page of notes.
	List(ctx context.Context, filter specification.NoteFilter) ([]*entity.Note, error)

	// CountMatching returns the total row count List would paginate over for
	// the same search/status pair.
	CountMatching(ctx context.Context, filter specification.NoteFilter) (int64, error)
}
