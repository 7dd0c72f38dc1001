package implementation

import (
	"context"
	"time"

	"notes-data-be/internal/entity"
	"notes-data-be/internal/mapper"
	"notes-data-be/internal/model"
	"notes-data-be/internal/pkg/apperror"
	"notes-data-be/internal/repository/contract"
	"notes-data-be/internal/repository/specification"
	"notes-data-be/internal/repository/store"
	"notes-data-be/internal/validation"

	"gorm.io/gorm"
)

// noteFieldTypes declares the storage type of every writable column, so the
// record store can coerce partial-update maps. Columns default to Text.
var noteFieldTypes = store.FieldTypes{
	"user_id":    store.Int,
	"title":      store.Text,
	"content":    store.Text,
	"status":     store.Text,
	"created_at": store.Time,
	"updated_at": store.Time,
}

type NoteRepositoryImpl struct {
	store  *store.Store[model.Note]
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		store:  store.New[model.Note](db, noteFieldTypes),
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, in *validation.NoteInput) (int64, error) {
	if in.UserId == nil {
		return 0, apperror.Validationf("user_id must be a non-zero integer")
	}
	if in.Title == nil {
		return 0, apperror.Validationf("title cannot be empty")
	}
	if err := in.Sanitize(); err != nil {
		return 0, err
	}

	status := string(entity.StatusDraft)
	if in.Status != nil {
		status = *in.Status
	}
	content := ""
	if in.Content != nil {
		content = *in.Content
	}

	now := time.Now().UTC()
	m := model.Note{
		UserId:    *in.UserId,
		Title:     *in.Title,
		Content:   content,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.store.Insert(ctx, &m); err != nil {
		return 0, err
	}
	return m.Id, nil
}

func (r *NoteRepositoryImpl) Get(ctx context.Context, id int64) (*entity.Note, error) {
	m, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, id int64, in *validation.NoteInput) (bool, error) {
	if err := in.Sanitize(); err != nil {
		return false, err
	}

	fields := in.Fields()
	if len(fields) == 0 {
		return false, nil
	}
	fields["updated_at"] = time.Now().UTC()

	rows, err := r.store.UpdateByID(ctx, id, fields)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	rows, err := r.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *NoteRepositoryImpl) Archive(ctx context.Context, id int64) (bool, error) {
	archived := string(entity.StatusArchived)
	return r.Update(ctx, id, &validation.NoteInput{Status: &archived})
}

func (r *NoteRepositoryImpl) List(ctx context.Context, filter specification.NoteFilter) ([]*entity.Note, error) {
	f := filter.Normalize()
	specs := append(f.Predicates(),
		specification.OrderBy{Field: f.OrderBy, Desc: f.Order != "asc"},
		specification.Pagination{Limit: f.PerPage, Offset: f.Offset()},
	)
	models, err := r.store.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) CountMatching(ctx context.Context, filter specification.NoteFilter) (int64, error) {
	// Same predicates as List, pagination and ordering ignored.
	return r.store.Count(ctx, filter.Normalize().Predicates()...)
}
