package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notes-data-be/internal/dto"
	"notes-data-be/internal/entity"
	"notes-data-be/internal/pkg/apperror"
	"notes-data-be/internal/pkg/logger"
	"notes-data-be/internal/repository/contract"
	"notes-data-be/internal/repository/specification"
	"notes-data-be/internal/validation"
)

type INoteService interface {
	Create(ctx context.Context, userId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	List(ctx context.Context, q *dto.ListNotesQuery) (*dto.ListNotesResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int64) (*dto.DeleteNoteResponse, error)
	Archive(ctx context.Context, id int64) (*dto.NoteResponse, error)
}

type noteService struct {
	repo    contract.NoteRepository
	baseURL string
	logger  logger.ILogger
}

func NewNoteService(repo contract.NoteRepository, baseURL string, log logger.ILogger) INoteService {
	return &noteService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
	}
}

func (s *noteService) Create(ctx context.Context, userId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	in := validation.NoteInput{
		UserId:  &userId,
		Title:   &req.Title,
		Content: &req.Content,
	}
	if req.Status != "" {
		in.Status = &req.Status
	}

	id, err := s.repo.Create(ctx, &in)
	if err != nil {
		return nil, err
	}

	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note_service", "note created", map[string]interface{}{
		"note_id": id,
		"user_id": userId,
	})

	return s.format(note), nil
}

func (s *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}
	return s.format(note), nil
}

func (s *noteService) List(ctx context.Context, q *dto.ListNotesQuery) (*dto.ListNotesResponse, error) {
	filter := specification.NoteFilter{
		Search:  q.Search,
		Status:  q.Status,
		Page:    q.Page,
		PerPage: q.PerPage,
		OrderBy: q.OrderBy,
		Order:   q.Order,
	}.Normalize()

	notes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		items[i] = s.format(note)
	}

	return &dto.ListNotesResponse{
		Items: items,
		Meta: dto.ListMeta{
			Total:      total,
			TotalPages: totalPages(total, filter.PerPage),
			Page:       filter.Page,
			PerPage:    filter.PerPage,
		},
	}, nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	existing, err := s.repo.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("note")
	}

	// The repository writes only what it is given; merge absent fields from
	// the current record so a partial update never nulls anything out.
	in := validation.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	}
	if in.Title == nil {
		title := existing.Title
		in.Title = &title
	}
	if in.Content == nil {
		content := existing.Content
		in.Content = &content
	}
	if in.Status == nil {
		status := string(existing.Status)
		in.Status = &status
	}

	if _, err := s.repo.Update(ctx, req.Id, &in); err != nil {
		return nil, err
	}

	note, err := s.repo.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return s.format(note), nil
}

func (s *noteService) Delete(ctx context.Context, id int64) (*dto.DeleteNoteResponse, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("note")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperror.Store("delete", fmt.Errorf("note %d existed but delete affected no rows", id))
	}

	s.logger.Info("note_service", "note deleted", map[string]interface{}{
		"note_id": id,
	})

	return &dto.DeleteNoteResponse{
		Deleted:  true,
		Previous: s.format(existing),
	}, nil
}

func (s *noteService) Archive(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("note")
	}

	if _, err := s.repo.Archive(ctx, id); err != nil {
		return nil, err
	}

	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.format(note), nil
}

// format shapes a note for the outside: user_id becomes author, timestamps
// become RFC 3339, and hyperlink references are derived from the base URL.
func (s *noteService) format(note *entity.Note) *dto.NoteResponse {
	if note == nil {
		return nil
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Author:    note.UserId,
		Title:     note.Title,
		Content:   note.Content,
		Status:    string(note.Status),
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.UTC().Format(time.RFC3339),
		Links: dto.NoteLinks{
			Self:       fmt.Sprintf("%s/api/notes/v1/%d", s.baseURL, note.Id),
			Collection: fmt.Sprintf("%s/api/notes/v1", s.baseURL),
			Author:     fmt.Sprintf("%s/api/users/v1/%d", s.baseURL, note.UserId),
		},
	}
}

// totalPages is ceil(total/perPage); an empty collection has zero pages.
func totalPages(total int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}
