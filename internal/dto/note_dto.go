package dto

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// UpdateNoteRequest carries a partial field set. Nil means "leave the field
// alone"; the service fills absent fields from the existing record before
// the repository sees them.
type UpdateNoteRequest struct {
	Id      int64   `json:"-"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type ListNotesQuery struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Search  string `query:"search"`
	Status  string `query:"status"`
	OrderBy string `query:"orderby"`
	Order   string `query:"order"`
}

type NoteLinks struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
	Author     string `json:"author"`
}

type NoteResponse struct {
	Id        int64     `json:"id"`
	Author    int64     `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Links     NoteLinks `json:"_links"`
}

type ListMeta struct {
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
}

type ListNotesResponse struct {
	Items []*NoteResponse `json:"items"`
	Meta  ListMeta        `json:"meta"`
}

type DeleteNoteResponse struct {
	Deleted  bool          `json:"deleted"`
	Previous *NoteResponse `json:"previous"`
}
