package specification

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "created_at"
)

// Columns the collection may be sorted by. Anything else silently falls back
// to created_at so a caller can never order by an arbitrary expression.
var allowedOrderBy = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
}

// NoteFilter carries the collection query parameters for listing and
// counting notes. Zero values mean "use the default".
type NoteFilter struct {
	Search  string
	Status  string
	Page    int
	PerPage int
	OrderBy string
	Order   string
}

// Normalize clamps pagination, resolves ordering against the allow-list and
// canonicalizes the sort direction. Idempotent.
func (f NoteFilter) Normalize() NoteFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if !allowedOrderBy[f.OrderBy] {
		f.OrderBy = DefaultOrderBy
	}
	if strings.EqualFold(f.Order, "asc") {
		f.Order = "asc"
	} else {
		f.Order = "desc"
	}
	return f
}

func (f NoteFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Predicates builds the WHERE specifications shared by List and
// CountMatching. Keeping this in one place guarantees the two queries can
// never disagree about which rows match.
func (f NoteFilter) Predicates() []Specification {
	specs := make([]Specification, 0, 2)
	if f.Status != "" {
		specs = append(specs, StatusIs{Status: f.Status})
	}
	if f.Search != "" {
		specs = append(specs, TitleOrContentLike{Query: f.Search})
	}
	return specs
}

// StatusIs matches a note status exactly.
type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// TitleOrContentLike matches a case-insensitive substring in title OR
// content. ILIKE is Postgres-specific, same as the rest of the stack.
type TitleOrContentLike struct {
	Query string
}

func (s TitleOrContentLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
