package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestNormalizeDefaults(t *testing.T) {
	f := NoteFilter{}.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPerPage, f.PerPage)
	assert.Equal(t, DefaultOrderBy, f.OrderBy)
	assert.Equal(t, "desc", f.Order)
}

func TestNormalizeClampsPerPage(t *testing.T) {
	assert.Equal(t, DefaultPerPage, NoteFilter{PerPage: 0}.Normalize().PerPage)
	assert.Equal(t, DefaultPerPage, NoteFilter{PerPage: -5}.Normalize().PerPage)
	assert.Equal(t, MaxPerPage, NoteFilter{PerPage: 1000}.Normalize().PerPage)
	assert.Equal(t, 1, NoteFilter{PerPage: 1}.Normalize().PerPage)
}

func TestNormalizeOrderByAllowList(t *testing.T) {
	assert.Equal(t, "title", NoteFilter{OrderBy: "title"}.Normalize().OrderBy)
	assert.Equal(t, "updated_at", NoteFilter{OrderBy: "updated_at"}.Normalize().OrderBy)

	// Anything outside the allow-list silently falls back.
	assert.Equal(t, DefaultOrderBy, NoteFilter{OrderBy: "id"}.Normalize().OrderBy)
	assert.Equal(t, DefaultOrderBy, NoteFilter{OrderBy: "1; DROP TABLE notes"}.Normalize().OrderBy)
}

func TestNormalizeOrderDirection(t *testing.T) {
	assert.Equal(t, "asc", NoteFilter{Order: "asc"}.Normalize().Order)
	assert.Equal(t, "asc", NoteFilter{Order: "ASC"}.Normalize().Order)
	assert.Equal(t, "desc", NoteFilter{Order: "desc"}.Normalize().Order)
	assert.Equal(t, "desc", NoteFilter{Order: "sideways"}.Normalize().Order)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	f := NoteFilter{Page: 3, PerPage: 250, OrderBy: "nope", Order: "ASC"}.Normalize()
	assert.Equal(t, f, f.Normalize())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, NoteFilter{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, NoteFilter{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 20, NoteFilter{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 50, NoteFilter{Page: 2, PerPage: 50}.Offset())
}

func TestPredicatesSharedByListAndCount(t *testing.T) {
	assert.Len(t, NoteFilter{}.Predicates(), 0)
	assert.Len(t, NoteFilter{Status: "draft"}.Predicates(), 1)
	assert.Len(t, NoteFilter{Search: "foo"}.Predicates(), 1)
	assert.Len(t, NoteFilter{Status: "draft", Search: "foo"}.Predicates(), 2)

	// Pagination and ordering never leak into the predicates, so a count
	// over the same filter always covers every matching row.
	assert.Len(t, NoteFilter{Page: 7, PerPage: 3, OrderBy: "title"}.Predicates(), 0)
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestPredicateSQL(t *testing.T) {
	db := dryRunDB(t)

	query := db.Table("notes")
	for _, spec := range (NoteFilter{Status: "archived", Search: "foo"}).Predicates() {
		query = spec.Apply(query)
	}
	stmt := query.Find(&[]map[string]interface{}{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "status = ?")
	assert.Contains(t, sql, "title ILIKE ? OR content ILIKE ?")
	assert.Contains(t, stmt.Vars, "archived")
	assert.Contains(t, stmt.Vars, "%foo%")
}

func TestOrderBySQL(t *testing.T) {
	db := dryRunDB(t)

	stmt := OrderBy{Field: "created_at", Desc: true}.
		Apply(db.Table("notes")).
		Find(&[]map[string]interface{}{}).Statement

	assert.Contains(t, stmt.SQL.String(), "created_at DESC")
}

func TestPaginationSQL(t *testing.T) {
	db := dryRunDB(t)

	stmt := Pagination{Limit: 10, Offset: 20}.
		Apply(db.Table("notes")).
		Find(&[]map[string]interface{}{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
}
