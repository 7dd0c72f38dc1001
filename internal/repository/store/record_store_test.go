package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRecord struct{}

func TestCoerceAppliesFieldTypes(t *testing.T) {
	now := time.Now()
	s := New[testRecord](nil, FieldTypes{
		"user_id":    Int,
		"updated_at": Time,
	})

	coerced := s.coerce(map[string]interface{}{
		"user_id":    "7",
		"title":      "Hi",
		"status":     "draft",
		"updated_at": now,
	})

	assert.Equal(t, int64(7), coerced["user_id"])
	assert.Equal(t, "Hi", coerced["title"])
	assert.Equal(t, "draft", coerced["status"])
	assert.Equal(t, now, coerced["updated_at"])
}

func TestCoerceDefaultsToText(t *testing.T) {
	s := New[testRecord](nil, nil)

	coerced := s.coerce(map[string]interface{}{
		"title": 123,
	})
	assert.Equal(t, "123", coerced["title"])
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(7), toInt64(int64(7)))
	assert.Equal(t, int64(7), toInt64(7))
	assert.Equal(t, int64(7), toInt64(float64(7)))
	assert.Equal(t, int64(7), toInt64("7"))
	assert.Equal(t, int64(0), toInt64("not a number"))
	assert.Equal(t, int64(0), toInt64(nil))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID(1))
	assert.Error(t, validateID(0))
	assert.Error(t, validateID(-3))
}
