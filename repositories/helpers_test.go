package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	constraint, ok := uniqueViolation(&pq.Error{Code: "23505", Constraint: "players_email_key"})
	assert.True(t, ok)
	assert.Equal(t, "players_email_key", constraint)

	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "players_code_key"})
	constraint, ok = uniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "players_code_key", constraint)

	_, ok = uniqueViolation(&pq.Error{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("boom"))
	assert.False(t, ok)
}
