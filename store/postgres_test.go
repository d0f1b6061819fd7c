package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Unique violation code",
			err:      &pq.Error{Code: "23505"},
			expected: true,
		},
		{
			name:     "Wrapped unique violation",
			err:      fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"}),
			expected: true,
		},
		{
			name:     "Other pq error",
			err:      &pq.Error{Code: "23503"},
			expected: false,
		},
		{
			name:     "Plain error",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "Nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueViolation(tt.err))
		})
	}
}

func TestNullable(t *testing.T) {
	assert.False(t, nullable("").Valid)

	v := nullable("08:00")
	assert.True(t, v.Valid)
	assert.Equal(t, "08:00", v.String)
}
