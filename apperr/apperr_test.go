package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validationf("title is required"), Validation},
		{"not found", NotFoundf("settlement %s not found", "x"), NotFound},
		{"conflict", Conflictf("line is settled"), Conflict},
		{"wrapped validation", fmt.Errorf("create: %w", Validationf("date is required")), Validation},
		{"internal", Wrap(errors.New("disk full"), "insert settlement"), Internal},
		{"plain error", errors.New("boom"), Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageHidesInternalDetail(t *testing.T) {
	err := Wrap(errors.New("database is locked"), "cancel settlement")
	assert.Equal(t, "internal server error", Message(err))
	assert.Contains(t, err.Error(), "database is locked")

	assert.Equal(t, "title is required", Message(Validationf("title is required")))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
}
