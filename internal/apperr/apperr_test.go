package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("board not found")))
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(apperr.PermissionDenied("no")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("already there")))
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(apperr.BusinessRule("last member")))
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(apperr.InvalidInput("bad role")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(apperr.Internal("db", errors.New("boom"))))
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(errors.New("plain")))
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	// Kind survives fmt.Errorf wrapping.
	wrapped := fmt.Errorf("handling request: %w", apperr.Conflict("member already exists"))

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(wrapped))
	assert.True(t, apperr.IsKind(wrapped, apperr.KindConflict))
	assert.False(t, apperr.IsKind(wrapped, apperr.KindNotFound))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal("failed to load board", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "internal")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestError_Message(t *testing.T) {
	err := apperr.BusinessRule("owner cannot be removed")

	assert.Equal(t, "business_rule_violation: owner cannot be removed", err.Error())
}
