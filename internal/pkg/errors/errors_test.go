// internal/pkg/errors/errors_test.go
package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("vehicle %s not found", "v1")))
	assert.Equal(t, KindConflict, KindOf(Conflictf("duplicate")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindInternal, KindOf(Internalf(errors.New("boom"), "storage failed")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := PreconditionFailedf("vehicle busy")
	wrapped := fmt.Errorf("dispatch failed: %w", err)

	assert.Equal(t, KindPreconditionFailed, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindPreconditionFailed))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestInternalfUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internalf(cause, "query failed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed", err.Error())
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))

	inner := NotFoundf("missing")
	wrapped := Wrap(inner, "lookup")
	require.Error(t, wrapped)
	assert.Equal(t, "lookup: missing", wrapped.Error())
	assert.True(t, IsKind(wrapped, KindNotFound))
}
