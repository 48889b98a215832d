package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))

	// 非业务错误按 INTERNAL
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// 包装后仍可识别
	wrapped := fmt.Errorf("outer: %w", PermissionDenied("denied"))
	assert.Equal(t, KindPermissionDenied, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindPermissionDenied))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := Internal("query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db down")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(PermissionDenied("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(InvalidState("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
