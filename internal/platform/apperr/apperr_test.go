// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/platform/apperr"
)

/*
TestAs_WrappedChain extracts an AppError through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	notFound := apperr.NotFound("Language")
	wrapped := fmt.Errorf("render page: %w", notFound)

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Same(t, notFound, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Language not found", ae.Error())

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestInternal_KeepsCause hides the cause from the message but keeps it unwrappable.
*/
func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("template: missing key")
	ae := apperr.Internal(cause)

	assert.Equal(t, "An unexpected error occurred", ae.Error())
	assert.ErrorIs(t, ae, cause)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}
