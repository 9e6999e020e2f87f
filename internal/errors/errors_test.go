package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remnantforge/builds-api/internal/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.NotFound("build not found")
	assert.Equal(t, "NOT_FOUND: build not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load build")
	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFoundf("build %s not found", "build_1")
	outer := errors.Wrap(inner, "get build failed")

	assert.True(t, errors.IsNotFound(outer))
	assert.Equal(t, inner, outer.Unwrap())
	assert.True(t, errors.Is(outer, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())

	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateRange("amount", 15, 1, 10, vb)

	err := vb.Build()
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "name: is required")
	assert.Contains(t, err.Error(), "amount: must be between 1 and 10")
}
