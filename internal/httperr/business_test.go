package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("duplicate_entry")

	assert.True(t, IsBusiness(err, "duplicate_entry"))
	assert.False(t, IsBusiness(err, "profile_not_found"))
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create user: %w", ErrBusiness("duplicate_entry"))

	assert.True(t, IsBusiness(err, "duplicate_entry"))
}

func TestIsBusiness_PlainError(t *testing.T) {
	assert.False(t, IsBusiness(errors.New("boom"), "duplicate_entry"))
	assert.False(t, IsBusiness(nil, "duplicate_entry"))
}
