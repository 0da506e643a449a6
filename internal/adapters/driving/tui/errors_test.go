package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingRecipeService(t *testing.T) {
	assert.EqualError(t, ErrMissingRecipeService, "tui: recipe service is required")
}
