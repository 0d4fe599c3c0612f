package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-01-10"))
	assert.True(t, ValidDate("2026-01-10T12:00:00Z"))
	assert.False(t, ValidDate("10/01/2026"))
	assert.False(t, ValidDate("tenth of january"))
	assert.False(t, ValidDate(""))
}

func TestValidationMessageUsesJSONFieldNames(t *testing.T) {
	type payload struct {
		Title     string `json:"title" validate:"required"`
		ApplyLink string `json:"applyLink" validate:"required,url"`
	}

	v := NewValidator()

	err := v.Struct(&payload{ApplyLink: "https://example.com"})
	require.Error(t, err)
	assert.Equal(t, "title is required", ValidationMessage(err))

	err = v.Struct(&payload{Title: "x", ApplyLink: "not a url"})
	require.Error(t, err)
	assert.Equal(t, "applyLink is invalid", ValidationMessage(err))
}

func TestValidationMessageFallback(t *testing.T) {
	assert.Equal(t, "invalid request payload", ValidationMessage(assert.AnError))
}
