package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required,min=3"`
	Kind    string `json:"kind" validate:"omitempty,oneof=video comment tweet"`
	Ignored string `json:"-" validate:"omitempty"`
}

func TestToDetails(t *testing.T) {
	v := validator.New()

	err := v.Struct(sample{Email: "not-an-email", Name: "ab", Kind: "playlist"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["Email"])
	assert.Equal(t, "must be at least 3 characters", details["Name"])
	assert.Equal(t, "must be one of: video, comment, tweet", details["Kind"])
}

func TestToDetailsNonValidationError(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	details := ToDetails(assert.AnError)
	assert.Equal(t, "invalid payload", details["payload"])
}
