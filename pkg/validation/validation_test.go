package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name       string  `json:"name" validate:"required,notblank"`
	PostalCode string  `form:"postalCode" validate:"required,notblank"`
	Phone      *string `json:"phone"`
}

func TestMissingFieldsUsesWireNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Name: "   "})
	require.Error(t, err)

	assert.Equal(t, []string{"name", "postalCode"}, MissingFields(err))
	assert.Equal(t, []string{"Nom : champ obligatoire", "Code postal : champ obligatoire"}, FormatValidationErrors(err))
}

func TestMissingFieldsValid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(sample{Name: "A", PostalCode: "75001"}))
	assert.Nil(t, MissingFields(nil))
	assert.Nil(t, MissingFields(errors.New("boom")))
}

func TestFieldLabelFallback(t *testing.T) {
	assert.Equal(t, "project Description", FieldLabel("projectDescription"))
	assert.Equal(t, "E-mail", FieldLabel("email"))
}
