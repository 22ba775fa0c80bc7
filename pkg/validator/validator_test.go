package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required,max=5"`
	Age      int    `json:"age" validate:"gt=0"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Name: "far too long", Age: 0, Date: "31/12/2024", Quantity: -1})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"name":     "name must be at most 5 characters",
		"age":      "age must be greater than 0",
		"date":     "date must be a date in YYYY-MM-DD format",
		"quantity": "quantity must be greater than or equal to 0",
	}, errs)
}

func TestValidateAcceptsGoodInput(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sampleRequest{Name: "Ada", Age: 3, Date: "2024-12-31"}))
}
