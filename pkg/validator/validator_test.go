package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,mobile"`
	Level string `json:"level" validate:"oneof=A B C"`
	Lines []line `json:"lines" validate:"required,min=1,dive"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(&sample{Name: "n", Phone: "13800138000", Level: "A", Lines: []line{{Quantity: 1}}})
		assert.Empty(t, errs)
	})

	t.Run("reports json field names", func(t *testing.T) {
		errs := ValidateStruct(&sample{Level: "A", Lines: []line{{Quantity: 1}}})
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].FailedField)
		assert.Equal(t, "required", errs[0].Tag)
	})

	t.Run("mobile", func(t *testing.T) {
		errs := ValidateStruct(&sample{Name: "n", Phone: "12345", Level: "B", Lines: []line{{Quantity: 1}}})
		require.Len(t, errs, 1)
		assert.Equal(t, "phone", errs[0].FailedField)
		assert.Equal(t, "mobile", errs[0].Tag)
	})

	t.Run("dive path", func(t *testing.T) {
		errs := ValidateStruct(&sample{Name: "n", Level: "C", Lines: []line{{Quantity: 1}, {Quantity: 0}}})
		require.Len(t, errs, 1)
		assert.Equal(t, "lines[1].quantity", errs[0].FailedField)
	})
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t,
		"Validation failed: field 'level' failed on 'oneof=A B C'",
		Message([]*ErrorResponse{{FailedField: "level", Tag: "oneof", Value: "A B C"}}))
	assert.Equal(t,
		"Validation failed: field 'name' failed on 'required'",
		Message([]*ErrorResponse{{FailedField: "name", Tag: "required"}}))
}
