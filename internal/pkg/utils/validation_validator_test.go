package utils

import (
	"medportal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Reports json field names", func(t *testing.T) {
		err := ValidateStruct(&requests.AddSlot{StartTime: "14:00"})

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		fields := []string{}
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field())
		}
		assert.ElementsMatch(t, []string{"endTime", "hospitalId"}, fields)
	})

	t.Run("Calendar date", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.SelectDate{Date: "2024-06-01"}))
		assert.Error(t, ValidateStruct(&requests.SelectDate{Date: "2024-13-01"}))
	})

	t.Run("Visit type is optional but must be known", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.BookingDetails{}))
		assert.NoError(t, ValidateStruct(&requests.BookingDetails{Type: "Follow up"}))
		assert.Error(t, ValidateStruct(&requests.BookingDetails{Type: "Surgery"}))
	})
}
