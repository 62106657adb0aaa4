package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotAppointmentWindow(t *testing.T) {
	t.Run("Joins date and time of day", func(t *testing.T) {
		slot := Slot{SlotDate: "2024-06-01", StartTime: "09:00", EndTime: "09:30"}

		start, end, err := slot.AppointmentWindow()
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01T09:00", start)
		assert.Equal(t, "2024-06-01T09:30", end)
	})

	t.Run("Invalid date", func(t *testing.T) {
		slot := Slot{SlotDate: "01/06/2024", StartTime: "09:00", EndTime: "09:30"}

		_, _, err := slot.AppointmentWindow()
		assert.Error(t, err)
	})

	t.Run("Invalid time of day", func(t *testing.T) {
		slot := Slot{SlotDate: "2024-06-01", StartTime: "9am", EndTime: "09:30"}

		_, _, err := slot.AppointmentWindow()
		assert.Error(t, err)
	})
}

func TestSlotStatusString(t *testing.T) {
	assert.Equal(t, "Open", SlotStatusOpen.String())
	assert.Equal(t, "Booked", SlotStatusBooked.String())
	assert.Equal(t, "SlotStatus(7)", SlotStatus(7).String())
	assert.True(t, Slot{ApptStatus: SlotStatusOpen}.IsOpen())
	assert.False(t, Slot{ApptStatus: SlotStatusBooked}.IsOpen())
}
