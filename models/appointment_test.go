package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	assert.True(t, ValidStatusTransition(AppointmentPending, AppointmentConfirmed))
	assert.True(t, ValidStatusTransition(AppointmentPending, AppointmentCancelled))
	assert.True(t, ValidStatusTransition(AppointmentConfirmed, AppointmentCompleted))
	assert.True(t, ValidStatusTransition(AppointmentConfirmed, AppointmentCancelled))

	assert.False(t, ValidStatusTransition(AppointmentPending, AppointmentCompleted))
	assert.False(t, ValidStatusTransition(AppointmentCancelled, AppointmentConfirmed))
	assert.False(t, ValidStatusTransition(AppointmentCompleted, AppointmentCancelled))
}
