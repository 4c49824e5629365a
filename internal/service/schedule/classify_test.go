package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
)

func TestPrimaryStatus(t *testing.T) {
	tests := []struct {
		status string
		want   model.PatientStatus
	}{
		{"Attended", model.PatientAttended},
		{"attended - MRI booked", model.PatientAttended},
		{"Confirmed", model.PatientConfirmed},
		{"confirm pending insurance", model.PatientConfirmed},
		{"No Show", model.PatientNoShow},
		{"NoShow", model.PatientNoShow},
		{"Follow up required", model.PatientPending},
		{"", model.PatientPending},
		{"something else entirely", model.PatientPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PrimaryStatus(tt.status), "status %q", tt.status)
	}
}

func TestNoShowWithTrailingText(t *testing.T) {
	status := "No Show - reschedule requested"

	assert.Equal(t, []string{model.RibbonNoShow}, Ribbons(status))
	assert.False(t, IsAttended(status))
	assert.Equal(t, model.PatientNoShow, PrimaryStatus(status))
}

func TestRibbonsIndependentOfPrimary(t *testing.T) {
	// One status can carry both ribbons; the checks are independent.
	status := "no show, follow up needed"
	assert.Equal(t, []string{model.RibbonNoShow, model.RibbonFollowUp}, Ribbons(status))

	assert.Empty(t, Ribbons("Attended"))
	assert.Equal(t, []string{model.RibbonFollowUp}, Ribbons("Attended - MRI follow-up scheduled"))
}

func TestIsBooked(t *testing.T) {
	assert.True(t, IsBooked("Appointment Booked"))
	assert.True(t, IsBooked("appointment confirmed by phone"))
	assert.False(t, IsBooked("Cancelled"))
	assert.False(t, IsBooked(""))
}
