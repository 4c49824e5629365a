package schedule

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

// monday is the fixed reference date for these tests: 2025-10-13. The London
// clinic runs on Wednesdays, so completed resolves to 2025-10-08 and
// upcoming to 2025-10-15.
var monday = time.Date(2025, time.October, 13, 10, 0, 0, 0, time.UTC)

type fakeStore struct {
	clinics []*model.Clinic
	appts   []*model.Appointment
	calls   []*model.Call
	err     error
}

func (f *fakeStore) Clinics(ctx context.Context) ([]*model.Clinic, error) {
	return f.clinics, f.err
}

func (f *fakeStore) Appointments(ctx context.Context) ([]*model.Appointment, error) {
	return f.appts, f.err
}

func (f *fakeStore) AppointmentsForClinic(ctx context.Context, clinicID, datePrefix string) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*model.Appointment
	for _, a := range f.appts {
		if model.NormalizeID(a.ClinicID) != model.NormalizeID(clinicID) {
			continue
		}
		if datePrefix != "" && !strings.HasPrefix(a.Date, datePrefix) {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func (f *fakeStore) CallLog(ctx context.Context) ([]*model.Call, error) {
	return f.calls, f.err
}

func londonClinic() *model.Clinic {
	return &model.Clinic{
		ID:        "london",
		Name:      "London Clinic",
		Weekday:   "Wednesday",
		StartTime: "14:00",
		EndTime:   "18:00",
		Capacity:  12,
	}
}

func TestSummarizeCompleted(t *testing.T) {
	clinics := []*model.Clinic{londonClinic()}
	appts := []*model.Appointment{
		{ClinicID: "london", Date: "2025-10-08", Status: "Attended"},
		{ClinicID: "london", Date: "2025-10-08", Status: "Attended - MRI follow-up scheduled"},
		{ClinicID: "london", Date: "2025-10-08", Status: "No Show"},
		{ClinicID: "london", Date: "2025-10-08", Status: "Confirmed"},
		{ClinicID: "london", Date: "2025-10-01", Status: "Attended"}, // previous week
	}

	summaries := Summarize(clinics, appts, model.ModeCompleted, monday)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "london", s.ID)
	assert.Equal(t, "London Clinic", s.Name)
	assert.Equal(t, "2025-10-08", ISODate(s.TargetDate))
	assert.Equal(t, "Oct 8", s.Date)
	assert.Equal(t, "Wednesday 2:00 PM–6:00 PM", s.TimeRange)
	assert.Equal(t, 2, s.Attended)
	assert.Equal(t, 1, s.NoShows)
	assert.Equal(t, 1, s.FollowupsNeeded)
}

func TestSummarizeMatchesDatesWithTimeSuffix(t *testing.T) {
	clinics := []*model.Clinic{londonClinic()}
	appts := []*model.Appointment{
		{ClinicID: "london", Date: "2025-10-08T17:00:00", Status: "Attended"},
	}

	summaries := Summarize(clinics, appts, model.ModeCompleted, monday)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Attended)
}

func TestSummarizeOmitsClinicsWithoutAppointments(t *testing.T) {
	clinics := []*model.Clinic{
		londonClinic(),
		{ID: "princess", Name: "Princess Grace", Weekday: "Tuesday", StartTime: "17:00", EndTime: "20:00"},
	}
	appts := []*model.Appointment{
		{ClinicID: "london", Date: "2025-10-08", Status: "Attended"},
	}

	for _, mode := range []model.Mode{model.ModeCompleted, model.ModeUpcoming} {
		summaries := Summarize(clinics, appts, mode, monday)
		require.Len(t, summaries, 1, "mode %s", mode)
		assert.Equal(t, "london", summaries[0].ID)
	}
}

func TestSummarizeSkipsUnrecognizedWeekday(t *testing.T) {
	clinics := []*model.Clinic{
		{ID: "mystery", Name: "Mystery Clinic", Weekday: "Someday", StartTime: "09:00", EndTime: "12:00"},
	}
	appts := []*model.Appointment{
		{ClinicID: "mystery", Date: "2025-10-08", Status: "Attended"},
	}

	assert.Empty(t, Summarize(clinics, appts, model.ModeCompleted, monday))
}

func TestSummarizeUpcomingClampsOpenSlots(t *testing.T) {
	clinic := londonClinic()
	clinic.Capacity = 10

	var appts []*model.Appointment
	for i := 0; i < 12; i++ {
		appts = append(appts, &model.Appointment{
			ClinicID: "london",
			Date:     "2025-10-15",
			Status:   "Appointment Booked",
		})
	}

	summaries := Summarize([]*model.Clinic{clinic}, appts, model.ModeUpcoming, monday)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2025-10-15", ISODate(summaries[0].TargetDate))
	assert.Equal(t, 12, summaries[0].Booked)
	assert.Equal(t, 0, summaries[0].OpenSlots, "open slots must never go negative")
}

func TestSummarizeMatchesClinicIDLoosely(t *testing.T) {
	clinics := []*model.Clinic{londonClinic()}
	appts := []*model.Appointment{
		{ClinicID: "  LONDON ", Date: "2025-10-08", Status: "Attended"},
	}

	summaries := Summarize(clinics, appts, model.ModeCompleted, monday)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Attended)
}

func TestOverview(t *testing.T) {
	store := &fakeStore{
		clinics: []*model.Clinic{londonClinic()},
		appts: []*model.Appointment{
			{ClinicID: "london", Date: "2025-10-08", Status: "Attended"},
			{ClinicID: "london", Date: "2025-10-15", Status: "Appointment Booked"},
		},
	}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	completed, upcoming, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, completed[0].Attended)
	assert.Equal(t, 1, upcoming[0].Booked)
	assert.Equal(t, 11, upcoming[0].OpenSlots)
}

func TestOverviewPropagatesStoreErrors(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("sheet unreachable")}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	_, _, err := svc.Overview(context.Background())
	assert.Error(t, err)
}

func TestDetail(t *testing.T) {
	store := &fakeStore{
		clinics: []*model.Clinic{londonClinic()},
		appts: []*model.Appointment{
			{ClinicID: "london", Date: "2025-10-08", Time: "17:00", PatientName: "Sophie Brown", Status: "Attended", Reason: "Neck pain"},
			{ClinicID: "london", Date: "2025-10-08", Time: "00:15", Status: "Follow up required", Notes: "needs MRI review"},
			{ClinicID: "london", Date: "2025-10-15", Time: "15:00", PatientName: "Next Week", Status: "Confirmed"},
		},
	}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	detail, err := svc.Detail(context.Background(), " London ", model.ModeCompleted)
	require.NoError(t, err)

	assert.Equal(t, "london", detail.ID)
	assert.Equal(t, "2025-10-08", ISODate(detail.TargetDate))
	assert.Equal(t, 1, detail.FollowupsNeeded)
	require.Len(t, detail.Patients, 2)

	first := detail.Patients[0]
	assert.Equal(t, "5:00 PM", first.Time)
	assert.Equal(t, "Sophie Brown", first.Name)
	assert.Equal(t, "Neck pain", first.Subtitle)
	assert.Equal(t, model.PatientAttended, first.Status)

	second := detail.Patients[1]
	assert.Equal(t, "12:15 AM", second.Time)
	assert.Equal(t, "Unnamed Patient", second.Name)
	assert.Equal(t, "needs MRI review", second.Subtitle, "subtitle falls back to notes")
	assert.Equal(t, model.PatientPending, second.Status)
	assert.Equal(t, []string{model.RibbonFollowUp}, second.Ribbons)
}

func TestDetailUpcoming(t *testing.T) {
	store := &fakeStore{
		clinics: []*model.Clinic{londonClinic()},
		appts: []*model.Appointment{
			{ClinicID: "london", Date: "2025-10-15", Time: "15:00", PatientName: "Next Week", Status: "Confirmed"},
		},
	}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	detail, err := svc.Detail(context.Background(), "london", model.ModeUpcoming)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", ISODate(detail.TargetDate))
	require.Len(t, detail.Patients, 1)
	assert.Equal(t, model.PatientConfirmed, detail.Patients[0].Status)
}

func TestDetailUnknownClinic(t *testing.T) {
	store := &fakeStore{clinics: []*model.Clinic{londonClinic()}}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	_, err := svc.Detail(context.Background(), "atlantis", model.ModeCompleted)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDetailUnrecognizedWeekday(t *testing.T) {
	store := &fakeStore{
		clinics: []*model.Clinic{{ID: "mystery", Name: "Mystery", Weekday: "Someday"}},
	}
	svc := NewService(store)
	svc.now = func() time.Time { return monday }

	_, err := svc.Detail(context.Background(), "mystery", model.ModeCompleted)
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestFormatTime12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:00", "2:00 PM"},
		{"00:05", "12:05 AM"},
		{"12:00", "12:00 PM"},
		{"09:30", "9:30 AM"},
		{"23:59", "11:59 PM"},
		{"", ""},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime12(tt.in), "input %q", tt.in)
	}
}
