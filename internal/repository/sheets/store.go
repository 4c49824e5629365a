package sheets

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository"
)

// Tab names within the scheduling spreadsheet.
const (
	tabClinics      = "Clinics"
	tabAppointments = "Appointments"
	tabCalls        = "Calls"
)

// TabFetcher is the raw tab access the store is built on.
type TabFetcher interface {
	FetchTab(ctx context.Context, tab string) ([]Row, error)
}

// Store maps spreadsheet tabs onto domain types.
type Store struct {
	tabs TabFetcher
}

func NewStore(tabs TabFetcher) repository.ScheduleStore {
	return &Store{tabs: tabs}
}

func (s *Store) Clinics(ctx context.Context) ([]*model.Clinic, error) {
	rows, err := s.tabs.FetchTab(ctx, tabClinics)
	if err != nil {
		return nil, err
	}

	clinics := make([]*model.Clinic, 0, len(rows))
	for _, r := range rows {
		clinics = append(clinics, &model.Clinic{
			ID:        r["id"],
			Name:      r["name"],
			Weekday:   r["weekday"],
			StartTime: r["start_time"],
			EndTime:   r["end_time"],
			Capacity:  parseInt(r["capacity"]),
		})
	}
	return clinics, nil
}

func (s *Store) Appointments(ctx context.Context) ([]*model.Appointment, error) {
	rows, err := s.tabs.FetchTab(ctx, tabAppointments)
	if err != nil {
		return nil, err
	}

	appts := make([]*model.Appointment, 0, len(rows))
	for _, r := range rows {
		appts = append(appts, &model.Appointment{
			ClinicID:    r["clinic_id"],
			Date:        r["date"],
			Time:        r["time"],
			PatientName: r["patient_name"],
			Status:      r["status"],
			Reason:      r["reason"],
			Notes:       r["notes"],
		})
	}
	return appts, nil
}

// AppointmentsForClinic returns the appointment rows for one clinic,
// optionally narrowed to dates starting with datePrefix (local ISO date).
func (s *Store) AppointmentsForClinic(ctx context.Context, clinicID, datePrefix string) ([]*model.Appointment, error) {
	appts, err := s.Appointments(ctx)
	if err != nil {
		return nil, err
	}

	id := model.NormalizeID(clinicID)
	matched := make([]*model.Appointment, 0, len(appts))
	for _, a := range appts {
		if model.NormalizeID(a.ClinicID) != id {
			continue
		}
		if datePrefix != "" && !strings.HasPrefix(a.Date, datePrefix) {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

// CallLog reads the Calls tab. Only a subset of the relational call record
// lives in the sheet; malformed cells degrade to zero values.
func (s *Store) CallLog(ctx context.Context) ([]*model.Call, error) {
	rows, err := s.tabs.FetchTab(ctx, tabCalls)
	if err != nil {
		return nil, err
	}

	calls := make([]*model.Call, 0, len(rows))
	for _, r := range rows {
		id, _ := strconv.ParseInt(r["id"], 10, 64)
		calls = append(calls, &model.Call{
			ID:          id,
			When:        parseWhen(r["when"]),
			Name:        r["name"],
			Direction:   r["direction"],
			Reason:      r["reason"],
			Status:      r["status"],
			DurationSec: parseInt(r["duration_sec"]),
		})
	}
	return calls, nil
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseWhen(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
