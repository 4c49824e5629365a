package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

// Service aggregates clinics and appointments into the dashboard views.
type Service struct {
	store repository.ScheduleStore
	now   func() time.Time
}

func NewService(store repository.ScheduleStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Overview builds the completed and upcoming clinic card lists. The two
// tab fetches run concurrently; there is no ordering dependency between
// them.
func (s *Service) Overview(ctx context.Context) (completed, upcoming []model.ClinicSummary, err error) {
	var (
		clinics []*model.Clinic
		appts   []*model.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clinics, err = s.store.Clinics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appts, err = s.store.Appointments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load schedule data: %w", err)
	}

	now := s.now()
	return Summarize(clinics, appts, model.ModeCompleted, now),
		Summarize(clinics, appts, model.ModeUpcoming, now),
		nil
}

// Summarize joins clinics with their appointment rows and produces one card
// per clinic for the given mode. Clinics with no appointment rows at all are
// omitted; clinics with an unrecognized weekday are skipped with a warning.
func Summarize(clinics []*model.Clinic, appts []*model.Appointment, mode model.Mode, now time.Time) []model.ClinicSummary {
	byClinic := groupByClinic(appts)

	summaries := make([]model.ClinicSummary, 0, len(clinics))
	for _, cl := range clinics {
		clinicAppts := byClinic[model.NormalizeID(cl.ID)]
		if len(clinicAppts) == 0 {
			continue
		}

		weekday, err := ParseWeekday(cl.Weekday)
		if err != nil {
			log.Warn().Str("clinic", cl.ID).Str("weekday", cl.Weekday).
				Msg("skipping clinic with unrecognized weekday")
			continue
		}

		target := targetDate(now, weekday, mode)
		dated := filterByDate(clinicAppts, ISODate(target))

		summary := model.ClinicSummary{
			ID:         strings.TrimSpace(cl.ID),
			Name:       cl.Name,
			Mode:       mode,
			TargetDate: target,
			Date:       target.Format("Jan 2"),
			TimeRange:  FormatTimeRange(cl),
			Capacity:   cl.Capacity,
		}

		switch mode {
		case model.ModeUpcoming:
			for _, a := range dated {
				if IsBooked(a.Status) {
					summary.Booked++
				}
			}
			summary.OpenSlots = cl.Capacity - summary.Booked
			if summary.OpenSlots < 0 {
				summary.OpenSlots = 0
			}
		default:
			for _, a := range dated {
				if IsAttended(a.Status) {
					summary.Attended++
				}
				if IsNoShow(a.Status) {
					summary.NoShows++
				}
				if NeedsFollowUp(a.Status) {
					summary.FollowupsNeeded++
				}
			}
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

// Detail builds the patient list for one clinic's completed or upcoming
// occurrence.
func (s *Service) Detail(ctx context.Context, clinicID string, mode model.Mode) (*model.ClinicDetail, error) {
	clinics, err := s.store.Clinics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinics: %w", err)
	}

	var clinic *model.Clinic
	id := model.NormalizeID(clinicID)
	for _, cl := range clinics {
		if model.NormalizeID(cl.ID) == id {
			clinic = cl
			break
		}
	}
	if clinic == nil {
		return nil, apperrors.NotFound("clinic", nil)
	}

	weekday, err := ParseWeekday(clinic.Weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clinic schedule: %w", err)
	}

	target := targetDate(s.now(), weekday, mode)
	appts, err := s.store.AppointmentsForClinic(ctx, clinic.ID, ISODate(target))
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	detail := &model.ClinicDetail{
		ID:         strings.TrimSpace(clinic.ID),
		Name:       clinic.Name,
		Mode:       mode,
		Weekday:    clinic.Weekday,
		TargetDate: target,
		TimeRange:  FormatTimeRange(clinic),
		Patients:   make([]model.PatientRow, 0, len(appts)),
	}

	for _, a := range appts {
		if NeedsFollowUp(a.Status) {
			detail.FollowupsNeeded++
		}
		detail.Patients = append(detail.Patients, buildPatientRow(a))
	}
	return detail, nil
}

func buildPatientRow(a *model.Appointment) model.PatientRow {
	apptTime := a.Time
	if apptTime == "" {
		apptTime = "00:00"
	}

	name := a.PatientName
	if name == "" {
		name = "Unnamed Patient"
	}

	subtitle := a.Reason
	if subtitle == "" {
		subtitle = a.Notes
	}

	return model.PatientRow{
		Time:     FormatTime12(apptTime),
		Name:     name,
		Subtitle: subtitle,
		Ribbons:  Ribbons(a.Status),
		Status:   PrimaryStatus(a.Status),
	}
}

func targetDate(now time.Time, weekday time.Weekday, mode model.Mode) time.Time {
	if mode == model.ModeUpcoming {
		return NextOccurrence(now, weekday)
	}
	return PreviousOccurrence(now, weekday)
}

func groupByClinic(appts []*model.Appointment) map[string][]*model.Appointment {
	byClinic := make(map[string][]*model.Appointment)
	for _, a := range appts {
		id := model.NormalizeID(a.ClinicID)
		byClinic[id] = append(byClinic[id], a)
	}
	return byClinic
}

func filterByDate(appts []*model.Appointment, isoDate string) []*model.Appointment {
	matched := make([]*model.Appointment, 0, len(appts))
	for _, a := range appts {
		if strings.HasPrefix(a.Date, isoDate) {
			matched = append(matched, a)
		}
	}
	return matched
}

// FormatTime12 renders an "HH:MM" 24-hour time as "h:MM AM/PM". Hour zero
// displays as 12.
func FormatTime12(hhmm string) string {
	if hhmm == "" {
		return ""
	}

	parts := strings.SplitN(hhmm, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return hhmm
	}
	minute := 0
	if len(parts) == 2 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minute = m
		}
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}

// FormatTimeRange renders the clinic's weekly slot, e.g.
// "Wednesday 2:00 PM–6:00 PM".
func FormatTimeRange(cl *model.Clinic) string {
	return fmt.Sprintf("%s %s–%s", cl.Weekday, FormatTime12(cl.StartTime), FormatTime12(cl.EndTime))
}
