package call

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository"
)

// Outcome matching over free-text call statuses. The three checks are
// independent, so a single status can land in more than one bucket and the
// counters need not sum to the total.
var (
	bookedRe  = regexp.MustCompile(`(?i)booked`)
	reschedRe = regexp.MustCompile(`(?i)resched`)
	cancelRe  = regexp.MustCompile(`(?i)cancel`)
)

// Service reads call records and derives the weekly stat bar.
type Service struct {
	repo repository.CallRepository
}

func NewService(repo repository.CallRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*model.Call, error) {
	calls, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return calls, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Call, error) {
	return s.repo.Get(ctx, id)
}

// Summarize classifies calls into the weekly stat counters.
func Summarize(calls []*model.Call) model.WeeklyStats {
	stats := model.WeeklyStats{Total: len(calls)}
	for _, c := range calls {
		if bookedRe.MatchString(c.Status) {
			stats.Booked++
		}
		if reschedRe.MatchString(c.Status) {
			stats.Rescheduled++
		}
		if cancelRe.MatchString(c.Status) {
			stats.Cancelled++
		}
	}
	return stats
}

// FormatWhen renders a call timestamp for display, e.g. "Oct 16 • 11:05 AM".
func FormatWhen(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2 • 3:04 PM")
}

// FormatDuration renders a call duration as "Xm Ys"; zero durations render
// as the empty string.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// FormatWhenWithDuration combines timestamp and duration into the single
// line shown on call rows.
func FormatWhenWithDuration(t time.Time, seconds int) string {
	when := FormatWhen(t)
	duration := FormatDuration(seconds)
	if duration == "" {
		return when
	}
	return fmt.Sprintf("%s - %s", when, duration)
}
