package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jwalitptl/receptionist-dashboard/internal/handler"
	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository"
	callsvc "github.com/jwalitptl/receptionist-dashboard/internal/service/call"
	"github.com/jwalitptl/receptionist-dashboard/internal/service/schedule"
)

type Handler struct {
	schedule *schedule.Service
	store    repository.ScheduleStore
}

func NewHandler(scheduleSvc *schedule.Service, store repository.ScheduleStore) *Handler {
	return &Handler{schedule: scheduleSvc, store: store}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
}

// Dashboard renders the weekly stat bar and the completed/upcoming clinic
// cards. The clinic, appointment and call tab fetches have no ordering
// dependency, so they are dispatched together and joined.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		completed, upcoming []model.ClinicSummary
		sheetCalls          []*model.Call
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		completed, upcoming, err = h.schedule.Overview(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sheetCalls, err = h.store.CallLog(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build dashboard")
		handler.RenderError(c, "/dashboard", "Retry")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Stats":     callsvc.Summarize(sheetCalls),
		"Completed": completed,
		"Upcoming":  upcoming,
	})
}
