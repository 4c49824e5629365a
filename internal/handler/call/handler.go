package call

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/receptionist-dashboard/internal/handler"
	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	callsvc "github.com/jwalitptl/receptionist-dashboard/internal/service/call"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

type Handler struct {
	svc *callsvc.Service
}

func NewHandler(svc *callsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	calls := r.Group("/calls")
	{
		calls.GET("", h.ListCalls)
		calls.GET("/:id", h.GetCall)
	}
}

// row is a call plus its preformatted display strings.
type row struct {
	Call     *model.Call
	When     string
	Duration string
}

func (h *Handler) ListCalls(c *gin.Context) {
	calls, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list calls")
		handler.RenderError(c, "/dashboard", "Back to dashboard")
		return
	}

	rows := make([]row, 0, len(calls))
	for _, call := range calls {
		rows = append(rows, row{
			Call:     call,
			When:     callsvc.FormatWhen(call.When),
			Duration: callsvc.FormatDuration(call.DurationSec),
		})
	}

	c.HTML(http.StatusOK, "calls.html", gin.H{
		"Stats": callsvc.Summarize(calls),
		"Calls": rows,
	})
}

func (h *Handler) GetCall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handler.RenderNotFound(c, "Call not found", "/calls", "Back to all calls")
		return
	}

	call, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handler.RenderNotFound(c, "Call not found", "/calls", "Back to all calls")
			return
		}
		log.Error().Err(err).Int64("call_id", id).Msg("failed to get call")
		handler.RenderError(c, "/calls", "Back to all calls")
		return
	}

	apptDate := ""
	if call.ApptDate != nil {
		apptDate = call.ApptDate.Format("Jan 2, 2006")
	}

	c.HTML(http.StatusOK, "call_detail.html", gin.H{
		"Call":     call,
		"When":     callsvc.FormatWhen(call.When),
		"Duration": callsvc.FormatDuration(call.DurationSec),
		"Combined": callsvc.FormatWhenWithDuration(call.When, call.DurationSec),
		"ApptDate": apptDate,
	})
}
