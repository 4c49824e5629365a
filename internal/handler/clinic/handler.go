package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/receptionist-dashboard/internal/handler"
	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/service/schedule"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

type Handler struct {
	svc *schedule.Service
}

func NewHandler(svc *schedule.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clinics/:id", h.GetClinic)
}

// GetClinic renders the patient list for a clinic's completed or upcoming
// occurrence; ?type=upcoming selects the next occurrence, anything else the
// most recent one.
func (h *Handler) GetClinic(c *gin.Context) {
	mode := model.ParseMode(c.Query("type"))

	detail, err := h.svc.Detail(c.Request.Context(), c.Param("id"), mode)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handler.RenderNotFound(c, "Clinic not found", "/dashboard", "Back to dashboard")
			return
		}
		log.Error().Err(err).Str("clinic_id", c.Param("id")).Msg("failed to build clinic detail")
		handler.RenderError(c, "/dashboard", "Back to dashboard")
		return
	}

	heading := "Completed Clinic"
	if mode == model.ModeUpcoming {
		heading = "Upcoming Clinic"
	}

	c.HTML(http.StatusOK, "clinic_detail.html", gin.H{
		"Detail":  detail,
		"Heading": heading,
		"Date":    detail.TargetDate.Format("Jan 2"),
	})
}
