package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/receptionist-dashboard/internal/middleware"
	"github.com/jwalitptl/receptionist-dashboard/internal/service/auth"
	"github.com/jwalitptl/receptionist-dashboard/pkg/httputil"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/login", h.LoginPage)
	r.POST("/api/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login verifies the credential pair and sets the session cookie. The 401
// body shape is fixed; the login form reads the error field.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusUnauthorized, "Invalid")
		return
	}

	if err := h.svc.Verify(req.Username, req.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("failed login attempt")
		httputil.RespondError(c, http.StatusUnauthorized, "Invalid")
		return
	}

	token, err := h.svc.IssueToken(req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		httputil.RespondError(c, http.StatusInternalServerError, "session error")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.svc.SessionTTL().Seconds()), "/", "", false, true)
	httputil.RespondOK(c)
}
