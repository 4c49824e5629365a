package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/receptionist-dashboard/internal/service/auth"
	"github.com/jwalitptl/receptionist-dashboard/pkg/httputil"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "auth"

// ContextUser is the context key holding the authenticated username.
const ContextUser = "session_user"

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireSession gates the non-public routes. Page requests without a valid
// session redirect to /login; API requests get a structured 401.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if user, err := m.authService.ValidateToken(token); err == nil {
				c.Set(ContextUser, user)
				c.Next()
				return
			}
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized")
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	}
}
