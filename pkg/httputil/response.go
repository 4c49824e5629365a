package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginResponse is the body of the session endpoint. The shape is fixed:
// the front end checks the ok flag, not the status code alone.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// RespondOK sends the success body for the login endpoint.
func RespondOK(c *gin.Context) {
	c.JSON(http.StatusOK, LoginResponse{OK: true})
}

// RespondError sends a structured error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, LoginResponse{OK: false, Error: message})
}
