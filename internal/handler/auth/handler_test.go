package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/receptionist-dashboard/internal/config"
	"github.com/jwalitptl/receptionist-dashboard/internal/middleware"
	authsvc "github.com/jwalitptl/receptionist-dashboard/internal/service/auth"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := authsvc.NewService(config.AuthConfig{
		Username:      "admin",
		Password:      "password123",
		SessionSecret: "test-secret",
		SessionHours:  24,
	})
	require.NoError(t, err)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, `{"username":"admin","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "login must set the session cookie")
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, "/", sessionCookie.Path)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUnknownUser(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, `{"username":"someone","password":"password123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid"}`, w.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	r := setupRouter(t)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `not json`} {
		w := postLogin(r, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "body %q", body)
		assert.JSONEq(t, `{"ok":false,"error":"Invalid"}`, w.Body.String())
	}
}
