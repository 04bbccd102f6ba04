package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"itinera/internal/api/controllers"
	"itinera/pkg/middleware"
	"itinera/pkg/utils"
)

func TestRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := ProvideRouter(controllers.NewTripController(nil), utils.NewTokenParser("secret"), middleware.NewRateLimiter(5))

	var got []string
	for _, route := range r.Routes() {
		got = append(got, route.Method+" "+route.Path)
	}
	assert.ElementsMatch(t, []string{
		"GET /healthz",
		"POST /itineraries/generate",
		"GET /itineraries",
		"GET /itineraries/:id",
		"DELETE /itineraries/:id",
		"GET /itineraries/:id/pdf",
		"POST /itineraries/:id/share",
		"GET /shared/:token",
		"GET /shared/:token/pdf",
	}, got)
}

func TestRouterGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := ProvideRouter(controllers.NewTripController(nil), utils.NewTokenParser("secret"), middleware.NewRateLimiter(1))

	call := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := call(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.TraceIDHeader))

	assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/itineraries", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(http.MethodDelete, "/itineraries/abc", "").Code)

	// body is rejected before the service is reached; the second call is throttled
	assert.Equal(t, http.StatusBadRequest, call(http.MethodPost, "/itineraries/generate", "{}").Code)
	assert.Equal(t, http.StatusTooManyRequests, call(http.MethodPost, "/itineraries/generate", "{}").Code)
}
