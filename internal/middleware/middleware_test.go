package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-directory/internal/middleware"
	"employee-directory/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := setupRouter()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "rid-9")
	r.ServeHTTP(w, req)

	entries := logs.FilterMessage("inside handler").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "rid-9", entries[0].ContextMap()["request_id"])
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := setupRouter()
	r.Use(middleware.RequestID(), middleware.AccessLog(zap.New(core)))
	r.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	entries := logs.FilterMessage("request completed").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusTeapot), entries[0].ContextMap()["status"])
	assert.Equal(t, "/teapot", entries[0].ContextMap()["path"])
}

func TestRateLimitByClient(t *testing.T) {
	r := setupRouter()
	r.GET("/limited", middleware.RateLimitByClient(0.0001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(client string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		if client != "" {
			req.Header.Set(middleware.ClientIDHeader, client)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))

	// Separate buckets per client and for anonymous callers.
	assert.Equal(t, http.StatusOK, call("b"))
	assert.Equal(t, http.StatusOK, call(""))
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.GET("/limited", middleware.RateLimitByIP(0.0001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
}
