package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveEmail(t *testing.T) {
	m := New(false)
	m.ObserveEmail("resend", ResultSuccess, 120*time.Millisecond)
	m.ObserveEmail("resend", ResultFailure, time.Second)
	m.ObserveEmail("resend", ResultNotConfigured, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailSends.WithLabelValues("resend", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailSends.WithLabelValues("resend", ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailSends.WithLabelValues("resend", ResultNotConfigured)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveEmail("resend", ResultSuccess, 0) })
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(true)

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/health", "/health", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "site_http_requests_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
