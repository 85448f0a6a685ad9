package https_server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/handler"
	"fix_syndicate_site/internal/infrastructure/mailer"
	"fix_syndicate_site/internal/infrastructure/metrics"
	"fix_syndicate_site/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSender) Send(_ context.Context, _ *mailer.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "msg_1", nil
}

func (f *fakeSender) Provider() string { return "fake" }

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("en"); err != nil {
		panic(err)
	}
	m.Run()
}

// newEngine sender 传 nil 表示邮件服务未配置
func newEngine(t *testing.T, sender mailer.Sender, mutate ...func(*config.Config)) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	cfg := config.Default()
	for _, fn := range mutate {
		fn(cfg)
	}
	m := metrics.New(false)

	svc, err := service.NewServices(cfg, sender, m)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(svc, cfg.SiteConfig)
	require.NoError(t, err)
	return Init(cfg, handlers, m), m
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestContactSuccess(t *testing.T) {
	sender := &fakeSender{}
	engine, m := newEngine(t, sender)

	w := do(engine, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com","message":"Leaky tap"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Email sent successfully!"}`, w.Body.String())
	assert.Equal(t, 1, sender.calls)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodPost, "/api/contact", "200")))
}

func TestContactMissingField(t *testing.T) {
	sender := &fakeSender{}
	engine, _ := newEngine(t, sender)

	w := do(engine, http.MethodPost, "/api/contact", `{"name":"","email":"jane@x.com","message":"Leaky tap"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please fill in all required fields"}`, w.Body.String())
	assert.Equal(t, 0, sender.calls)
}

func TestContactMalformedBody(t *testing.T) {
	sender := &fakeSender{}
	engine, _ := newEngine(t, sender)

	w := do(engine, http.MethodPost, "/api/contact", `{"name":"Jane"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	assert.Equal(t, 0, sender.calls)
}

func TestContactNotConfigured(t *testing.T) {
	engine, _ := newEngine(t, nil)

	for _, body := range []string{
		`{"name":"Jane","email":"jane@x.com","message":"Leaky tap"}`,
		`{"name":""}`,
		`garbage`,
	} {
		w := do(engine, http.MethodPost, "/api/contact", body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, body)
		assert.JSONEq(t, `{"error":"Email service is not configured. Please contact support."}`, w.Body.String())
	}
}

func TestContactProviderFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("403 domain is not verified")}
	engine, _ := newEngine(t, sender)

	w := do(engine, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com","message":"Leaky tap"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send email. Please try again or contact us directly."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "domain")
	assert.Equal(t, 1, sender.calls)
}

func TestContactNonPost(t *testing.T) {
	sender := &fakeSender{}
	engine, _ := newEngine(t, sender)

	// 显式注册的方法与只能落到 NoMethod 的方法，响应一致
	for _, method := range []string{
		http.MethodGet,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
		http.MethodTrace,
		http.MethodConnect,
		"PROPFIND",
	} {
		w := do(engine, method, "/api/contact", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "POST", w.Header().Get("Allow"), method)
		assert.JSONEq(t, `{"error":"Method not allowed. Please use POST."}`, w.Body.String(), method)
	}

	w := do(engine, http.MethodHead, "/api/contact", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))

	assert.Equal(t, 0, sender.calls)
}

func TestOtherRoutesKeepGenericNoMethod(t *testing.T) {
	engine, _ := newEngine(t, &fakeSender{})

	w := do(engine, http.MethodTrace, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Allow"), http.MethodGet)
}

func TestStaticDirectoriesAreNotListed(t *testing.T) {
	engine, _ := newEngine(t, &fakeSender{})

	for _, path := range []string{"/static/", "/static/js/", "/static/js"} {
		w := do(engine, http.MethodGet, path, "")
		assert.NotEqual(t, http.StatusOK, w.Code, path)
		assert.NotContains(t, w.Body.String(), "<pre>", path)
		assert.NotContains(t, w.Body.String(), "styles.css", path)
	}

	w := do(engine, http.MethodGet, "/static/styles.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactCORSPreflight(t *testing.T) {
	engine, _ := newEngine(t, &fakeSender{}, func(cfg *config.Config) {
		cfg.CorsConfig.AllowOrigins = []string{"https://fixsyndicate.com"}
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://fixsyndicate.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://fixsyndicate.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPagesAndStatic(t *testing.T) {
	engine, _ := newEngine(t, &fakeSender{})

	w := do(engine, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fix Syndicate | Property Maintenance &amp; Management")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = do(engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(engine, http.MethodGet, "/static/js/site.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/contact")

	w = do(engine, http.MethodGet, "/static/styles.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")

	w = do(engine, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = do(engine, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	engine, _ := newEngine(t, &fakeSender{})
	do(engine, http.MethodGet, "/health", "")

	w := do(engine, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "site_http_requests_total")

	engine, _ = newEngine(t, &fakeSender{}, func(cfg *config.Config) { cfg.MetricsConfig.Enabled = false })
	w = do(engine, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
