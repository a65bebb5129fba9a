package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwi/jobboard-backend/internal/access"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeErrorCode(t *testing.T, body []byte) (string, string) {
	t.Helper()
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error, payload.Message
}

func TestAPIKey(t *testing.T) {
	handler := APIKey("top-secret", nil)(okHandler())

	cases := map[string]int{
		"":           http.StatusUnauthorized,
		"wrong":      http.StatusUnauthorized,
		"top-secret": http.StatusOK,
	}
	for key, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/vacancies", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "key %q", key)
		if want == http.StatusUnauthorized {
			_, msg := decodeErrorCode(t, rec.Body.Bytes())
			assert.Equal(t, "Invalid or missing API key", msg)
		}
	}
}

func TestAPIKeyRejectsEverythingWhenUnconfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "")
	APIKey("", nil)(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorizeUsesPermissionTable(t *testing.T) {
	handler := Authorize(access.OpVacanciesCreate, nil)(okHandler())

	anonymous := httptest.NewRecorder()
	handler.ServeHTTP(anonymous, httptest.NewRequest(http.MethodPost, "/vacancies", nil))
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	coder := httptest.NewRequest(http.MethodPost, "/vacancies", nil)
	coder = coder.WithContext(access.WithPrincipal(coder.Context(), &access.Principal{UserID: 1, Role: enums.RoleCoder}))
	forbidden := httptest.NewRecorder()
	handler.ServeHTTP(forbidden, coder)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	code, msg := decodeErrorCode(t, forbidden.Body.Bytes())
	assert.Equal(t, string(pkgerrors.CodeForbidden), code)
	assert.Equal(t, "You do not have permission to perform this action", msg)

	gestor := httptest.NewRequest(http.MethodPost, "/vacancies", nil)
	gestor = gestor.WithContext(access.WithPrincipal(gestor.Context(), &access.Principal{UserID: 2, Role: enums.RoleGestor}))
	allowed := httptest.NewRecorder()
	handler.ServeHTTP(allowed, gestor)
	assert.Equal(t, http.StatusOK, allowed.Code)
}

func TestLoggingAndMetricsRecordRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: &buf})
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(RequestID(logg), Logging(logg), Metrics(metrics.NewHTTPMetrics(reg)))
	r.Get("/vacancies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vacancies/42", nil)
	req.Header.Set("X-Request-Id", "req-123")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, buf.String(), "request.complete")
	assert.Contains(t, buf.String(), "req-123")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "jobboard_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "route" && lp.GetValue() == "/vacancies/{id}" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected route pattern label")
}

func TestRequestIDReplacesUnsafeValues(t *testing.T) {
	handler := RequestID(nil)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "bad id\twith spaces")
	handler.ServeHTTP(rec, req)
	got := rec.Header().Get("X-Request-Id")
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, " ")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", strings.Repeat("a", maxRequestIDLength+1))
	handler.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestRecovererReturnsInternalError(t *testing.T) {
	handler := Recoverer(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	code, msg := decodeErrorCode(t, rec.Body.Bytes())
	assert.Equal(t, string(pkgerrors.CodeInternal), code)
	assert.Equal(t, "internal server error", msg)
}

func TestCORSAllowsFrontendWithCredentials(t *testing.T) {
	handler := CORS("http://localhost:3001/")(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/vacancies", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-api-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	other := httptest.NewRequest(http.MethodGet, "/vacancies", nil)
	other.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
