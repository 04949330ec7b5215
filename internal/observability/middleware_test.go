package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"energylab/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddlewareSetsHeaderAndContext(t *testing.T) {
	var ctxRequestID string

	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodPost, "/labs/solar-profit", nil)
	w := testutil.ExecuteRequest(r, h)

	headerRequestID := w.Result().Header.Get(RequestIDHeader)
	if headerRequestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}

	if _, err := uuid.Parse(headerRequestID); err != nil {
		t.Fatalf("expected header to contain UUID, got %q: %v", headerRequestID, err)
	}

	if ctxRequestID != headerRequestID {
		t.Fatalf("expected context request_id %q to match header %q", ctxRequestID, headerRequestID)
	}
}

func TestRequestIDMiddlewareHonoursIncomingID(t *testing.T) {
	incoming := uuid.New().String()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "valid uuid", header: incoming, reuse: true},
		{name: "garbage", header: "not-a-uuid", reuse: false},
		{name: "absent", header: "", reuse: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			r := httptest.NewRequest(http.MethodGet, "/labs", nil)
			if tc.header != "" {
				r.Header.Set(RequestIDHeader, tc.header)
			}
			got := testutil.ExecuteRequest(r, h).Result().Header.Get(RequestIDHeader)

			if tc.reuse && got != incoming {
				t.Fatalf("expected incoming id %q to be reused, got %q", incoming, got)
			}
			if !tc.reuse && got == tc.header {
				t.Fatalf("expected a fresh id, got the incoming %q", got)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/health", want: false},
		{path: "/metrics", want: false},
		{path: "/labs/fuel-composition", want: true},
		{path: "/labs/emission/coal", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			got := shouldTraceRequest(r)
			if got != tc.want {
				t.Fatalf("path %q: expected %t, got %t", tc.path, tc.want, got)
			}
		})
	}
}

func TestLoggingMiddlewareWritesCompletionLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	r := httptest.NewRequest(http.MethodPost, "/labs/fault-current", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-123"))
	_ = testutil.ExecuteRequest(r, h)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Message != "request completed" {
		t.Fatalf("expected message %q, got %q", "request completed", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["method"] != http.MethodPost {
		t.Fatalf("expected method %q, got %#v", http.MethodPost, fields["method"])
	}
	if fields["path"] != "/labs/fault-current" {
		t.Fatalf("expected path %q, got %#v", "/labs/fault-current", fields["path"])
	}
	if fields["status"] != int64(http.StatusUnprocessableEntity) {
		t.Fatalf("expected status %d, got %#v", http.StatusUnprocessableEntity, fields["status"])
	}
	if fields["request_id"] != "req-123" {
		t.Fatalf("expected request_id %q, got %#v", "req-123", fields["request_id"])
	}
}

func TestHTTPMetricsUsesRoutePattern(t *testing.T) {
	m := NewHTTPMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/labs/emission/{fuel}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", m.Handler())

	_ = testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/labs/emission/coal", nil), r)
	_ = testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/labs/emission/gas", nil), r)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/metrics", nil), r)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	body := w.Body.String()
	want := `http_requests_total{method="POST",route="/labs/emission/{fuel}",status="200"} 2`
	if !strings.Contains(body, want) {
		t.Fatalf("expected metrics output to contain %q\n%s", want, body)
	}
	if strings.Contains(body, `route="/labs/emission/coal"`) {
		t.Fatal("expected raw paths to be collapsed into the route pattern")
	}
}
