package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/analyze", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	r.Post("/analyze", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	r.Get("/", func(_ http.ResponseWriter, _ *http.Request) {})
	return r
}

func serve(h http.Handler, method, target string) {
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, http.NoBody))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := newTestRouter()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/analyze", "200"))
	serve(r, http.MethodGet, "/analyze?urls=https://inosmi.ru/a.html,https://inosmi.ru/b.html")
	serve(r, http.MethodGet, "/analyze?urls=https://inosmi.ru/c.html")

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/analyze", "200")) - before; got != 2 {
		t.Errorf("expected 2 requests on the /analyze route, got %f", got)
	}
	if n := testutil.CollectAndCount(httpRequestDuration); n == 0 {
		t.Error("expected http_request_duration_seconds to have series")
	}
}

func TestMiddleware_StatusAndMethod(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{"POST", "/analyze", "/analyze", "400"},
		{"GET", "/health", "/health", "503"},
		{"GET", "/", "/", "200"},
		{"GET", "/nope", unmatchedRoute, "404"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			c := httpRequestsTotal.WithLabelValues(tc.method, tc.route, tc.status)
			before := testutil.ToFloat64(c)
			serve(r, tc.method, tc.path)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("requests_total{%s,%s,%s} grew by %f, want 1", tc.method, tc.route, tc.status, got)
			}
		})
	}
}

func TestMiddleware_InFlight(t *testing.T) {
	var during float64
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/slow", func(_ http.ResponseWriter, _ *http.Request) {
		during = testutil.ToFloat64(httpInFlight)
	})

	before := testutil.ToFloat64(httpInFlight)
	serve(r, http.MethodGet, "/slow")

	if during != before+1 {
		t.Errorf("in-flight during request = %f, want %f", during, before+1)
	}
	if after := testutil.ToFloat64(httpInFlight); after != before {
		t.Errorf("in-flight after request = %f, want %f", after, before)
	}
}

func TestRegisterHTTPMetrics_Idempotent(t *testing.T) {
	RegisterHTTPMetrics()
	RegisterHTTPMetrics()

	if err := prometheus.Register(httpInFlight); err == nil {
		t.Fatal("expected in-flight gauge to be registered already")
	}
}
