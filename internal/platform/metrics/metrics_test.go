package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New("test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/pet/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	for _, path := range []string{"/pet/1", "/pet/2", "/boom"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pet/{petID}", "200")); got != 2 {
		t.Fatalf("expected 2 requests on /pet/{petID}, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/boom", "404")); got != 1 {
		t.Fatalf("expected 1 request on /boom, got %v", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("expected no in-flight requests, got %v", got)
	}
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("test")
	m.requests.WithLabelValues("GET", "/x", "200").Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	if !strings.Contains(string(body), `test_http_requests_total{method="GET",route="/x",status="200"} 1`) {
		t.Fatalf("metric not exposed:\n%s", body)
	}
}
