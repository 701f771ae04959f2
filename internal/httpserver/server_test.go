package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
	"maya-nlp/pkg/log"
)

type stubService struct{ backends []string }

func (s stubService) AnalyzeText(ctx context.Context, text string) ([]model.EntityInfo, error) {
	return []model.EntityInfo{}, nil
}

func (s stubService) Analyze(ctx context.Context, input nlp.AnalyzeInput) (nlp.AnalyzeOutput, error) {
	return nlp.AnalyzeOutput{Entities: []model.EntityInfo{}, Backend: "pattern"}, nil
}

func (s stubService) Backends() []string { return s.backends }

type stubRaw struct{}

func (stubRaw) Raw(ctx context.Context, text string) ([]byte, error) { return []byte(`[]`), nil }

func newServer(t *testing.T, env string, svc nlp.Service) *HTTPServer {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter", Help: "test"}))

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: env,
		Gatherer:    reg,
		NLPService:  svc,
		Duckling:    stubRaw{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		l    log.Logger
		cfg  Config
	}{
		{name: "no logger", cfg: Config{Port: 1, Mode: gin.TestMode, NLPService: stubService{}}},
		{name: "no mode", l: log.NewNop(), cfg: Config{Port: 1, NLPService: stubService{}}},
		{name: "no port", l: log.NewNop(), cfg: Config{Mode: gin.TestMode, NLPService: stubService{}}},
		{name: "no service", l: log.NewNop(), cfg: Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.l, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, "development", stubService{backends: []string{"pattern"}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := serve(srv, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	w := serve(srv, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "test_counter") {
		t.Errorf("metrics not exposed: %d", w.Code)
	}

	if w := serve(srv, http.MethodGet, "/health", ""); w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestReadyWithoutBackends(t *testing.T) {
	srv := newServer(t, "development", stubService{})
	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestDebugRouteOnlyInLocal(t *testing.T) {
	body := `{"text":"tomorrow at 5pm"}`

	local := newServer(t, string(model.EnvironmentLocal), stubService{backends: []string{"duckling"}})
	if w := serve(local, http.MethodPost, "/api/v1/nlp/duckling/raw", body); w.Code != http.StatusOK {
		t.Errorf("local: expected 200, got %d", w.Code)
	}

	prod := newServer(t, string(model.EnvironmentProduction), stubService{backends: []string{"duckling"}})
	if w := serve(prod, http.MethodPost, "/api/v1/nlp/duckling/raw", body); w.Code != http.StatusNotFound {
		t.Errorf("production: expected 404, got %d", w.Code)
	}
}

func TestAnalyzeRoute(t *testing.T) {
	srv := newServer(t, "development", stubService{backends: []string{"pattern"}})
	w := serve(srv, http.MethodPost, "/api/v1/nlp/analyze", `{"text":"hello"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"entities":[]`) {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv := newServer(t, "development", stubService{backends: []string{"pattern"}})
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
