package usecase

import (
	"context"
	"errors"
	"testing"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
)

func unavailable(name string) error {
	return &nlp.AnalysisError{Kind: nlp.ErrBackendUnavailable, Backend: name, Err: errors.New("connection refused")}
}

func TestNewManagerNoBackends(t *testing.T) {
	if _, err := NewManager(nil, Config{}, &mockLogger{}); !errors.Is(err, nlp.ErrNoBackends) {
		t.Fatalf("expected ErrNoBackends, got %v", err)
	}
}

func TestManagerAnalyze(t *testing.T) {
	task := []model.EntityInfo{{Name: "call mom", Type: model.EntityTask, Salience: 0.8}}

	tests := []struct {
		name        string
		fallback    bool
		requested   string
		primaryErr  error
		wantBackend string
		wantErr     error
		wantCalls   [2]int
	}{
		{
			name:        "primary succeeds",
			fallback:    true,
			wantBackend: "duckling",
			wantCalls:   [2]int{1, 0},
		},
		{
			name:        "falls back when unavailable",
			fallback:    true,
			primaryErr:  unavailable("duckling"),
			wantBackend: "pattern",
			wantCalls:   [2]int{1, 1},
		},
		{
			name:       "fallback disabled",
			fallback:   false,
			primaryErr: unavailable("duckling"),
			wantErr:    nlp.ErrBackendUnavailable,
			wantCalls:  [2]int{1, 0},
		},
		{
			name:       "invalid input is not retried",
			fallback:   true,
			primaryErr: nlp.ErrInvalidInput,
			wantErr:    nlp.ErrInvalidInput,
			wantCalls:  [2]int{1, 0},
		},
		{
			name:       "extraction failure is not retried",
			fallback:   true,
			primaryErr: &nlp.AnalysisError{Kind: nlp.ErrExtractionFailed, Backend: "duckling"},
			wantErr:    nlp.ErrExtractionFailed,
			wantCalls:  [2]int{1, 0},
		},
		{
			name:        "requested backend goes first",
			fallback:    true,
			requested:   "pattern",
			wantBackend: "pattern",
			wantCalls:   [2]int{0, 1},
		},
		{
			name:      "unknown backend",
			fallback:  true,
			requested: "stanford",
			wantErr:   nlp.ErrUnknownBackend,
		},
		{
			name:      "known but not configured",
			fallback:  true,
			requested: nlp.BackendGoogle,
			wantErr:   nlp.ErrUnknownBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockBackend{name: "duckling", entities: task, err: tt.primaryErr}
			secondary := &mockBackend{name: "pattern", entities: task}

			m, err := NewManager([]Backend{primary, secondary}, Config{FallbackEnabled: tt.fallback}, &mockLogger{})
			if err != nil {
				t.Fatalf("NewManager() error = %v", err)
			}

			out, err := m.Analyze(context.Background(), nlp.AnalyzeInput{Text: "Remind me to call mom", Backend: tt.requested})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Backend != tt.wantBackend {
					t.Errorf("Backend = %q, want %q", out.Backend, tt.wantBackend)
				}
				if len(out.Entities) != 1 {
					t.Errorf("unexpected entities %+v", out.Entities)
				}
			}

			if got := [2]int{primary.calls, secondary.calls}; got != tt.wantCalls {
				t.Errorf("calls = %v, want %v", got, tt.wantCalls)
			}
		})
	}
}

func TestManagerStopsOnCancelledContext(t *testing.T) {
	primary := &mockBackend{name: "duckling", err: unavailable("duckling")}
	secondary := &mockBackend{name: "pattern"}
	m, _ := NewManager([]Backend{primary, secondary}, Config{FallbackEnabled: true}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Analyze(ctx, nlp.AnalyzeInput{Text: "set alarm"})
	if !errors.Is(err, context.Canceled) || !errors.Is(err, nlp.ErrBackendUnavailable) {
		t.Fatalf("expected cancelled unavailable error, got %v", err)
	}
	if secondary.calls != 0 {
		t.Error("fallback must not run after cancellation")
	}
}

func TestManagerAnalyzeText(t *testing.T) {
	want := []model.EntityInfo{{Name: "7am", Type: model.EntityTemporal, Salience: 0.7}}
	m, _ := NewManager([]Backend{&mockBackend{name: "pattern", entities: want}}, Config{}, &mockLogger{})

	got, err := m.AnalyzeText(context.Background(), "set alarm 7am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("AnalyzeText() = %+v", got)
	}

	if names := m.Backends(); len(names) != 1 || names[0] != "pattern" {
		t.Errorf("Backends() = %v", names)
	}
}
