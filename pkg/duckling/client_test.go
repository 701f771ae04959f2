package duckling_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"maya-nlp/pkg/duckling"
)

func TestDucklingClient(t *testing.T) {
	var (
		mu          sync.Mutex
		lastReftime string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/parse" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("locale") != "en_US" || r.PostForm.Get("dims") != `["time","duration"]` {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		lastReftime = r.PostForm.Get("reftime")
		mu.Unlock()

		switch r.PostForm.Get("text") {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		case "bad_json":
			w.Write([]byte(`{"not":"a list"`))
		default:
			w.Write([]byte(`[
				{"body":"25 minutes","start":16,"end":26,"dim":"duration","latent":false,
				 "value":{"type":"value","value":25,"unit":"minute"}},
				{"body":"every Tuesday at 3","start":30,"end":48,"dim":"time","latent":false,
				 "value":{"type":"value","grain":"hour","value":"2025-10-21T15:00:00.000-07:00",
				          "values":[{"type":"value","grain":"hour","value":"2025-10-21T15:00:00.000-07:00"},
				                    {"type":"value","grain":"hour","value":"2025-10-28T15:00:00.000-07:00"}]}}
			]`))
		}
	}))
	defer ts.Close()

	client, err := duckling.New(duckling.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	reftime := time.UnixMilli(1760864400000)

	t.Run("Success Flow", func(t *testing.T) {
		ents, err := client.Parse(context.Background(), "hello", reftime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mu.Lock()
		gotReftime := lastReftime
		mu.Unlock()
		if gotReftime != "1760864400000" {
			t.Errorf("reftime = %q, want epoch millis", gotReftime)
		}
		if len(ents) != 2 {
			t.Fatalf("expected 2 entities, got %d", len(ents))
		}
		if ents[0].Dim != "duration" || ents[0].Start != 16 || ents[0].End != 26 || ents[0].Value.Unit != "minute" {
			t.Errorf("unexpected first entity: %+v", ents[0])
		}
		if ents[1].Value.Grain != "hour" || len(ents[1].Value.Values) != 2 {
			t.Errorf("unexpected recurrence payload: %+v", ents[1].Value)
		}
		if got := ents[1].Value.Values[1].String(); got != "2025-10-28T15:00:00.000-07:00" {
			t.Errorf("Candidate.String() = %q", got)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Parse(context.Background(), "cause_500", reftime)
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected 500 error, got %v", err)
		}
	})

	t.Run("Decode Error Flow", func(t *testing.T) {
		_, err := client.Parse(context.Background(), "bad_json", reftime)
		if err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("Raw", func(t *testing.T) {
		body, err := client.Raw(context.Background(), "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(body), `"body":"25 minutes"`) {
			t.Errorf("unexpected raw body: %s", body)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`[]`))
		}))
		defer slow.Close()

		c, _ := duckling.New(duckling.Config{BaseURL: slow.URL, Timeout: 20 * time.Millisecond})
		if _, err := c.Parse(context.Background(), "x", reftime); err == nil {
			t.Fatal("expected timeout error")
		}
	})
}

func TestNewDefaults(t *testing.T) {
	if _, err := duckling.New(duckling.Config{}); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	if _, err := duckling.New(duckling.Config{BaseURL: "::not a url"}); err == nil {
		t.Fatal("expected invalid url error")
	}
}
