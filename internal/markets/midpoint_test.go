package markets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polymaker/lp-bot/pkg/cache"
	"go.uber.org/zap"
)

func TestMidpointClient_GetMidpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("token_id"); got != "tok-1" {
			t.Errorf("token_id = %q, want tok-1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"mid":"0.455"}`))
	}))
	defer server.Close()

	client := NewMidpointClient(server.URL)
	mid, err := client.GetMidpoint(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("GetMidpoint() error = %v", err)
	}
	if mid != 0.455 {
		t.Errorf("mid = %f, want 0.455", mid)
	}
}

func TestMidpointClient_GetMidpoint_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewMidpointClient(server.URL)
	if _, err := client.GetMidpoint(context.Background(), "tok-1"); err == nil {
		t.Fatal("expected error on 503, got nil")
	}
}

func TestMidpointClient_GetMidpoint_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero", `{"mid":"0"}`},
		{"one", `{"mid":"1"}`},
		{"negative", `{"mid":"-0.1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewMidpointClient(server.URL)
			if _, err := client.GetMidpoint(context.Background(), "tok-1"); err == nil {
				t.Fatal("expected error for out-of-range midpoint, got nil")
			}
		})
	}
}

type fakeSource struct {
	mid  float64
	err  error
	hits int
}

func (f *fakeSource) GetMidpoint(ctx context.Context, tokenID string) (float64, error) {
	f.hits++
	if f.err != nil {
		return 0, f.err
	}
	return f.mid, nil
}

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
		Logger:      zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewRistrettoCache() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCachedMidpointSource_FallsBackToCached(t *testing.T) {
	src := &fakeSource{mid: 0.42}
	c := newTestCache(t)
	cached := NewCachedMidpointSource(src, c, zap.NewNop())

	mid, err := cached.GetMidpoint(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("first GetMidpoint() error = %v", err)
	}
	if mid != 0.42 {
		t.Errorf("mid = %f, want 0.42", mid)
	}
	c.(interface{ Wait() }).Wait()

	src.err = errors.New("upstream down")
	mid, err = cached.GetMidpoint(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("fallback GetMidpoint() error = %v", err)
	}
	if mid != 0.42 {
		t.Errorf("fallback mid = %f, want 0.42", mid)
	}
}

func TestCachedMidpointSource_ErrorWhenNothingCached(t *testing.T) {
	src := &fakeSource{err: errors.New("upstream down")}
	cached := NewCachedMidpointSource(src, newTestCache(t), zap.NewNop())

	if _, err := cached.GetMidpoint(context.Background(), "tok-unknown"); err == nil {
		t.Fatal("expected error when fetch fails with empty cache, got nil")
	}
}
