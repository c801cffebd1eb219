package plagiarism

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func scannerStub(t *testing.T, score float64, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if r.URL.Path != "/v3/businesses/check" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]float64{"score": score})
	}))
}

func TestCheck_ReturnsReport(t *testing.T) {
	srv := scannerStub(t, 37.4, nil)
	defer srv.Close()

	svc := NewService(NewClient("test-key", srv.URL), nil, time.Minute)
	report, err := svc.Check(context.Background(), []byte("some essay text"))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if report.Score != 37 || report.OriginalContent != 63 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestCheck_EmptyFile(t *testing.T) {
	svc := NewService(NewClient("test-key", "http://unused"), nil, time.Minute)
	if _, err := svc.Check(context.Background(), nil); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestCheck_CacheHitSkipsUpstream(t *testing.T) {
	var calls atomic.Int64
	srv := scannerStub(t, 80, &calls)
	defer srv.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewService(NewClient("test-key", srv.URL), rdb, time.Minute)
	ctx := context.Background()

	first, err := svc.Check(ctx, []byte("same document"))
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	second, err := svc.Check(ctx, []byte("same document"))
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if first != second {
		t.Fatalf("cached report differs: %+v vs %+v", first, second)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}

	// Different content misses the cache.
	if _, err := svc.Check(ctx, []byte("other document")); err != nil {
		t.Fatalf("third check: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", calls.Load())
	}
}

func TestCheck_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewService(NewClient("test-key", srv.URL), nil, time.Minute)
	if _, err := svc.Check(context.Background(), []byte("text")); err == nil {
		t.Fatalf("expected error for upstream failure")
	}
}
