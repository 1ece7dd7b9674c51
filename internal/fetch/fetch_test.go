package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	data, err := NewClient().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("body: got %q, want %q", data, "image-bytes")
	}
}

func TestClient_Fetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404 response, got nil")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should mention the status: %v", err)
	}
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient().Fetch(ctx, srv.URL); err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}
}

func TestCache_LoadFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("cached"))
	}))
	defer srv.Close()

	cache := NewCache(NewClient())
	for i := 0; i < 3; i++ {
		data, err := cache.Load(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("Load %d failed: %v", i, err)
		}
		if string(data) != "cached" {
			t.Errorf("Load %d: got %q, want %q", i, data, "cached")
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server hits: got %d, want 1", hits.Load())
	}
}

func TestCache_EvictForcesRefetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	cache := NewCache(NewClient())
	if _, err := cache.Load(context.Background(), srv.URL); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(srv.URL)
	if _, err := cache.Load(context.Background(), srv.URL); err != nil {
		t.Fatalf("Load after evict failed: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hits: got %d, want 2", hits.Load())
	}
}

func TestCache_FailuresAreNotCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	cache := NewCache(NewClient())
	if _, err := cache.Load(context.Background(), srv.URL); err == nil {
		t.Fatal("first load should fail")
	}
	data, err := cache.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if string(data) != "recovered" {
		t.Errorf("got %q, want %q", data, "recovered")
	}
}
