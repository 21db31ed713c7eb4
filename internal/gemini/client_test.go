package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// newTestClient points a client at a test server with fast polling.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", srv.URL, "", "")
	if c == nil {
		t.Fatal("NewClient returned nil for non-empty key")
	}
	c.pollInterval = time.Millisecond
	return c
}

func TestNewClient_EmptyKey(t *testing.T) {
	if c := NewClient("", "", "", ""); c != nil {
		t.Error("NewClient with empty key should return nil")
	}
}

func TestSearchPrice(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing key query param")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Tools) != 1 || req.Tools[0].GoogleSearch == nil {
			t.Errorf("googleSearch tool not requested: %+v", req.Tools)
		}

		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": "PRODUCT: Headphones | PRICE: $99.99 | DESC: good\n"},
					},
				},
				"groundingMetadata": map[string]any{
					"groundingChunks": []map[string]any{
						{"web": map[string]any{"uri": "https://example.com", "title": "Example"}},
					},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	c := newTestClient(t, handler)
	got, err := c.SearchPrice(context.Background(), "headphones", "USD")
	if err != nil {
		t.Fatalf("SearchPrice: %v", err)
	}

	if len(got.Candidates) != 1 || got.Candidates[0].Price != 99.99 {
		t.Errorf("Candidates = %+v", got.Candidates)
	}
	if len(got.Sources) != 1 || got.Sources[0].URI != "https://example.com" {
		t.Errorf("Sources = %+v", got.Sources)
	}
}

func TestSearchPrice_GarbageTextYieldsEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "Sorry, I can't help with that."}},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	c := newTestClient(t, handler)
	got, err := c.SearchPrice(context.Background(), "thing", "USD")
	if err != nil {
		t.Fatalf("SearchPrice: %v", err)
	}
	if len(got.Candidates) != 0 {
		t.Errorf("Candidates = %+v, want none", got.Candidates)
	}
	if got.RawText == "" {
		t.Error("RawText should carry the unparsed answer")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))

		_, err := c.SearchPrice(context.Background(), "x", "USD")
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestFindStores(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Tools) != 1 || req.Tools[0].GoogleMaps == nil {
			t.Errorf("googleMaps tool not requested: %+v", req.Tools)
		}
		if req.ToolConfig == nil || req.ToolConfig.RetrievalConfig.LatLng.Latitude != 40.7 {
			t.Errorf("latLng not forwarded: %+v", req.ToolConfig)
		}

		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "Try Central Electronics on 5th Ave."}},
				},
				"groundingMetadata": map[string]any{
					"groundingChunks": []map[string]any{
						{"maps": map[string]any{"uri": "https://maps.example/1", "title": "Central Electronics"}},
					},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	c := newTestClient(t, handler)
	got, err := c.FindStores(context.Background(), "headphones", 40.7, -74.0)
	if err != nil {
		t.Fatalf("FindStores: %v", err)
	}
	if !strings.Contains(got.Text, "Central Electronics") {
		t.Errorf("Text = %q", got.Text)
	}
	if len(got.Links) != 1 || got.Links[0].Title != "Central Electronics" {
		t.Errorf("Links = %+v", got.Links)
	}
}

func TestGenerateTimelineVideo_PollsUntilDone(t *testing.T) {
	var polls int
	var srvURL string

	mux := http.NewServeMux()
	mux.HandleFunc("/models/veo-3.1-fast-generate-preview:predictLongRunning", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "operations/vid-1", "done": false})
	})
	mux.HandleFunc("/operations/vid-1", func(w http.ResponseWriter, _ *http.Request) {
		polls++
		if polls < 3 {
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "operations/vid-1", "done": false})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "operations/vid-1",
			"done": true,
			"response": map[string]any{
				"generateVideoResponse": map[string]any{
					"generatedSamples": []map[string]any{
						{"video": map[string]any{"uri": srvURL + "/media/vid-1"}},
					},
				},
			},
		})
	})
	mux.HandleFunc("/media/vid-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fake-mp4-bytes"))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	c := NewClient("test-key", srv.URL, "", "")
	c.pollInterval = time.Millisecond

	out := filepath.Join(t.TempDir(), "goal.mp4")
	if err := c.GenerateTimelineVideo(context.Background(), "Dream Vacation", out); err != nil {
		t.Fatalf("GenerateTimelineVideo: %v", err)
	}

	if polls < 3 {
		t.Errorf("polled %d times, want at least 3", polls)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "fake-mp4-bytes" {
		t.Errorf("output = %q", data)
	}
}
