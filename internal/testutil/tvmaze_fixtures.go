package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// ShowRowOptions contains options for generating one search/shows row
type ShowRowOptions struct {
	ID      int
	Name    string
	Summary *string // nil renders "summary": null
	Image   *string // nil renders "image": null
}

// GenerateSearchJSON builds a search/shows payload. Each row carries the extra
// fields TVmaze really sends (score, language, genres...) so that tests can check
// they never leak through normalization.
func GenerateSearchJSON(rows ...ShowRowOptions) string {
	payload := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		show := map[string]any{
			"id":       r.ID,
			"url":      "https://www.tvmaze.com/shows/" + strconv.Itoa(r.ID),
			"name":     r.Name,
			"type":     "Scripted",
			"language": "English",
			"genres":   []string{"Drama", "Comedy"},
			"status":   "Ended",
			"summary":  nil,
			"image":    nil,
		}
		if r.Summary != nil {
			show["summary"] = *r.Summary
		}
		if r.Image != nil {
			show["image"] = map[string]any{
				"medium":   *r.Image,
				"original": strings.Replace(*r.Image, "medium_portrait", "original_untouched", 1),
			}
		}
		payload = append(payload, map[string]any{"score": 0.9, "show": show})
	}
	return mustJSON(payload)
}

// EpisodeRowOptions contains options for generating one shows/{id}/episodes row
type EpisodeRowOptions struct {
	ID     int
	Name   string
	Season int
	Number *int // nil renders "number": null (specials)
}

// GenerateEpisodesJSON builds a shows/{id}/episodes payload with the extra
// fields TVmaze sends alongside the four that are kept
func GenerateEpisodesJSON(rows ...EpisodeRowOptions) string {
	payload := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		ep := map[string]any{
			"id":      r.ID,
			"url":     "https://www.tvmaze.com/episodes/" + strconv.Itoa(r.ID),
			"name":    r.Name,
			"season":  r.Season,
			"number":  nil,
			"type":    "regular",
			"airdate": "2012-04-15",
			"runtime": 30,
			"summary": "<p>An episode.</p>",
		}
		if r.Number != nil {
			ep["number"] = *r.Number
		}
		payload = append(payload, ep)
	}
	return mustJSON(payload)
}

// GirlsSearchJSON is the three-show answer used throughout the tests for the term "girls".
// The second show has no image.
func GirlsSearchJSON() string {
	return GenerateSearchJSON(
		ShowRowOptions{
			ID:      139,
			Name:    "Girls",
			Summary: StringPtr("<p>This Emmy winning series is a comic look at the assorted humiliations and rare triumphs of a group of girls in their 20s.</p>"),
			Image:   StringPtr("https://static.tvmaze.com/uploads/images/medium_portrait/31/78286.jpg"),
		},
		ShowRowOptions{
			ID:      23542,
			Name:    "Good Girls",
			Summary: StringPtr("<p>Three suburban mothers suddenly find themselves in desperate circumstances.</p>"),
		},
		ShowRowOptions{
			ID:      41734,
			Name:    "Girls5eva",
			Summary: StringPtr("<p><b>Girls5eva</b> follows a one-hit-wonder girl group from the '90s.</p>"),
			Image:   StringPtr("https://static.tvmaze.com/uploads/images/medium_portrait/305/764281.jpg"),
		},
	)
}

// GirlsEpisodesJSON is the two-episode answer for show 139
func GirlsEpisodesJSON() string {
	return GenerateEpisodesJSON(
		EpisodeRowOptions{ID: 11489, Name: "Pilot", Season: 1, Number: IntPtr(1)},
		EpisodeRowOptions{ID: 11490, Name: "Vagina Panic", Season: 1, Number: IntPtr(2)},
	)
}

// FakeTVMaze is an httptest server answering the two TVmaze endpoints from canned payloads
type FakeTVMaze struct {
	*httptest.Server

	mu           sync.Mutex
	requests     []string
	searchStatus atomic.Int32
}

// NewFakeTVMaze starts a server that answers search/shows with search and
// shows/{id}/episodes with episodes[id]. Unknown show ids get a 404.
// The server is closed when the test ends.
func NewFakeTVMaze(t *testing.T, search string, episodes map[string]string) *FakeTVMaze {
	t.Helper()
	f := &FakeTVMaze{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.RequestURI())
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		if r.URL.Path == "/search/shows" {
			if code := f.searchStatus.Load(); code != 0 {
				w.WriteHeader(int(code))
				return
			}
			_, _ = w.Write([]byte(search))
			return
		}
		if strings.HasPrefix(r.URL.Path, "/shows/") && strings.HasSuffix(r.URL.Path, "/episodes") {
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/shows/"), "/episodes")
			if body, ok := episodes[id]; ok {
				_, _ = w.Write([]byte(body))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name":"Not Found","message":"","code":0,"status":404}`))
	}))
	t.Cleanup(f.Close)
	return f
}

// BaseURL returns the server URL with the trailing slash TVmaze's base URL has
func (f *FakeTVMaze) BaseURL() string {
	return f.URL + "/"
}

// FailSearch makes every following search answer with status. Zero restores normal answers.
func (f *FakeTVMaze) FailSearch(status int) {
	f.searchStatus.Store(int32(status))
}

// Requests returns the request URIs received so far, in order
func (f *FakeTVMaze) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
