package tvmaze

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		TVMazeBaseURL:   baseURL,
		DefaultImageURL: config.DefaultImageURL,
		ClientTimeout:   "10s",
	})
}

func TestClient_SearchShows(t *testing.T) {
	fake := testutil.NewFakeTVMaze(t, testutil.GirlsSearchJSON(), nil)
	c := newTestClient(fake.BaseURL())
	defer c.Close()

	shows, err := c.SearchShows(context.Background(), "girls")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}

	expectedIDs := []int{139, 23542, 41734}
	if len(shows) != len(expectedIDs) {
		t.Fatalf("Expected %d shows, got %d", len(expectedIDs), len(shows))
	}
	for i, id := range expectedIDs {
		if shows[i].ID != id {
			t.Errorf("Show %d: expected ID %d, got %d", i, id, shows[i].ID)
		}
	}
	if shows[1].Image != config.DefaultImageURL {
		t.Errorf("Expected default image for show without image, got %q", shows[1].Image)
	}

	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("Expected exactly one upstream request, got %d: %v", len(requests), requests)
	}
	if requests[0] != "/search/shows?q=girls" {
		t.Errorf("Expected /search/shows?q=girls, got %q", requests[0])
	}
}

func TestClient_SearchShows_EncodesTerm(t *testing.T) {
	var rawQuery, q string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		q = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	term := "law & order: svu #1 ?"
	if _, err := c.SearchShows(context.Background(), term); err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}

	if q != term {
		t.Errorf("Expected upstream to receive term %q, got %q (raw %q)", term, q, rawQuery)
	}
}

func TestClient_SearchShows_EmptyTerm(t *testing.T) {
	var hits int32
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL + "/")
	shows, err := c.SearchShows(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("Expected no shows, got %d", len(shows))
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("Expected the empty search to still reach upstream once, got %d", hits)
	}
	if rawQuery != "q=" {
		t.Errorf("Expected raw query 'q=', got %q", rawQuery)
	}
}

func TestClient_SendsHeaders(t *testing.T) {
	var userAgent, accept, gotEncoding string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
		gotEncoding = r.Header.Get("Accept-Encoding")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(&config.Config{TVMazeBaseURL: server.URL, UserAgent: "test-agent/2.0"})
	if _, err := c.SearchShows(context.Background(), "x"); err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}

	if userAgent != "test-agent/2.0" {
		t.Errorf("Expected configured User-Agent, got %q", userAgent)
	}
	if accept != "application/json" {
		t.Errorf("Expected Accept application/json, got %q", accept)
	}
	if gotEncoding != acceptEncoding {
		t.Errorf("Expected Accept-Encoding %q, got %q", acceptEncoding, gotEncoding)
	}
}

func TestClient_GetEpisodes(t *testing.T) {
	fake := testutil.NewFakeTVMaze(t, `[]`, map[string]string{"139": testutil.GirlsEpisodesJSON()})
	c := newTestClient(fake.BaseURL())

	episodes, err := c.GetEpisodes(context.Background(), 139)
	if err != nil {
		t.Fatalf("GetEpisodes failed: %v", err)
	}

	expected := []models.Episode{
		{ID: 11489, Name: "Pilot", Season: 1, Number: 1},
		{ID: 11490, Name: "Vagina Panic", Season: 1, Number: 2},
	}
	if len(episodes) != len(expected) {
		t.Fatalf("Expected %d episodes, got %d", len(expected), len(episodes))
	}
	for i, want := range expected {
		if episodes[i] != want {
			t.Errorf("Episode %d: expected %+v, got %+v", i, want, episodes[i])
		}
	}

	requests := fake.Requests()
	if len(requests) != 1 || requests[0] != "/shows/139/episodes" {
		t.Errorf("Expected one request to /shows/139/episodes, got %v", requests)
	}
}

func TestClient_BaseURLWithoutTrailingSlash(t *testing.T) {
	fake := testutil.NewFakeTVMaze(t, `[]`, map[string]string{"1": `[]`})
	c := newTestClient(fake.URL)

	if _, err := c.GetEpisodes(context.Background(), 1); err != nil {
		t.Fatalf("GetEpisodes failed: %v", err)
	}
	if got := fake.Requests(); len(got) != 1 || got[0] != "/shows/1/episodes" {
		t.Errorf("Expected /shows/1/episodes, got %v", got)
	}
}
