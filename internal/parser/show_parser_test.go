package parser

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

func TestShowParser_Parse_GirlsScenario(t *testing.T) {
	p := NewShowParser(config.DefaultImageURL)

	shows, err := p.Parse(strings.NewReader(testutil.GirlsSearchJSON()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []models.Show{
		{
			ID:      139,
			Name:    "Girls",
			Summary: "<p>This Emmy winning series is a comic look at the assorted humiliations and rare triumphs of a group of girls in their 20s.</p>",
			Image:   "https://static.tvmaze.com/uploads/images/medium_portrait/31/78286.jpg",
		},
		{
			ID:      23542,
			Name:    "Good Girls",
			Summary: "<p>Three suburban mothers suddenly find themselves in desperate circumstances.</p>",
			Image:   config.DefaultImageURL,
		},
		{
			ID:      41734,
			Name:    "Girls5eva",
			Summary: "<p><b>Girls5eva</b> follows a one-hit-wonder girl group from the '90s.</p>",
			Image:   "https://static.tvmaze.com/uploads/images/medium_portrait/305/764281.jpg",
		},
	}

	if len(shows) != len(expected) {
		t.Fatalf("Expected %d shows, got %d", len(expected), len(shows))
	}
	for i, want := range expected {
		if shows[i] != want {
			t.Errorf("Show %d: expected %+v, got %+v", i, want, shows[i])
		}
	}
}

func TestShowParser_Parse_DefaultImage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"image null", `[{"show":{"id":1,"name":"A","summary":"s","image":null}}]`},
		{"image absent", `[{"show":{"id":1,"name":"A","summary":"s"}}]`},
		{"medium absent", `[{"show":{"id":1,"name":"A","summary":"s","image":{"original":"http://x/o.jpg"}}}]`},
		{"medium empty", `[{"show":{"id":1,"name":"A","summary":"s","image":{"medium":""}}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewShowParser("http://example.com/default.jpg")
			shows, err := p.Parse(strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(shows) != 1 {
				t.Fatalf("Expected 1 show, got %d", len(shows))
			}
			if shows[0].Image != "http://example.com/default.jpg" {
				t.Errorf("Expected default image, got %q", shows[0].Image)
			}
		})
	}
}

func TestShowParser_Parse_EmptyDefaultFallsBackToConstant(t *testing.T) {
	p := NewShowParser("")
	shows, err := p.Parse(strings.NewReader(`[{"show":{"id":5,"name":"B"}}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if shows[0].Image != config.DefaultImageURL {
		t.Errorf("Expected %q, got %q", config.DefaultImageURL, shows[0].Image)
	}
}

func TestShowParser_Parse_ExactImageValue(t *testing.T) {
	p := NewShowParser(config.DefaultImageURL)
	body := `[{"show":{"id":2,"name":"C","summary":null,"image":{"medium":"http://img/with space.jpg?x=1&y=2"}}}]`

	shows, err := p.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if shows[0].Image != "http://img/with space.jpg?x=1&y=2" {
		t.Errorf("Expected exact medium value, got %q", shows[0].Image)
	}
	if shows[0].Summary != "" {
		t.Errorf("Expected empty summary for null, got %q", shows[0].Summary)
	}
}

func TestShowParser_Parse_NoExtraFields(t *testing.T) {
	p := NewShowParser(config.DefaultImageURL)
	shows, err := p.Parse(strings.NewReader(testutil.GirlsSearchJSON()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	raw, err := json.Marshal(shows[0])
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(fields) != 4 {
		t.Errorf("Expected exactly 4 fields, got %d: %v", len(fields), fields)
	}
	for _, key := range []string{"id", "name", "summary", "image"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Missing field %q", key)
		}
	}
}

func TestShowParser_Parse_PreservesOrder(t *testing.T) {
	rows := make([]testutil.ShowRowOptions, 0, 20)
	for i := 20; i > 0; i-- {
		rows = append(rows, testutil.ShowRowOptions{ID: i * 7, Name: "Show"})
	}

	p := NewShowParser(config.DefaultImageURL)
	shows, err := p.Parse(strings.NewReader(testutil.GenerateSearchJSON(rows...)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(shows) != len(rows) {
		t.Fatalf("Expected %d shows, got %d", len(rows), len(shows))
	}
	for i, row := range rows {
		if shows[i].ID != row.ID {
			t.Errorf("Position %d: expected ID %d, got %d", i, row.ID, shows[i].ID)
		}
	}
}

func TestShowParser_Parse_EmptyArray(t *testing.T) {
	p := NewShowParser(config.DefaultImageURL)
	shows, err := p.Parse(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("Expected no shows, got %d", len(shows))
	}
}

func TestShowParser_Parse_Malformed(t *testing.T) {
	p := NewShowParser(config.DefaultImageURL)

	for _, body := range []string{`{"show":`, `{"message":"not an array"}`, `<html></html>`} {
		if _, err := p.Parse(strings.NewReader(body)); err == nil {
			t.Errorf("Expected error for body %q", body)
		}
	}
}
