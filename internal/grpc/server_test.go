package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// mockClient implements tvmaze.Client for testing
type mockClient struct {
	searchShowsFunc func(ctx context.Context, term string) ([]models.Show, error)
	getEpisodesFunc func(ctx context.Context, showID int) ([]models.Episode, error)
}

func (m *mockClient) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	if m.searchShowsFunc != nil {
		return m.searchShowsFunc(ctx, term)
	}
	return []models.Show{}, nil
}

func (m *mockClient) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	if m.getEpisodesFunc != nil {
		return m.getEpisodesFunc(ctx, showID)
	}
	return []models.Episode{}, nil
}

func (m *mockClient) Close() error {
	return nil
}

// errorInfo extracts the ErrorInfo detail of a status error
func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("Expected a gRPC status error, got %v", err)
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("Expected an ErrorInfo detail on %v", err)
	return nil
}

func TestSearchShows_Success(t *testing.T) {
	var gotTerm string
	srv := NewServer(&mockClient{
		searchShowsFunc: func(_ context.Context, term string) ([]models.Show, error) {
			gotTerm = term
			return []models.Show{
				{ID: 139, Name: "Girls", Summary: "<p>Emmy winner.</p>", Image: "https://static.tvmaze.com/a.jpg"},
				{ID: 23542, Name: "Good Girls", Summary: "", Image: config.DefaultImageURL},
			}, nil
		},
	})

	resp, err := srv.SearchShows(context.Background(), wrapperspb.String("girls"))
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if gotTerm != "girls" {
		t.Errorf("Expected term 'girls', got %q", gotTerm)
	}
	if len(resp.Values) != 2 {
		t.Fatalf("Expected 2 shows, got %d", len(resp.Values))
	}

	first := resp.Values[0].GetStructValue().GetFields()
	if first["id"].GetNumberValue() != 139 || first["name"].GetStringValue() != "Girls" {
		t.Errorf("Unexpected first show: %v", first)
	}
	second := resp.Values[1].GetStructValue().GetFields()
	if second["image"].GetStringValue() != config.DefaultImageURL {
		t.Errorf("Expected default image, got %q", second["image"].GetStringValue())
	}
}

func TestSearchShows_EmptyResult(t *testing.T) {
	srv := NewServer(&mockClient{})

	resp, err := srv.SearchShows(context.Background(), wrapperspb.String(""))
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(resp.Values) != 0 {
		t.Errorf("Expected empty list, got %d", len(resp.Values))
	}
}

func TestSearchShows_UpstreamError(t *testing.T) {
	srv := NewServer(&mockClient{
		searchShowsFunc: func(context.Context, string) ([]models.Show, error) {
			return nil, &apperrors.ErrUpstreamStatus{StatusCode: 500, URL: "http://api.tvmaze.com/search/shows?q=x"}
		},
	})

	_, err := srv.SearchShows(context.Background(), wrapperspb.String("x"))
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("Expected Unavailable, got %v", status.Code(err))
	}

	info := errorInfo(t, err)
	if info.Reason != "UPSTREAM_ERROR" || info.Domain != errorDomain {
		t.Errorf("Unexpected ErrorInfo: %+v", info)
	}
	if info.Metadata["upstream_status"] != "500" || info.Metadata["term"] != "x" {
		t.Errorf("Unexpected metadata: %v", info.Metadata)
	}
}

func TestSearchShows_TransportError(t *testing.T) {
	srv := NewServer(&mockClient{
		searchShowsFunc: func(context.Context, string) ([]models.Show, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	})

	_, err := srv.SearchShows(context.Background(), wrapperspb.String("x"))
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("Expected Unavailable, got %v", status.Code(err))
	}
	if info := errorInfo(t, err); info.Reason != "UPSTREAM_UNREACHABLE" {
		t.Errorf("Expected UPSTREAM_UNREACHABLE, got %q", info.Reason)
	}
}

func TestGetEpisodes_Success(t *testing.T) {
	var gotID int
	srv := NewServer(&mockClient{
		getEpisodesFunc: func(_ context.Context, showID int) ([]models.Episode, error) {
			gotID = showID
			return []models.Episode{
				{ID: 11489, Name: "Pilot", Season: 1, Number: 1},
				{ID: 11490, Name: "Vagina Panic", Season: 1, Number: 2},
			}, nil
		},
	})

	resp, err := srv.GetEpisodes(context.Background(), wrapperspb.Int64(139))
	if err != nil {
		t.Fatalf("GetEpisodes failed: %v", err)
	}
	if gotID != 139 {
		t.Errorf("Expected show 139, got %d", gotID)
	}
	if len(resp.Values) != 2 {
		t.Fatalf("Expected 2 episodes, got %d", len(resp.Values))
	}
	second := resp.Values[1].GetStructValue().GetFields()
	if second["name"].GetStringValue() != "Vagina Panic" || second["number"].GetNumberValue() != 2 {
		t.Errorf("Unexpected second episode: %v", second)
	}
}

func TestGetEpisodes_NotFound(t *testing.T) {
	srv := NewServer(&mockClient{
		getEpisodesFunc: func(_ context.Context, showID int) ([]models.Episode, error) {
			return nil, apperrors.NewShowNotFoundError(showID)
		},
	})

	_, err := srv.GetEpisodes(context.Background(), wrapperspb.Int64(999))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("Expected NotFound, got %v", status.Code(err))
	}
	info := errorInfo(t, err)
	if info.Reason != "SHOW_NOT_FOUND" || info.Metadata["show_id"] != "999" {
		t.Errorf("Unexpected ErrorInfo: %+v", info)
	}
}

func TestGetEpisodes_InvalidID(t *testing.T) {
	called := false
	srv := NewServer(&mockClient{
		getEpisodesFunc: func(context.Context, int) ([]models.Episode, error) {
			called = true
			return nil, nil
		},
	})

	for _, id := range []int64{0, -5} {
		_, err := srv.GetEpisodes(context.Background(), wrapperspb.Int64(id))
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("id %d: expected InvalidArgument, got %v", id, status.Code(err))
		}
	}
	if called {
		t.Error("Expected no upstream call for an invalid id")
	}
}

func TestToStatusError_Context(t *testing.T) {
	if code := status.Code(toStatusError(context.Canceled, nil)); code != codes.Canceled {
		t.Errorf("Expected Canceled, got %v", code)
	}
	if code := status.Code(toStatusError(context.DeadlineExceeded, nil)); code != codes.DeadlineExceeded {
		t.Errorf("Expected DeadlineExceeded, got %v", code)
	}
}
