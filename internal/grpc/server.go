package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/tvmaze"
)

// errorDomain is the ErrorInfo domain attached to every failed call
const errorDomain = "showfinder"

// server implements CatalogServiceServer
type server struct {
	client tvmaze.Client
	logger zerolog.Logger
}

// NewServer creates a new CatalogService implementation
func NewServer(c tvmaze.Client) CatalogServiceServer {
	return &server{
		client: c,
		logger: config.GetLogger(),
	}
}

// SearchShows implements CatalogServiceServer.SearchShows
func (s *server) SearchShows(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	term := req.GetValue()
	s.logger.Debug().Str("term", term).Msg("SearchShows called")

	shows, err := s.client.SearchShows(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search shows")
		return nil, toStatusError(err, map[string]string{"term": term})
	}

	s.logger.Debug().Int("count", len(shows)).Msg("SearchShows completed")
	return convertShowsToProto(shows), nil
}

// GetEpisodes implements CatalogServiceServer.GetEpisodes
func (s *server) GetEpisodes(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	showID := req.GetValue()
	s.logger.Debug().Int64("show_id", showID).Msg("GetEpisodes called")

	meta := map[string]string{"show_id": strconv.FormatInt(showID, 10)}
	if showID <= 0 {
		return nil, statusWithInfo(codes.InvalidArgument, "show id must be positive", "INVALID_SHOW_ID", meta)
	}

	episodes, err := s.client.GetEpisodes(ctx, int(showID))
	if err != nil {
		s.logger.Error().Err(err).Int64("show_id", showID).Msg("Failed to get episodes")
		return nil, toStatusError(err, meta)
	}

	s.logger.Debug().Int64("show_id", showID).Int("count", len(episodes)).Msg("GetEpisodes completed")
	return convertEpisodesToProto(episodes), nil
}

// toStatusError maps client errors to gRPC status codes
func toStatusError(err error, meta map[string]string) error {
	var upstream *apperrors.ErrUpstreamStatus
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return statusWithInfo(codes.NotFound, err.Error(), "SHOW_NOT_FOUND", meta)
	case errors.Is(err, context.Canceled):
		return statusWithInfo(codes.Canceled, err.Error(), "CANCELED", meta)
	case errors.Is(err, context.DeadlineExceeded):
		return statusWithInfo(codes.DeadlineExceeded, err.Error(), "UPSTREAM_TIMEOUT", meta)
	case errors.As(err, &upstream):
		withStatus := make(map[string]string, len(meta)+1)
		for k, v := range meta {
			withStatus[k] = v
		}
		withStatus["upstream_status"] = strconv.Itoa(upstream.StatusCode)
		return statusWithInfo(codes.Unavailable, err.Error(), "UPSTREAM_ERROR", withStatus)
	default:
		return statusWithInfo(codes.Unavailable, err.Error(), "UPSTREAM_UNREACHABLE", meta)
	}
}

func statusWithInfo(code codes.Code, msg, reason string, meta map[string]string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: meta,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
