package grpc

import (
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ShowFinder/internal/models"
)

// sanitizeUTF8 replaces invalid UTF-8 sequences, which protobuf strings cannot carry
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

func convertShowToProto(show models.Show) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":      structpb.NewNumberValue(float64(show.ID)),
			"name":    structpb.NewStringValue(sanitizeUTF8(show.Name)),
			"summary": structpb.NewStringValue(sanitizeUTF8(show.Summary)),
			"image":   structpb.NewStringValue(sanitizeUTF8(show.Image)),
		},
	})
}

func convertEpisodeToProto(episode models.Episode) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":     structpb.NewNumberValue(float64(episode.ID)),
			"name":   structpb.NewStringValue(sanitizeUTF8(episode.Name)),
			"season": structpb.NewNumberValue(float64(episode.Season)),
			"number": structpb.NewNumberValue(float64(episode.Number)),
		},
	})
}

func convertShowsToProto(shows []models.Show) *structpb.ListValue {
	values := make([]*structpb.Value, len(shows))
	for i, show := range shows {
		values[i] = convertShowToProto(show)
	}
	return &structpb.ListValue{Values: values}
}

func convertEpisodesToProto(episodes []models.Episode) *structpb.ListValue {
	values := make([]*structpb.Value, len(episodes))
	for i, episode := range episodes {
		values[i] = convertEpisodeToProto(episode)
	}
	return &structpb.ListValue{Values: values}
}
