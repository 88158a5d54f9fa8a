package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// searchRow is one element of the search/shows payload. Only the fields that
// survive normalization are declared; everything else is dropped by the decoder.
type searchRow struct {
	Show struct {
		ID      int     `json:"id"`
		Name    string  `json:"name"`
		Summary *string `json:"summary"`
		Image   *struct {
			Medium string `json:"medium"`
		} `json:"image"`
	} `json:"show"`
}

// ShowParser implements the Parser interface for the TVmaze show search payload
type ShowParser struct {
	defaultImageURL string
}

// NewShowParser creates a new show parser. defaultImageURL is used for shows
// without a poster; an empty value falls back to config.DefaultImageURL.
func NewShowParser(defaultImageURL string) *ShowParser {
	if defaultImageURL == "" {
		defaultImageURL = config.DefaultImageURL
	}
	return &ShowParser{
		defaultImageURL: defaultImageURL,
	}
}

// Parse decodes the search payload and normalizes each row into a Show,
// preserving upstream order
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var rows []searchRow
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		logger.Error().Err(err).Msg("Failed to decode show search payload")
		return nil, fmt.Errorf("failed to decode shows: %w", err)
	}

	shows := make([]models.Show, 0, len(rows))
	for _, row := range rows {
		shows = append(shows, p.normalize(row))
	}

	logger.Debug().Int("total_shows", len(shows)).Msg("Normalized show search payload")
	return shows, nil
}

func (p *ShowParser) normalize(row searchRow) models.Show {
	show := models.Show{
		ID:    row.Show.ID,
		Name:  row.Show.Name,
		Image: p.defaultImageURL,
	}
	if row.Show.Summary != nil {
		show.Summary = *row.Show.Summary
	}
	if row.Show.Image != nil && row.Show.Image.Medium != "" {
		show.Image = row.Show.Image.Medium
	}
	return show
}
