package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

type episodeRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number *int   `json:"number"`
}

// EpisodeParser implements the Parser interface for the shows/{id}/episodes payload
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser instance
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes the episode payload into Episodes, preserving upstream order
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var rows []episodeRow
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		logger.Error().Err(err).Msg("Failed to decode episode payload")
		return nil, fmt.Errorf("failed to decode episodes: %w", err)
	}

	episodes := make([]models.Episode, 0, len(rows))
	for _, row := range rows {
		ep := models.Episode{
			ID:     row.ID,
			Name:   row.Name,
			Season: row.Season,
		}
		// Specials come back with "number": null
		if row.Number != nil {
			ep.Number = *row.Number
		}
		episodes = append(episodes, ep)
	}

	logger.Debug().Int("total_episodes", len(episodes)).Msg("Normalized episode payload")
	return episodes, nil
}
