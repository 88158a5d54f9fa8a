package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// GetEpisodes queries shows/<id>/episodes. A 404 from TVmaze becomes an
// *apperrors.ErrNotFound for the show.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	endpoint := fmt.Sprintf("%sshows/%d/episodes", c.baseURL, showID)

	logger.Debug().Int("showID", showID).Str("url", endpoint).Msg("Fetching episodes")

	episodes, err := fetchAndParse(ctx, c, endpoint, c.episodeParser)
	if err != nil {
		var statusErr *apperrors.ErrUpstreamStatus
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(showID)
		}
		logger.Error().Err(err).Int("showID", showID).Msg("Episode fetch failed")
		return nil, fmt.Errorf("get episodes for show %d: %w", showID, err)
	}

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("Episode fetch completed")
	return episodes, nil
}
