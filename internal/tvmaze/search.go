package tvmaze

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// SearchShows queries search/shows?q=<term>
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()
	endpoint := c.baseURL + "search/shows?q=" + url.QueryEscape(term)

	logger.Debug().Str("term", term).Str("url", endpoint).Msg("Searching shows")

	shows, err := fetchAndParse(ctx, c, endpoint, c.showParser)
	if err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Show search failed")
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}
