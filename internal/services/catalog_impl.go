package services

import (
	"context"
	"errors"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/tvmaze"
)

// DefaultCatalog implements Catalog on top of the TVmaze client and the renderer
type DefaultCatalog struct {
	client   tvmaze.Client
	renderer *render.Renderer
}

// NewCatalog creates a new Catalog
func NewCatalog(client tvmaze.Client, renderer *render.Renderer) Catalog {
	return &DefaultCatalog{
		client:   client,
		renderer: renderer,
	}
}

// SearchAndDisplay implements Catalog
func (c *DefaultCatalog) SearchAndDisplay(ctx context.Context, term string, page *render.Page) error {
	logger := config.GetLogger()
	page.Normalize()
	page.Term = term
	page.Alert = ""
	page.EpisodesArea.Hide()

	shows, err := c.client.SearchShows(ctx, term)
	if err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(pipelineSearch, pipelineStatusError).Inc()
		logger.Error().Err(err).Str("term", term).Msg("Search pipeline failed")
		page.Alert = SearchFailedAlert
		return err
	}

	if err := c.renderer.PopulateShows(page.ShowsList, shows); err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(pipelineSearch, pipelineStatusError).Inc()
		page.Alert = SearchFailedAlert
		return err
	}

	metrics.PipelineRunsTotal.WithLabelValues(pipelineSearch, pipelineStatusOK).Inc()
	logger.Info().Str("term", term).Int("shows", len(shows)).Msg("Rendered search results")
	return nil
}

// EpisodesAndDisplay implements Catalog
func (c *DefaultCatalog) EpisodesAndDisplay(ctx context.Context, showID int, page *render.Page) error {
	logger := config.GetLogger()
	page.Normalize()
	page.Alert = ""

	// The id is read from a rendered card, never taken on trust
	if !page.ShowsList.HasShow(showID) {
		metrics.PipelineRunsTotal.WithLabelValues(pipelineEpisodes, pipelineStatusRejected).Inc()
		logger.Warn().Int("showID", showID).Msg("Episodes requested for a show that is not on the page")
		page.Alert = ShowNotOnPageAlert
		return &apperrors.ErrShowNotRendered{ShowID: showID}
	}

	episodes, err := c.client.GetEpisodes(ctx, showID)
	if err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(pipelineEpisodes, pipelineStatusError).Inc()
		event := logger.Error()
		if errors.Is(err, &apperrors.ErrNotFound{}) {
			event = logger.Warn()
		}
		event.Err(err).Int("showID", showID).Msg("Episode pipeline failed")
		page.Alert = EpisodesFailedAlert
		return err
	}

	if err := c.renderer.PopulateEpisodes(page.EpisodesArea, episodes); err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(pipelineEpisodes, pipelineStatusError).Inc()
		page.Alert = EpisodesFailedAlert
		return err
	}

	metrics.PipelineRunsTotal.WithLabelValues(pipelineEpisodes, pipelineStatusOK).Inc()
	logger.Info().Int("showID", showID).Int("episodes", len(episodes)).Msg("Rendered episodes")
	return nil
}
