package services

import (
	"context"

	"github.com/Belphemur/ShowFinder/internal/render"
)

// Banners shown on the page when a pipeline fails
const (
	SearchFailedAlert      = "Search failed. TVmaze could not be reached, please try again."
	EpisodesFailedAlert    = "Episodes failed to load. Please try again."
	ShowNotOnPageAlert     = "That show is not in the current results. Search again first."
	pipelineSearch         = "search"
	pipelineEpisodes       = "episodes"
	pipelineStatusOK       = "success"
	pipelineStatusError    = "error"
	pipelineStatusRejected = "rejected"
)

// Catalog runs the search and episode pipelines against a page
type Catalog interface {
	// SearchAndDisplay fetches the shows matching term and renders them into the page's show list.
	// The episode area is hidden first. On failure the show list keeps its previous cards.
	SearchAndDisplay(ctx context.Context, term string, page *render.Page) error

	// EpisodesAndDisplay fetches the episodes of a show whose card is on the page
	// and renders them into the episode area, revealing it.
	EpisodesAndDisplay(ctx context.Context, showID int, page *render.Page) error
}
