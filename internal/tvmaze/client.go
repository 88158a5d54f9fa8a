package tvmaze

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/parser"
)

// Client defines the interface for querying the TVmaze API
type Client interface {
	// SearchShows issues one search/shows request for term and returns the
	// normalized shows in upstream order. An empty term is sent as-is.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// GetEpisodes issues one shows/{id}/episodes request and returns the
	// normalized episodes in upstream order.
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial timeouts
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	// compression -> retry -> metrics -> network
	instrumented := promhttp.InstrumentRoundTripperInFlight(metrics.UpstreamInFlight,
		promhttp.InstrumentRoundTripperCounter(metrics.UpstreamRequestsTotal,
			promhttp.InstrumentRoundTripperDuration(metrics.UpstreamRequestDuration, baseTransport),
		),
	)

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(newRetryTransport(instrumented, cfg.MaxRetries)),
	}

	baseURL := cfg.TVMazeBaseURL
	if baseURL == "" {
		baseURL = config.DefaultTVMazeBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &client{
		httpClient:    httpClient,
		baseURL:       strings.TrimSuffix(baseURL, "/") + "/",
		userAgent:     userAgent,
		showParser:    parser.NewShowParser(cfg.DefaultImageURL),
		episodeParser: parser.NewEpisodeParser(),
	}
}

// Close releases idle keep-alive connections
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
