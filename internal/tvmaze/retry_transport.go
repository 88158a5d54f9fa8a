package tvmaze

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
)

const (
	retryBaseDelay = 250 * time.Millisecond
	retryMaxDelay  = 4 * time.Second
)

// newRetryTransport wraps next with a failsafe retry policy that re-issues a request
// on transport errors, 429 and 5xx answers. maxRetries <= 0 disables retrying and
// returns next unchanged.
func newRetryTransport(next http.RoundTripper, maxRetries int) http.RoundTripper {
	if maxRetries <= 0 {
		return next
	}

	policy := retrypolicy.NewBuilder[*http.Response]().
		HandleIf(shouldRetry).
		WithMaxRetries(maxRetries).
		WithBackoff(retryBaseDelay, retryMaxDelay).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[*http.Response]) {
			metrics.UpstreamRetriesTotal.Inc()
			logger := config.GetLogger()
			logger.Warn().
				Err(e.LastError()).
				Int("attempt", e.Attempts()).
				Msg("Retrying TVmaze request")
		}).
		Build()

	return failsafehttp.NewRoundTripper(next, policy)
}

func shouldRetry(resp *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}
