package tvmaze

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/parser"
)

// maxErrorBodyBytes bounds how much of a non-200 body is drained before closing
const maxErrorBodyBytes = 4 << 10

// fetchAndParse performs one GET against endpoint and normalizes the JSON body with p.
// A non-200 answer yields *apperrors.ErrUpstreamStatus.
func fetchAndParse[T any](ctx context.Context, c *client, endpoint string, p parser.Parser[T]) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &apperrors.ErrUpstreamStatus{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}

	return p.Parse(body)
}
