package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/platform/httpclient"
)

// maxDocumentSize bounds a fetched catalog file.
const maxDocumentSize = 4 << 20

// Requester runs GET requests against the content service: request creation,
// execution through httpclient.Client, status checking, error translation,
// and bounded body reads.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Requester{client: client, logger: logger}
}

// Get fetches path relative to the client's base URL and returns the body of
// a 200 response.
func (r *Requester) Get(ctx context.Context, path, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still carry the response.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusOK {
				return nil, TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "content request failed",
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "unexpected content status",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return nil, TranslateHTTPError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(body) > maxDocumentSize {
		return nil, fmt.Errorf("reading %s: document exceeds %d bytes", path, maxDocumentSize)
	}
	return body, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
