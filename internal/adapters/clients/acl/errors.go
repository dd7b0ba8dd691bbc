// Package acl is the anti-corruption layer in front of the remote content
// service. It fetches catalog files over the instrumented HTTP client and
// turns the service's failures into domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/domain"
)

const problemMediaType = "application/problem+json"

// maxProblemSize bounds how much of an error body is read.
const maxProblemSize = 64 << 10

// RemoteError is a failed content service response. It unwraps to the
// domain error the status maps to, or to nothing for statuses with no
// domain meaning.
type RemoteError struct {
	Status int
	Detail string
	kind   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("content service %d: %s", e.Status, e.Detail)
}

func (e *RemoteError) Unwrap() error { return e.kind }

// TranslateHTTPError reads a failed response into a *RemoteError. The
// detail comes from a problem+json body when one is sent, else from the
// status text.
func TranslateHTTPError(resp *http.Response) error {
	return &RemoteError{
		Status: resp.StatusCode,
		Detail: problemText(resp),
		kind:   kindOf(resp.StatusCode),
	}
}

func kindOf(status int) error {
	switch status {
	case http.StatusNotFound, http.StatusGone:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		// Credentials and quotas are ours to fix, not the caller's.
		return domain.ErrUnavailable
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

func problemText(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if resp.Body == nil {
		return fallback
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != problemMediaType {
		return fallback
	}

	var pd struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemSize)).Decode(&pd); err != nil {
		return fallback
	}
	switch {
	case pd.Detail != "":
		return pd.Detail
	case pd.Title != "":
		return pd.Title
	default:
		return fallback
	}
}
