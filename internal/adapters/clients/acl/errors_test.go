package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/campus-web/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       *http.Response
		wantKind   error
		wantDetail string
	}{
		{name: "404", resp: response(404, "", ""), wantKind: domain.ErrNotFound, wantDetail: "Not Found"},
		{name: "410", resp: response(410, "", ""), wantKind: domain.ErrNotFound, wantDetail: "Gone"},
		{name: "400", resp: response(400, "", ""), wantKind: domain.ErrValidation, wantDetail: "Bad Request"},
		{name: "422", resp: response(422, "", ""), wantKind: domain.ErrValidation, wantDetail: "Unprocessable Entity"},
		{name: "401", resp: response(401, "", ""), wantKind: domain.ErrUnavailable, wantDetail: "Unauthorized"},
		{name: "403", resp: response(403, "", ""), wantKind: domain.ErrUnavailable, wantDetail: "Forbidden"},
		{name: "429", resp: response(429, "", ""), wantKind: domain.ErrUnavailable, wantDetail: "Too Many Requests"},
		{name: "503", resp: response(503, "", ""), wantKind: domain.ErrUnavailable, wantDetail: "Service Unavailable"},
		{
			name:       "problem detail",
			resp:       response(404, "application/problem+json", `{"title":"Not Found","detail":"catalog clubs not published"}`),
			wantKind:   domain.ErrNotFound,
			wantDetail: "catalog clubs not published",
		},
		{
			name:       "problem title with charset",
			resp:       response(400, "application/problem+json; charset=utf-8", `{"title":"Bad catalog name"}`),
			wantKind:   domain.ErrValidation,
			wantDetail: "Bad catalog name",
		},
		{
			name:       "plain body ignored",
			resp:       response(502, "text/plain", "upstream exploded"),
			wantKind:   domain.ErrUnavailable,
			wantDetail: "Bad Gateway",
		},
		{
			name:       "broken problem body",
			resp:       response(500, "application/problem+json", "{"),
			wantKind:   domain.ErrUnavailable,
			wantDetail: "Internal Server Error",
		},
		{
			name:       "nil body",
			resp:       &http.Response{StatusCode: 404, Header: http.Header{"Content-Type": {"application/problem+json"}}},
			wantKind:   domain.ErrNotFound,
			wantDetail: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(tt.resp)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", err, tt.wantKind)
			}

			var re *RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("TranslateHTTPError() = %T, want *RemoteError", err)
			}
			if re.Status != tt.resp.StatusCode || re.Detail != tt.wantDetail {
				t.Errorf("RemoteError = {%d %q}, want {%d %q}", re.Status, re.Detail, tt.resp.StatusCode, tt.wantDetail)
			}
		})
	}
}

func TestTranslateHTTPError_UnmappedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusTeapot, "", ""))
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrUnavailable, domain.ErrConflict} {
		if errors.Is(err, sentinel) {
			t.Errorf("418 matched %v", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "418") {
		t.Errorf("Error() = %q, want the status code", err.Error())
	}
}
