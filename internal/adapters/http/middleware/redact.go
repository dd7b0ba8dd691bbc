package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
)

// RedactHeaders turns headers into log attributes. Credentials are replaced
// with logging.Redacted and repeated values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		v := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			v = logging.Redacted
		}
		attrs = append(attrs, slog.String(key, v))
	}
	return attrs
}
