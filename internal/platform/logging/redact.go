package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted replaces a masked value in log output.
const Redacted = "[REDACTED]"

var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// Attribute keys that hold form secrets or attempt tokens. Form field IDs
// appear in both camel and snake case in snapshots.
var sensitiveKeys = []string{
	"password",
	"confirmPassword",
	"confirm_password",
	"token",
	"attempt_token",
	"secret",
	"website",
}

var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`)
	jwtValue    = regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`)
	inlineKey   = regexp.MustCompile(`(?i)(api[_\-]?key|secret)\s*[:=]\s*\S+`)
)

// IsSensitiveHeader reports whether an HTTP header's value must not be
// logged. Matching ignores case.
func IsSensitiveHeader(name string) bool {
	for _, h := range sensitiveHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}

// masker builds the ReplaceAttr hook: sensitive keys are masked by name and
// bearer tokens, JWTs, and inline keys are masked wherever they appear.
func masker() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(inlineKey),
	}
	for _, k := range append(sensitiveHeaders, sensitiveKeys...) {
		opts = append(opts, masq.WithFieldName(k))
	}
	return masq.New(opts...)
}
