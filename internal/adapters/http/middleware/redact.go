package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-app/internal/platform/logging"
)

const redacted = "[REDACTED]"

// sensitiveParams is the set of query parameter names (lowercase) whose
// values are masked in logged URLs.
var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
	"api_key":      true,
	"password":     true,
}

// RedactHeaders converts an http.Header map into slog.Attr values sorted by
// header name. Headers whose lowercase name appears in logging.SensitiveHeaders are
// replaced with "[REDACTED]". Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}

// RedactQuery returns the encoded query of u with sensitive parameter values
// masked. The result is "" when u has no query.
func RedactQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	q := u.Query()
	for key := range q {
		if sensitiveParams[strings.ToLower(key)] {
			q[key] = []string{redacted}
		}
	}
	return q.Encode()
}
