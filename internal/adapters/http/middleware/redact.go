package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders converts request headers into sorted slog attributes.
// Credential headers listed in logging.SensitiveHeaders are replaced; for
// Authorization the scheme is kept so a missing "Bearer" prefix stays
// visible when debugging 401s.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		vals := headers[key]
		lower := strings.ToLower(key)
		switch {
		case lower == "authorization":
			attrs = append(attrs, slog.String(key, redactCredential(strings.Join(vals, ","))))
		case logging.SensitiveHeaders[lower]:
			attrs = append(attrs, slog.String(key, redactedValue))
		default:
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// redactCredential keeps the auth scheme of an Authorization value.
func redactCredential(v string) string {
	scheme, _, found := strings.Cut(v, " ")
	if !found {
		return redactedValue
	}
	return scheme + " " + redactedValue
}
