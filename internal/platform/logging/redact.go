package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds lowercase header names whose values never reach a
// log. The request logging middleware reads it too.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Attribute names redacted wherever they appear.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"signing_key",
	"email", // account addresses are personal data
}

var redactedPrefixes = []string{"secret_", "api_key"}

// Values redacted whatever their attribute is called. The JWT rule wants ten
// characters per segment so version strings survive.
var redactedValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(redactedFields)+len(redactedPrefixes)+len(redactedValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, p := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
