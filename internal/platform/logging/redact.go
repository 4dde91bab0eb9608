package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Documents checked by dddcheck are arbitrary user input and are logged on
// failure, so credentials pasted into them must not reach the log sink.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment so version strings are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineSecretPattern = regexp.MustCompile(`(?i)(api[_\-]?key|password|secret)\s*[:=]\s*\S+`)
)

// SensitiveFields are attribute names whose values are always redacted.
var SensitiveFields = []string{"password", "secret", "token", "authorization", "api_key"}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+5)
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineSecretPattern),
	)
	return masq.New(opts...)
}
