package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ogp"
)

// Ensure LoggingParser implements ogp.Parser.
var _ ogp.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   ogp.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next ogp.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome, including
// which required properties the document lacks.
func (p *LoggingParser) Parse(source string) (m *ogp.Metadata, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(source)}
		if m != nil {
			missing := make([]string, 0)
			for _, fe := range m.Errors() {
				missing = append(missing, fe.Field)
			}
			attrs = append(attrs,
				"title", m.Title,
				"valid", len(missing) == 0,
				"missing", missing,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		p.logger.Info("parse", attrs...)
	}(time.Now())
	return p.next.Parse(source)
}
