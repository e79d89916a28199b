package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/GBuch1/spider"
)

// Ensure LoggingParser implements spider.MarkupParser.
var _ spider.MarkupParser = (*LoggingParser)(nil)

// LoggingParser wraps a MarkupParser with logging.
type LoggingParser struct {
	next   spider.MarkupParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next spider.MarkupParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(r io.Reader, rules []spider.TagRule) (m *spider.Markup, err error) {
	defer func(begin time.Time) {
		var fragments, anchors int
		if m != nil {
			fragments, anchors = len(m.Fragments), len(m.Anchors)
		}
		p.logger.Info("parse",
			"rules", len(rules),
			"fragments", fragments,
			"anchors", anchors,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(r, rules)
}
