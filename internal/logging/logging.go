package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the diagnostics logger. Format "json" writes one JSON object per
// line; anything else uses the console writer.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if strings.EqualFold(format, "json") {
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}

// parseLevel accepts zerolog's level names plus the "warning" and "off"
// aliases. An empty level means warn.
func parseLevel(raw string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "", "warning":
		name = zerolog.WarnLevel.String()
	case "off":
		name = zerolog.Disabled.String()
	}

	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unsupported log level %q: %w", raw, err)
	}

	return lvl, nil
}
