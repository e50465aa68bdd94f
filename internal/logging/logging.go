// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New создаёт корневой логгер. pretty включает человекочитаемый вывод
// для терминала, иначе пишется JSON по строке на событие.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
