// Package logging configures the global zerolog logger used as the diagnostic
// channel: a size-rotated file plus an optional console stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat matches the month-first clock shown on the device's serial log.
const TimeFormat = "01/02/2006 15:04:05"

// Options configure Setup.
type Options struct {
	// File is the log file path. Empty disables file logging.
	File string
	// UTCOffsetHours shifts timestamps to local time.
	UTCOffsetHours int
	Debug          bool
	// Console receives human-readable output. Nil disables it.
	Console io.Writer
}

// Zone returns the fixed zone for a UTC offset in hours.
func Zone(offsetHours int) *time.Location {
	if offsetHours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
}

// Setup replaces the global logger. The returned closer flushes and closes the
// log file.
func Setup(opts Options) (io.Closer, error) {
	var writers []io.Writer
	var file *lumberjack.Logger

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    1,
			MaxBackups: 2,
		}
		writers = append(writers, file)
	}
	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: TimeFormat})
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	zone := Zone(opts.UTCOffsetHours)
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(zone) }
	zerolog.TimeFieldFormat = TimeFormat

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if file == nil {
		return io.NopCloser(nil), nil
	}
	return file, nil
}
