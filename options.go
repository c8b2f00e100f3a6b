package pointcloud

import (
	"os"

	"github.com/rs/zerolog"
)

type Options struct {
	LogLevel     string
	Logger       *zerolog.Logger
	AllFrames    bool
	StatsEnabled bool
}

// NewLogger returns opts.Logger when set, otherwise a stderr logger at
// opts.LogLevel.
func NewLogger(opts Options) zerolog.Logger {
	if opts.Logger != nil {
		return *opts.Logger
	}

	// stdout carries the decoded points
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	switch opts.LogLevel {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		log.Warn().Str("log_level", opts.LogLevel).Msg("unknown log level, setting level to warn")
	}

	return log
}
