package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Debug        bool `split_words:"true" default:"false"`
	PrettyFormat bool `split_words:"true" default:"false"`
}

var DefaultConfig = &Config{}

// Init replaces the global zerolog logger according to conf. Pretty format is
// for local development; production output stays line-delimited JSON.
func Init(opts ...Config) {
	conf := DefaultConfig
	if len(opts) > 0 {
		conf = &opts[0]
	}

	var logger zerolog.Logger
	if conf.PrettyFormat {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = zerolog.New(os.Stdout)
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = logger.Level(level).With().Timestamp().Caller().Stack().Logger()
}
