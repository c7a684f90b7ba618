package utils

import (
	"os"

	"github.com/rs/zerolog"
)

func NewLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
