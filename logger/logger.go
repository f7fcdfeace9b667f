// Package logger provides a configurable logger shared by all components.
//
// The root logger defined by default uses github.com/rs/zerolog with a
// console writer on stderr: stdout is reserved for the encoded vector.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/consensys/bn254-difftest/debug"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger for a component
func Logger() zerolog.Logger {
	return logger
}
