package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvToggle names the variable that enables the debug channel.
	EnvToggle = "DEBUG"
	appName   = "cc-quota"
)

// Enabled reports whether the debug toggle selects this tool.
func Enabled(getenv func(string) string) bool {
	switch getenv(EnvToggle) {
	case appName, "*":
		return true
	default:
		return false
	}
}

// New returns a debug logger writing human-readable lines to w when the
// toggle is on, and a no-op logger otherwise.
func New(w io.Writer, getenv func(string) string) zerolog.Logger {
	if !Enabled(getenv) {
		return zerolog.Nop()
	}

	return NewDebug(w)
}

func NewDebug(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return "[" + appName + "]"
			}
			return "[" + appName + "] " + i.(string)
		},
	}

	return zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
