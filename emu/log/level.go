package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

var disabled bool

func init() {
	// Filtering happens per module, let everything through logrus.
	logrus.SetLevel(logrus.DebugLevel)
}

// Disable turns off all logging, whatever the module mask.
func Disable() { disabled = true }

// Enable reverts a previous call to Disable.
func Enable() { disabled = false }

// SetOutput sets the destination of all log entries.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}
