// Package logger provides the loggers shared by the CSS and SVG packages.
//
// Parsing never fails: dropped declarations, rules and selectors are reported
// on the debug level of WarningLogger instead.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

var (
	// ProgressLogger logs the main steps of the style resolution.
	ProgressLogger *zap.SugaredLogger

	// WarningLogger emits a message for each non fatal error, like unsupported CSS
	// properties or invalid selectors.
	WarningLogger *zap.SugaredLogger
)

func init() {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	Set(zap.New(core))
}

// Set replaces the underlying logger of ProgressLogger and WarningLogger.
// A nil logger discards everything.
func Set(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	ProgressLogger = log.Named("progress").Sugar()
	WarningLogger = log.Named("warning").Sugar()
}

// SetLevel changes the level of the default logger. Accepted values are
// "none", "debug" and "normal" (plus any name understood by zapcore).
func SetLevel(name string) error {
	switch name {
	case "none":
		level.SetLevel(zapcore.FatalLevel + 1)
		return nil
	case "normal", "":
		level.SetLevel(zapcore.WarnLevel)
		return nil
	}
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Level returns the current level of the default logger.
func Level() zapcore.Level { return level.Level() }
