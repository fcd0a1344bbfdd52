package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the console logger on stderr. Errors are always shown unless quiet,
// optimiser warnings need -v and optimiser information needs -vv.
func newLogger(quiet bool, verbose int) *zap.Logger {
	if quiet {
		return zap.New(zapcore.NewNopCore())
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	minLevel := zapcore.ErrorLevel
	if 1 < verbose {
		minLevel = zapcore.InfoLevel
	} else if 0 < verbose {
		minLevel = zapcore.WarnLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return minLevel <= lvl
		}))
	return zap.New(core)
}
