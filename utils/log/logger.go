// Package log builds the zap loggers used across the pipeline.
package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction. Components receive the built
// *zap.Logger explicitly; nothing here installs a process-wide logger.
type Options struct {
	Debug    bool
	FilePath string // optional log file appended to stdout output
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("driftline: " + t.Format(time.RFC3339))
}

// New builds a console logger for CLI invocations.
func New(opts Options) (*zap.Logger, error) {
	logCfg := zap.NewDevelopmentConfig()
	logCfg.EncoderConfig.EncodeTime = customTimeEncoder
	logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logCfg.DisableStacktrace = true
	logCfg.EncoderConfig.EncodeCaller = nil
	logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	if opts.Debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		logCfg.DisableStacktrace = false
		logCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	logCfg.OutputPaths = []string{"stdout"}
	if opts.FilePath != "" {
		logCfg.OutputPaths = append(logCfg.OutputPaths, opts.FilePath)
	}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build config for logger: %v", err)
	}
	return logger, nil
}
