// Package logging builds the structured logger used across the wakeup
// layer and the demo binaries: a zap core wrapped in a standard log/slog
// front end, so call sites use slog's structured API while the actual
// encoding, sampling and output plumbing stays zap's.
package logging

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New builds a *slog.Logger backed by zap. In production mode it uses zap's
// JSON production config; otherwise zap's colorized development config. The
// returned func flushes zap's output buffer and should be deferred by the
// caller.
func New(isProd bool) (*slog.Logger, func() error) {
	var zapLogger *zap.Logger

	if isProd {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(config.Build())
	}

	return slog.New(zapslog.NewHandler(zapLogger.Core())), zapLogger.Sync
}
