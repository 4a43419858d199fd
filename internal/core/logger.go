// Package core implements functionality shared across all components of the
// dialog bridge: logger initialization and common logging helpers.
package core

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init initializes zap's global logger
// After calling this, we use zap.L() directly.
func Init(pretty bool) error {
	var config zap.Config

	if pretty {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// LogDialog logs the completion of one dialog request using zap's global logger.
// Cancellation is not an error here: a cancelled dialog completes normally with
// no selection, so it is logged on the success path with selection=false.
func LogDialog(operation string, id uint64, duration float64, selection bool, err error) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Uint64("request_id", id),
		zap.Float64("duration_seconds", duration),
		zap.Bool("selection", selection),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		zap.L().Error("Dialog could not be presented", fields...)
		return
	}

	zap.L().Info("Dialog completed", fields...)
}

// LogPanicRecovery logs a panic recovered at a component boundary.
func LogPanicRecovery(component string, panicValue any) {
	zap.L().Error("Panic recovered",
		zap.String("component", component),
		zap.Any("panic_value", panicValue),
		zap.String("stack", string(debug.Stack())))
}

// LogDeferredError runs fn and logs its error, if any. Intended for deferred
// Close-style calls whose errors would otherwise be dropped.
func LogDeferredError(fn func() error) {
	if err := fn(); err != nil {
		zap.L().Error("Deferred error",
			zap.Error(err),
			zap.String("stack", string(debug.Stack())))
	}
}
