// Package obs contains observability utilities such as logging.
package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the service logger. Production mode emits JSON at info
// level; development mode emits colored console output.
func NewLogger(isProd bool) (*zap.Logger, func() error) {
	var logger *zap.Logger
	if isProd {
		logger = zap.Must(zap.NewProduction())
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger = zap.Must(cfg.Build())
	}
	return logger, logger.Sync
}
