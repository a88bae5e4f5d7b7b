// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown runs app-specific cleanup before the process exits.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoClient != nil {
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Warn("error disconnecting from MongoDB", zap.Error(err))
			return err
		}
		logger.Info("disconnected from MongoDB")
	}
	return nil
}
