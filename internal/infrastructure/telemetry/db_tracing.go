package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bizos/backend/internal/infrastructure/config"
)

// RegisterDBTracing installs the otelgorm plugin so every query emits a
// child span of the request trace. Query variables are stripped from the
// recorded SQL.
func RegisterDBTracing(db *gorm.DB, cfg config.TelemetryConfig, dbName string, logger *zap.Logger) error {
	if !cfg.Enabled || !cfg.DBTraceEnabled {
		logger.Debug("database tracing disabled, skipping otelgorm registration")
		return nil
	}

	plugin := otelgorm.NewPlugin(
		otelgorm.WithDBName(dbName),
		otelgorm.WithoutQueryVariables(),
	)
	if err := db.Use(plugin); err != nil {
		return err
	}

	logger.Info("database tracing enabled", zap.String("db_name", dbName))
	return nil
}
