package logger

import (
	"go-auth/internal/config"
	"go-auth/internal/database"

	"go.uber.org/zap"
)

// NewLogger builds the application logger: a console core teed with an
// async writer that persists entries into the bound database's logs
// collection.
func NewLogger(cfg *config.Config, store *database.Store) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller so entries carry the function name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	writer := NewStoreLogWriter(store, cfg)
	core := NewStoreCore(baseLogger.Core(), writer)

	return zap.New(core, zap.AddCaller()), nil
}
