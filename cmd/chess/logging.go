package main

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/config"
)

// newLogger builds the program logger. Debug level uses zap's development
// encoder, anything else the production JSON encoder.
func newLogger(cfg *config.LogConfig) (*zap.SugaredLogger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if lvl == zap.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{logPath(cfg.File)}
	zcfg.ErrorOutputPaths = []string{logPath(cfg.File)}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func logPath(file string) string {
	if file == "-" {
		return "stderr"
	}
	return file
}
