// Package logger builds the zap logger used by the search-node
package logger

import (
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ProvideLogger(env string) (*zap.Logger, error) {
	switch env {
	case model.EnvProd:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.InfoLevel,
		)
		return zap.New(core), nil

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		return zapCfg.Build()
	}
}
