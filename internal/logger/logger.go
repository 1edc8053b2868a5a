// Package logger builds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

// Config returns the zap configuration for env. "prod" logs JSON at info
// level to stderr; anything else logs human-readable output at debug level.
func Config(env string) zap.Config {
	var encoderCfg zapcore.EncoderConfig
	if env == EnvProd {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if env == EnvProd {
		return zap.Config{
			Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
			Development:      false,
			Encoding:         "json",
			EncoderConfig:    encoderCfg,
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			InitialFields:    map[string]interface{}{"pid": os.Getpid()},
		}
	}
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"pid": os.Getpid()},
	}
}

// Setup builds the logger for env.
func Setup(env string) (*zap.Logger, error) {
	return Config(env).Build()
}

