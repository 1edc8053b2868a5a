package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestConfig_ByEnvironment(t *testing.T) {
	prod := Config(EnvProd)
	if prod.Encoding != "json" || prod.Development {
		t.Fatalf("unexpected prod config: %+v", prod)
	}
	if prod.Level.Level() != zap.InfoLevel {
		t.Fatalf("expected info level, got %s", prod.Level.Level())
	}

	dev := Config("anything")
	if dev.Encoding != "console" || !dev.Development {
		t.Fatalf("unexpected dev config: %+v", dev)
	}
	if dev.Level.Level() != zap.DebugLevel {
		t.Fatalf("expected debug level, got %s", dev.Level.Level())
	}

	for _, cfg := range []zap.Config{prod, dev} {
		if cfg.EncoderConfig.TimeKey != "timestamp" {
			t.Fatalf("unexpected time key %q", cfg.EncoderConfig.TimeKey)
		}
		if _, ok := cfg.InitialFields["pid"]; !ok {
			t.Fatalf("expected pid initial field")
		}
	}
}

func TestSetup_Builds(t *testing.T) {
	log, err := Setup(EnvProd)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.Info("logger ready")
}
