// Package logging builds the zap logger shared by the server and CLI, and a
// Telemetry implementation that records editor events as log entries.
package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction.
type Config struct {
	Level       string   `yaml:"level" env:"SITECONTENT_LOG_LEVEL"`
	Development bool     `yaml:"development" env:"SITECONTENT_LOG_DEVELOPMENT"`
	OutputPaths []string `yaml:"output_paths" env:"SITECONTENT_LOG_OUTPUTS"`
}

// New builds a JSON production logger with ISO8601 timestamps.
func New(cfg Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}
	if cfg.Development {
		zapCfg.Sampling = nil
	}
	logger, err := zapCfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name to zapcore.Level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Telemetry records events as structured log entries at Level.
type Telemetry struct {
	Logger *zap.Logger
	Level  zapcore.Level
}

// NewTelemetry logs events through logger at debug level.
func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{Logger: logger, Level: zapcore.DebugLevel}
}

// Record implements the Telemetry interfaces of the core and command packages.
func (t *Telemetry) Record(_ context.Context, event string, payload map[string]any) {
	if t == nil || t.Logger == nil {
		return
	}
	fields := make([]zap.Field, 0, len(payload)+1)
	fields = append(fields, zap.String("event", event))
	for key, value := range payload {
		fields = append(fields, zap.Any(key, value))
	}
	if ce := t.Logger.Check(t.Level, "telemetry"); ce != nil {
		ce.Write(fields...)
	}
}
