// Package logutil holds the process-wide zap logger of sortbench.
package logutil

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the global logger. Filename enables a
// rotated log file in addition to the console.
type LogConfig struct {
	Level           string `toml:"level"`
	Format          string `toml:"format"`
	Filename        string `toml:"filename"`
	MaxSize         int    `toml:"max-size"`
	MaxDays         int    `toml:"max-days"`
	MaxBackups      int    `toml:"max-backups"`
	StacktraceLevel string `toml:"stacktrace-level"`
}

// DefaultLogConfig logs at info level to the console.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:           zapcore.InfoLevel.String(),
		Format:          "console",
		MaxSize:         512,
		StacktraceLevel: zapcore.PanicLevel.String(),
	}
}

// ZapSink pairs an encoder with the syncer it writes to.
type ZapSink struct {
	enc zapcore.Encoder
	out zapcore.WriteSyncer
}

var globalLogger atomic.Pointer[zap.Logger]

func init() {
	globalLogger.Store(zap.NewNop())
}

// GetGlobalLogger returns the logger installed by SetupLogger, or a
// no-op logger.
func GetGlobalLogger() *zap.Logger {
	return globalLogger.Load()
}

// SetupLogger builds a logger from cfg and installs it globally.
func SetupLogger(cfg *LogConfig) error {
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	replaceGlobalLogger(logger)
	return nil
}

func replaceGlobalLogger(logger *zap.Logger) {
	globalLogger.Store(logger)
	zap.ReplaceGlobals(logger)
}

// Build returns a logger that writes to all sinks of cfg.
func (cfg *LogConfig) Build() (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	if cfg.Format != "" && cfg.Format != "console" && cfg.Format != "json" {
		return nil, fmt.Errorf("unsupported log format: %q", cfg.Format)
	}
	sinks := cfg.getSinks()
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	return zap.New(zapcore.NewTee(cores...), cfg.getOptions()...), nil
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	return zap.ParseAtomicLevel(cfg.Level)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	stacktrace := zap.NewAtomicLevelAt(zap.PanicLevel)
	if cfg.StacktraceLevel != "" {
		if l, err := zapcore.ParseLevel(cfg.StacktraceLevel); err == nil {
			stacktrace.SetLevel(l)
		}
	}
	return []zap.Option{zap.AddStacktrace(stacktrace), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return nil
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func (cfg *LogConfig) getSinks() []ZapSink {
	sinks := []ZapSink{{cfg.getEncoder(), getConsoleSyncer()}}
	if syncer := cfg.getSyncer(); syncer != nil {
		sinks = append(sinks, ZapSink{getLoggerEncoder("json"), syncer})
	}
	return sinks
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return consoleSyncer{zapcore.Lock(os.Stderr)}
}

// consoleSyncer ignores the errors that fsync reports for pipes and
// terminals. Any other Sync error is returned.
type consoleSyncer struct {
	zapcore.WriteSyncer
}

func (s consoleSyncer) Sync() error {
	err := s.WriteSyncer.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// Sync flushes the global logger.
func Sync() error {
	return GetGlobalLogger().Sync()
}
