package arbor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunConfig configures the window and loop opened by Run.
type RunConfig struct {
	Title   string        `toml:"title"`
	Width   int           `toml:"width"`
	Height  int           `toml:"height"`
	TPS     int           `toml:"tps"` // ticks per second; dt = 1/TPS
	ShowFPS bool          `toml:"show_fps"`
	Debug   bool          `toml:"debug"`
	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultRunConfig returns the values used for fields a config file omits.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "arbor",
		Width:  640,
		Height: 480,
		TPS:    60,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadRunConfig reads a TOML file on top of DefaultRunConfig.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TPS <= 0 {
		return cfg, fmt.Errorf("parse config %s: tps must be positive, got %d", path, cfg.TPS)
	}
	return cfg, nil
}

// NewLogger builds a zap logger from cfg. An unknown level falls back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
