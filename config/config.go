package config

import (
	"errors"
	"fmt"
	"strings"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"

	"github.com/krazyTry/pumpcurve-go/curve/fee"
	"github.com/krazyTry/pumpcurve-go/curve/shared"
	"github.com/krazyTry/pumpcurve-go/logger"
)

type Config struct {
	ProgramID   string `mapstructure:"program_id"`
	FeeRateBps  uint64 `mapstructure:"fee_rate_bps"`
	FeeScale    uint64 `mapstructure:"fee_scale"`
	SlippageBps uint64 `mapstructure:"slippage_bps"`
	Workers     int    `mapstructure:"workers"`
	LogLevel    string `mapstructure:"log_level"`
	LogJSON     bool   `mapstructure:"log_json"`
	Development bool   `mapstructure:"development"`
}

const (
	EnvPrefix = "PUMPCURVE"

	DefaultFeeRateBps  = 100
	DefaultFeeScale    = shared.FullScale
	DefaultSlippageBps = 100
	DefaultWorkers     = 4
	DefaultLogLevel    = "info"
)

// LoadConfig reads path (any format viper understands) over the defaults, then
// applies PUMPCURVE_* environment overrides. An empty path uses defaults and
// the environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"program_id":   "",
		"fee_rate_bps": DefaultFeeRateBps,
		"fee_scale":    DefaultFeeScale,
		"slippage_bps": DefaultSlippageBps,
		"workers":      DefaultWorkers,
		"log_level":    DefaultLogLevel,
		"log_json":     false,
		"development":  false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := cfg.FeeSchedule().Validate(); err != nil {
		return err
	}
	if cfg.FeeRateBps == cfg.FeeScale {
		return fmt.Errorf("fee_rate_bps must be below fee_scale: %w", shared.ErrInvalidFeeRate)
	}
	if cfg.SlippageBps > shared.MaxBasisPoint {
		return fmt.Errorf("slippage_bps %d: %w", cfg.SlippageBps, shared.ErrInvalidSlippage)
	}
	if cfg.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if cfg.ProgramID != "" {
		if _, err := solanago.PublicKeyFromBase58(cfg.ProgramID); err != nil {
			return fmt.Errorf("invalid program_id: %w", err)
		}
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

func (c *Config) FeeSchedule() fee.Schedule {
	return fee.Schedule{Rate: c.FeeRateBps, Scale: c.FeeScale}
}

// ProgramKey returns the configured program id, or the zero key when unset.
func (c *Config) ProgramKey() solanago.PublicKey {
	if c.ProgramID == "" {
		return solanago.PublicKey{}
	}
	return solanago.MustPublicKeyFromBase58(c.ProgramID)
}

func (c *Config) Logger() *logger.Config {
	return &logger.Config{Level: c.LogLevel, Development: c.Development, JSON: c.LogJSON}
}
