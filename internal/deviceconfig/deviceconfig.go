// Package deviceconfig loads the demo device's tunables from a layered
// configuration source: defaults, then an optional YAML file, then
// HSMCTL_* environment variables, each overriding the last.
package deviceconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the demo device's tunables.
type Config struct {
	QueueCapacity   int           `mapstructure:"queue_capacity" yaml:"queue_capacity"`
	ShortPressMaxMs uint32        `mapstructure:"short_press_max_ms" yaml:"short_press_max_ms"`
	PatternTimeout  time.Duration `mapstructure:"pattern_timeout" yaml:"pattern_timeout"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
}

func defaults() Config {
	return Config{
		QueueCapacity:   16,
		ShortPressMaxMs: 400,
		PatternTimeout:  2 * time.Second,
		LogLevel:        "INFO",
	}
}

// Load reads Config from defaults, then path if non-empty and present,
// then HSMCTL_* environment variables (e.g. HSMCTL_LOG_LEVEL=DEBUG).
// A missing path is not an error: the demo runs fine on defaults alone.
func Load(path string) (Config, error) {
	v := viper.New()

	d := defaults()
	v.SetDefault("queue_capacity", d.QueueCapacity)
	v.SetDefault("short_press_max_ms", d.ShortPressMaxMs)
	v.SetDefault("pattern_timeout", d.PatternTimeout)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix("HSMCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("deviceconfig: reading %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("deviceconfig: unmarshal: %w", err)
	}
	return cfg, nil
}
