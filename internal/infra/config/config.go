package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the ambient settings of the plot commands.
// Plot inputs, outputs and cosmetics are fixed per script and are not configurable.
type Config struct {
	App AppConfig `mapstructure:"app"`
	Log LogConfig `mapstructure:"log"`
}

type AppConfig struct {
	WorkDir string `mapstructure:"work_dir"` // directory holding the .dat inputs and receiving the images
}

type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// RegisterFlags adds the config flags to a command's flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("app.work_dir", ".", "Directory with input data files and output images (env: MOBY_WORK_DIR)")
	flags.String("log.dir", "logs", "Directory for app.log (env: MOBY_LOG_DIR)")
	flags.String("log.level", "info", "File log level: debug, info, warn, error (env: MOBY_LOG_LEVEL)")
}

// LoadConfig resolves settings in this order, later wins:
// 1. defaults
// 2. config.yaml in the current directory
// 3. .env file and environment
// 4. flags that were set explicitly
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.work_dir", ".")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("app.work_dir", "MOBY_WORK_DIR")
	v.BindEnv("log.dir", "MOBY_LOG_DIR")
	v.BindEnv("log.level", "MOBY_LOG_LEVEL")
}

func validateConfig(cfg *Config) error {
	if cfg.App.WorkDir == "" {
		return fmt.Errorf("app.work_dir must not be empty")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log.level %q: use debug, info, warn or error", cfg.Log.Level)
	}

	return nil
}
