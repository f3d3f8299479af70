// Package config loads the settings shared by all kata programs.
//
// Values are resolved in this order, later sources winning: built-in defaults, an optional YAML file
// (katas.yml in the working directory unless another file is given), and environment variables prefixed with
// KATAS_, for example KATAS_LOG_LEVEL or KATAS_PARALLEL_WORKERS. Variables may also be placed in an optional
// .env file; they never override variables already set in the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/deadlyengineer/functional-streams-with-go/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "KATAS"

// Default file locations, relative to the working directory.
const (
	DefaultConfigFile = "katas.yml"
	DefaultEnvFile    = ".env"
)

// Config holds the settings of a kata program.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Parallel ParallelConfig `mapstructure:"parallel"`
}

// ParallelConfig configures the katas that process elements concurrently.
type ParallelConfig struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path. Unlike the default file, an explicit file must exist.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load resolves and validates the configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	lc := LoaderConfig{}
	for _, opt := range opts {
		opt(&lc)
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if exists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := lc.ConfigFile
	if configFile == "" && exists(DefaultConfigFile) {
		configFile = DefaultConfigFile
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.no_color", false)
	v.SetDefault("parallel.workers", 4)
}

func validate(cfg *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
