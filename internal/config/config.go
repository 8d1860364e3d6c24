package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCategories are seeded into an empty store at startup.
var DefaultCategories = []string{
	"Housing",
	"Utilities",
	"Food",
	"Transportation",
	"Healthcare",
	"Insurance",
	"Entertainment/Recreation",
	"Savings/Investments",
	"Miscellaneous",
}

type Config struct {
	Port              string
	DatabasePath      string
	LogLevel          string
	StaticDir         string
	OperatorWorkers   int
	OperatorQueueSize int
	DefaultCategories []string
}

const (
	keyPort              = "port"
	keyDatabasePath      = "database_path"
	keyLogLevel          = "log_level"
	keyStaticDir         = "static_dir"
	keyOperatorWorkers   = "operator_workers"
	keyOperatorQueueSize = "operator_queue_size"
	keyDefaultCategories = "default_categories"
)

// ProcessEnvironmentVariables resolves the configuration from (in order of
// precedence) explicit viper values such as bound flags, the environment,
// a .env file in the working directory, an optional config file and the
// built-in defaults.
func ProcessEnvironmentVariables(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be a local single-file setup
	v.SetDefault(keyPort, "3000")
	v.SetDefault(keyDatabasePath, "database.db")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyStaticDir, "public")
	v.SetDefault(keyOperatorWorkers, 1)
	v.SetDefault(keyOperatorQueueSize, 1000)
	v.SetDefault(keyDefaultCategories, strings.Join(DefaultCategories, ","))

	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	env := Config{
		Port:              v.GetString(keyPort),
		DatabasePath:      v.GetString(keyDatabasePath),
		LogLevel:          v.GetString(keyLogLevel),
		StaticDir:         v.GetString(keyStaticDir),
		OperatorWorkers:   v.GetInt(keyOperatorWorkers),
		OperatorQueueSize: v.GetInt(keyOperatorQueueSize),
		DefaultCategories: splitList(v.GetString(keyDefaultCategories)),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DatabasePath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.OperatorQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator queue size %d: must be at least 1", c.OperatorQueueSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
