package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Exports  ExportConfig   `yaml:"exports"`
	Platform PlatformConfig `yaml:"platform"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

// PlatformConfig carries the reporting constants. The commission rate
// is a flat platform-wide estimate, not a weighted average of the
// per-provider rates stored on each provider record.
type PlatformConfig struct {
	CommissionRate   float64 `yaml:"commission_rate"`
	OperatingExpense int64   `yaml:"operating_expense"`
}

func Load(configPath string) (*Config, error) {
	// .env переопределяет окружение, если файл существует
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return errors.New("redis address is required when redis is enabled")
	}

	if c.Platform.CommissionRate < 0 || c.Platform.CommissionRate > 100 {
		return fmt.Errorf("platform commission rate %v out of range", c.Platform.CommissionRate)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "caterbook"
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Platform.CommissionRate == 0 {
		c.Platform.CommissionRate = 10
	}
	if c.Platform.OperatingExpense == 0 {
		c.Platform.OperatingExpense = 50000
	}
}
