package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Krimson/fluid-balance/internal/balance"
)

// Config содержит все настройки приложения
type Config struct {
	// Server settings
	HTTPPort        string        `yaml:"http_port"`
	GRPCPort        string        `yaml:"grpc_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Redis settings (пустой адрес - хранение сессий формы в памяти)
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Session settings
	SessionTTL time.Duration `yaml:"session_ttl"`

	// Calculator policies
	JudgmentPolicy  string `yaml:"judgment_policy"`
	MetabolicPolicy string `yaml:"metabolic_policy"`

	// Report settings
	ReportFontPath   string `yaml:"report_font_path"`
	ReportFontFamily string `yaml:"report_font_family"`

	LogDebug bool `yaml:"log_debug"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		HTTPPort:         "8080",
		GRPCPort:         "50061",
		ShutdownTimeout:  30 * time.Second,
		RedisDB:          0,
		SessionTTL:       24 * time.Hour,
		JudgmentPolicy:   string(balance.PolicyFourBand),
		MetabolicPolicy:  string(balance.MetabolicPolicyWeight),
		ReportFontFamily: "ReportFont",
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем YAML из CONFIG_FILE
// (если задан), затем переменные окружения
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	c.HTTPPort = getEnvString("HTTP_PORT", c.HTTPPort)
	c.GRPCPort = getEnvString("GRPC_PORT", c.GRPCPort)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.RedisAddr = getEnvString("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnvString("REDIS_PASSWORD", c.RedisPassword)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)

	c.SessionTTL = getEnvDuration("SESSION_TTL", c.SessionTTL)

	c.JudgmentPolicy = getEnvString("JUDGMENT_POLICY", c.JudgmentPolicy)
	c.MetabolicPolicy = getEnvString("METABOLIC_POLICY", c.MetabolicPolicy)

	c.ReportFontPath = getEnvString("REPORT_FONT_PATH", c.ReportFontPath)
	c.ReportFontFamily = getEnvString("REPORT_FONT_FAMILY", c.ReportFontFamily)

	c.LogDebug = getEnvBool("LOG_DEBUG", c.LogDebug)
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if _, err := balance.ParseJudgmentPolicy(c.JudgmentPolicy); err != nil {
		return err
	}
	if _, err := balance.ParseMetabolicPolicy(c.MetabolicPolicy); err != nil {
		return err
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %v", c.SessionTTL)
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("http port is required")
	}
	return nil
}

// CalculatorOptions политики калькулятора из конфигурации
func (c *Config) CalculatorOptions() balance.Options {
	return balance.Options{
		JudgmentPolicy:  balance.JudgmentPolicy(c.JudgmentPolicy),
		MetabolicPolicy: balance.MetabolicPolicy(c.MetabolicPolicy),
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
