package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/merojugx/mero/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth" yaml:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis" yaml:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Stripe    sharedConfig.StripeConfig    `mapstructure:"stripe" yaml:"stripe"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email" yaml:"email"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler" yaml:"scheduler"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
	Settings  sharedConfig.SettingsConfig  `mapstructure:"settings" yaml:"settings"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads .env (if present), the yaml config file and MERO_* environment
// variables, in increasing order of precedence. A missing config file is not
// an error; defaults apply.
func Load(env string, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("MERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Masked returns a copy of the configuration with secrets replaced, for display.
func (c *Config) Masked() Config {
	masked := *c
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "******"
	}
	masked.Database.Password = mask(c.Database.Password)
	masked.Auth.JWT.Secret = mask(c.Auth.JWT.Secret)
	masked.Redis.Password = mask(c.Redis.Password)
	masked.Stripe.SecretKey = mask(c.Stripe.SecretKey)
	masked.Email.SMTPPassword = mask(c.Email.SMTPPassword)
	return masked
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3001"})
	v.SetDefault("server.allowed_hosts", []string{"localhost", "127.0.0.1", "dev.merojugx.com", ".dev.merojugx.com"})

	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "mero_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 15)
	v.SetDefault("auth.jwt.refresh_exp_days", 7)
	v.SetDefault("auth.mfa.issuer", "Mero Jugx")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.limit", 20)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("stripe.secret_key", "")

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "no-reply@merojugx.com")
	v.SetDefault("email.from_name", "Mero Jugx")
	v.SetDefault("email.link_base_url", "http://localhost:3001")

	v.SetDefault("scheduler.session_cleanup_minutes", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("settings.cache_ttl_seconds", 300)
}
