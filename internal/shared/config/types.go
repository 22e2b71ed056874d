package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	Mode           string   `mapstructure:"mode" yaml:"mode"`
	BaseURL        string   `mapstructure:"base_url" yaml:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	// AllowedHosts accepts exact hosts ("localhost") and suffix rules (".dev.merojugx.com").
	AllowedHosts []string `mapstructure:"allowed_hosts" yaml:"allowed_hosts"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" yaml:"driver"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Username        string `mapstructure:"username" yaml:"username"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        string `mapstructure:"database" yaml:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// GetDSN returns the driver specific data source name. For sqlite the
// database field is used as the file path (":memory:" is allowed).
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret" yaml:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" yaml:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days" yaml:"refresh_exp_days"`
}

type MFAConfig struct {
	Issuer string `mapstructure:"issuer" yaml:"issuer"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password" yaml:"password"`
	JWT      JWTConfig      `mapstructure:"jwt" yaml:"jwt"`
	MFA      MFAConfig      `mapstructure:"mfa" yaml:"mfa"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	Limit         int  `mapstructure:"limit" yaml:"limit"`
	WindowSeconds int  `mapstructure:"window_seconds" yaml:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
}

// EmailConfig configures SMTP delivery. With an empty SMTPHost messages are
// only logged.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host" yaml:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port" yaml:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user" yaml:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password" yaml:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" yaml:"from_address"`
	FromName     string `mapstructure:"from_name" yaml:"from_name"`
	// LinkBaseURL is the web app origin that verification and reset links open.
	LinkBaseURL string `mapstructure:"link_base_url" yaml:"link_base_url"`
}

type SchedulerConfig struct {
	SessionCleanupMinutes int `mapstructure:"session_cleanup_minutes" yaml:"session_cleanup_minutes"`
}

func (s *SchedulerConfig) SessionCleanupInterval() time.Duration {
	return time.Duration(s.SessionCleanupMinutes) * time.Minute
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

type SettingsConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func (s *SettingsConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}
