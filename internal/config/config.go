package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Rules  RulesConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds service token signing settings.
type JWTConfig struct {
	Secret   string        `mapstructure:"secret"`
	Issuer   string        `mapstructure:"issuer"`
	Audience string        `mapstructure:"audience"`
	Expiry   time.Duration `mapstructure:"expiry"`
}

// S3Config holds AWS S3 settings for published client script assets.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// LogConfig holds logging settings. File enables a rotating log file next to
// stdout.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// RulesConfig holds naming and validation rule settings.
type RulesConfig struct {
	HomeCountry          string            `mapstructure:"home_country"`
	LocationCodeFallback string            `mapstructure:"location_code_fallback"`
	FiscalCodeFallback   string            `mapstructure:"fiscal_code_fallback"`
	NamingTemplates      map[string]string `mapstructure:"naming_templates"`
}

// Load reads configuration from environment variables with the LBS_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: reading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LBS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "lbseries")
	v.SetDefault("db.password", "lbseries_secret")
	v.SetDefault("db.name", "lbseries_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "lbseries")
	v.SetDefault("jwt.audience", "lbseries-hooks")
	v.SetDefault("jwt.expiry", "8760h")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "lbseries-assets")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "client-scripts")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("cors.allowed_origins", "http://localhost:8000,http://127.0.0.1:8000")

	// Rules defaults
	v.SetDefault("rules.home_country", "India")
	v.SetDefault("rules.location_code_fallback", "0000")
	v.SetDefault("rules.fiscal_code_fallback", "00")
	v.SetDefault("rules.naming_templates", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "LBS_SERVER_PORT",
		"server.read_timeout":          "LBS_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "LBS_SERVER_WRITE_TIMEOUT",
		"server.environment":           "LBS_SERVER_ENVIRONMENT",
		"db.host":                      "LBS_DB_HOST",
		"db.port":                      "LBS_DB_PORT",
		"db.user":                      "LBS_DB_USER",
		"db.password":                  "LBS_DB_PASSWORD",
		"db.name":                      "LBS_DB_NAME",
		"db.sslmode":                   "LBS_DB_SSLMODE",
		"db.max_open":                  "LBS_DB_MAX_OPEN",
		"db.max_idle":                  "LBS_DB_MAX_IDLE",
		"jwt.secret":                   "LBS_JWT_SECRET",
		"jwt.issuer":                   "LBS_JWT_ISSUER",
		"jwt.audience":                 "LBS_JWT_AUDIENCE",
		"jwt.expiry":                   "LBS_JWT_EXPIRY",
		"s3.region":                    "LBS_S3_REGION",
		"s3.bucket":                    "LBS_S3_BUCKET",
		"s3.endpoint":                  "LBS_S3_ENDPOINT",
		"s3.access_key":                "LBS_S3_ACCESS_KEY",
		"s3.secret_key":                "LBS_S3_SECRET_KEY",
		"s3.prefix":                    "LBS_S3_PREFIX",
		"log.level":                    "LBS_LOG_LEVEL",
		"log.format":                   "LBS_LOG_FORMAT",
		"log.file":                     "LBS_LOG_FILE",
		"log.max_size_mb":              "LBS_LOG_MAX_SIZE_MB",
		"log.max_backups":              "LBS_LOG_MAX_BACKUPS",
		"log.max_age_days":             "LBS_LOG_MAX_AGE_DAYS",
		"cors.allowed_origins":         "LBS_CORS_ALLOWED_ORIGINS",
		"rules.home_country":           "LBS_RULES_HOME_COUNTRY",
		"rules.location_code_fallback": "LBS_RULES_LOCATION_CODE_FALLBACK",
		"rules.fiscal_code_fallback":   "LBS_RULES_FISCAL_CODE_FALLBACK",
		"rules.naming_templates":       "LBS_RULES_NAMING_TEMPLATES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if LBS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LBS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:   v.GetString("jwt.secret"),
		Issuer:   v.GetString("jwt.issuer"),
		Audience: v.GetString("jwt.audience"),
		Expiry:   v.GetDuration("jwt.expiry"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Prefix:    strings.Trim(v.GetString("s3.prefix"), "/"),
	}
	cfg.Log = LogConfig{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age_days"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	templates, err := ParseTemplates(v.GetString("rules.naming_templates"))
	if err != nil {
		return nil, err
	}
	cfg.Rules = RulesConfig{
		HomeCountry:          v.GetString("rules.home_country"),
		LocationCodeFallback: v.GetString("rules.location_code_fallback"),
		FiscalCodeFallback:   v.GetString("rules.fiscal_code_fallback"),
		NamingTemplates:      templates,
	}

	return cfg, nil
}

// ParseTemplates reads naming template overrides written as
// "Sales Invoice=SI.{location_code}.FY.-.####;Sales Order=...".
func ParseTemplates(raw string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		doctype, tmpl, ok := strings.Cut(pair, "=")
		doctype, tmpl = strings.TrimSpace(doctype), strings.TrimSpace(tmpl)
		if !ok || doctype == "" || tmpl == "" {
			return nil, fmt.Errorf("config.ParseTemplates: malformed entry %q", pair)
		}
		out[doctype] = tmpl
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
