package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	GST    GSTConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GSTConfig holds the seller-side GST settings. HomeStateCode is the 2-digit
// state code of the store itself; every jurisdiction decision compares the
// counterparty's state code against it.
type GSTConfig struct {
	HomeStateCode  string `mapstructure:"home_state_code"`
	InvoicePrefix  string `mapstructure:"invoice_prefix"`
	PurchasePrefix string `mapstructure:"purchase_prefix"`
}

// Load reads configuration from environment variables with the MEDSTORE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDSTORE")
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
	v.SetDefault("db.user", "medstore")
	v.SetDefault("db.password", "medstore_secret")
	v.SetDefault("db.name", "medstore_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "medstore")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// GST defaults: Maharashtra seller, INV-/PUR- numbering
	v.SetDefault("gst.home_state_code", "27")
	v.SetDefault("gst.invoice_prefix", "INV-")
	v.SetDefault("gst.purchase_prefix", "PUR-")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "MEDSTORE_SERVER_PORT",
		"server.read_timeout":  "MEDSTORE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "MEDSTORE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "MEDSTORE_SERVER_ENVIRONMENT",
		"db.host":              "MEDSTORE_DB_HOST",
		"db.port":              "MEDSTORE_DB_PORT",
		"db.user":              "MEDSTORE_DB_USER",
		"db.password":          "MEDSTORE_DB_PASSWORD",
		"db.name":              "MEDSTORE_DB_NAME",
		"db.sslmode":           "MEDSTORE_DB_SSLMODE",
		"db.max_open":          "MEDSTORE_DB_MAX_OPEN",
		"db.max_idle":          "MEDSTORE_DB_MAX_IDLE",
		"jwt.secret":           "MEDSTORE_JWT_SECRET",
		"jwt.access_expiry":    "MEDSTORE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "MEDSTORE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "MEDSTORE_JWT_ISSUER",
		"log.level":            "MEDSTORE_LOG_LEVEL",
		"log.format":           "MEDSTORE_LOG_FORMAT",
		"cors.allowed_origins": "MEDSTORE_CORS_ALLOWED_ORIGINS",
		"gst.home_state_code":  "MEDSTORE_GST_HOME_STATE_CODE",
		"gst.invoice_prefix":   "MEDSTORE_GST_INVOICE_PREFIX",
		"gst.purchase_prefix":  "MEDSTORE_GST_PURCHASE_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MEDSTORE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MEDSTORE_SERVER_PORT") == "" {
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
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.GST = GSTConfig{
		HomeStateCode:  v.GetString("gst.home_state_code"),
		InvoicePrefix:  v.GetString("gst.invoice_prefix"),
		PurchasePrefix: v.GetString("gst.purchase_prefix"),
	}

	return cfg, nil
}
