package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Shipping ShippingConfig
	Mail     MailConfig
	Log      LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// StorageConfig holds the durable cart snapshot settings
type StorageConfig struct {
	Path string // SQLite database file, ":memory:" for ephemeral carts
	Key  string // namespaced snapshot key
}

// ShippingConfig holds the shipping rule settings
type ShippingConfig struct {
	InteriorFee string // decimal amount in GTQ charged outside the free zones
}

// MailConfig holds the mail-delivery collaborator settings
type MailConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string // fixed seller recipient
	ToName     string
	FromName   string
	Timeout    time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_MAIL_TO_EMAIL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Storage: StorageConfig{
			Path: v.GetString("storage.path"),
			Key:  v.GetString("storage.key"),
		},
		Shipping: ShippingConfig{
			InteriorFee: v.GetString("shipping.interior_fee"),
		},
		Mail: MailConfig{
			BaseURL:    v.GetString("mail.base_url"),
			ServiceID:  v.GetString("mail.service_id"),
			TemplateID: v.GetString("mail.template_id"),
			PublicKey:  v.GetString("mail.public_key"),
			ToEmail:    v.GetString("mail.to_email"),
			ToName:     v.GetString("mail.to_name"),
			FromName:   v.GetString("mail.from_name"),
			Timeout:    v.GetDuration("mail.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "kitchcrafter-storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "storefront.db"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "kitchcrafter.cart"
	}
	if cfg.Shipping.InteriorFee == "" {
		cfg.Shipping.InteriorFee = "30.00"
	}
	if cfg.Mail.BaseURL == "" {
		cfg.Mail.BaseURL = "https://api.emailjs.com"
	}
	if cfg.Mail.ServiceID == "" {
		cfg.Mail.ServiceID = "service_ikudrk5"
	}
	if cfg.Mail.TemplateID == "" {
		cfg.Mail.TemplateID = "template_fmbvd15"
	}
	if cfg.Mail.ToName == "" {
		cfg.Mail.ToName = "KITCH-CRAFTER Ventas"
	}
	if cfg.Mail.FromName == "" {
		cfg.Mail.FromName = "Sistema de Órdenes KITCH-CRAFTER"
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 15 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	fee, err := decimal.NewFromString(c.Shipping.InteriorFee)
	if err != nil {
		return fmt.Errorf("shipping.interior_fee is not a valid decimal: %w", err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("shipping.interior_fee cannot be negative")
	}

	if c.Mail.Timeout < 0 {
		return fmt.Errorf("mail.timeout cannot be negative")
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Mail.ToEmail == "" {
			return fmt.Errorf("mail.to_email is required in production (orders would have no recipient)")
		}
		if c.Mail.PublicKey == "" {
			return fmt.Errorf("mail.public_key is required in production")
		}
	}

	return nil
}

// InteriorFeeDecimal returns the configured interior shipping fee as a
// decimal. Call only after Load has validated the configuration.
func (c *ShippingConfig) InteriorFeeDecimal() decimal.Decimal {
	fee, _ := decimal.NewFromString(c.InteriorFee)
	return fee
}
