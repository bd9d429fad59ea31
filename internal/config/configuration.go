package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Contact details shown in the footer
	Contact Contact `mapstructure:",squash"`

	// Visitor state
	VisitorIdleTimeout time.Duration `mapstructure:"VISITOR_IDLE_TIMEOUT" validate:"min=1m"`
	MaxVisitors        int           `mapstructure:"MAX_VISITORS" validate:"min=1"`
}

type Contact struct {
	SupportPhone   string `mapstructure:"SUPPORT_PHONE" validate:"required"`
	SupportEmail   string `mapstructure:"SUPPORT_EMAIL" validate:"required,email"`
	WhatsAppNumber string `mapstructure:"WHATSAPP_NUMBER" validate:"required,numeric"`
}

// LogValue keeps the session secret out of the logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.Bool("session_secret_set", c.SessionSecret != ""),
		slog.String("support_phone", c.Contact.SupportPhone),
		slog.String("support_email", c.Contact.SupportEmail),
		slog.String("whatsapp_number", c.Contact.WhatsAppNumber),
		slog.Duration("visitor_idle_timeout", c.VisitorIdleTimeout),
		slog.Int("max_visitors", c.MaxVisitors),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		squash := strings.HasPrefix(tag, ",")

		if tag != "" && !squash {
			viper.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && (tag == "" || squash) {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					viper.BindEnv(nestedTag)
				}
			}
		}
	}
	slog.Info("Environment variables bound")
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("SUPPORT_PHONE", "+233 55 944 1309")
	viper.SetDefault("SUPPORT_EMAIL", "support@checkershub.com")
	viper.SetDefault("WHATSAPP_NUMBER", "233559441309")
	viper.SetDefault("VISITOR_IDLE_TIMEOUT", "30m")
	viper.SetDefault("MAX_VISITORS", 10000)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Info("Loaded configuration", "config", cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
