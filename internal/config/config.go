package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zuper-events/zuper-api/internal/pkg/mailer"
	"github.com/zuper-events/zuper-api/internal/pkg/mediastore"
)

type AppConfig struct {
	API        *APIConfig         `mapstructure:"api"`
	Gin        *GinConfig         `mapstructure:"gin"`
	Postgres   *PostgresConfig    `mapstructure:"postgres"`
	Razorpay   *RazorpayConfig    `mapstructure:"razorpay"`
	SMTP       *mailer.SMTPConfig `mapstructure:"smtp"`
	Cloudinary *mediastore.Config `mapstructure:"cloudinary"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	FrontendURL        string   `mapstructure:"frontend_url"`
	UploadDir          string   `mapstructure:"upload_dir"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

// Load reads the YAML config at path. Every key can be overridden with an
// environment variable, e.g. RAZORPAY_KEY_SECRET for razorpay.key_secret,
// so secrets stay out of the file.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	return conf, nil
}
