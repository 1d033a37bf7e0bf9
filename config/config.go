package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is constructed once in main
// and passed by reference into each component — no package-level state.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Collaborators
	GitHub       GitHubConfig
	BuildService BuildServiceConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

// GitHubConfig holds the GitHub App / OAuth settings.
type GitHubConfig struct {
	APIBaseURL        string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
	Token             string // server-to-server API token
}

// BuildServiceConfig holds the managed build service settings.
type BuildServiceConfig struct {
	BaseURL string
	Token   string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// GitHub
	cfg.GitHub.APIBaseURL = viper.GetString("github.api_base_url")
	cfg.GitHub.OAuthClientID = viper.GetString("github.oauth_client_id")
	cfg.GitHub.OAuthClientSecret = viper.GetString("github.oauth_client_secret")
	cfg.GitHub.OAuthRedirectURL = viper.GetString("github.oauth_redirect_url")
	cfg.GitHub.Token = viper.GetString("github.token")
	if ghToken := viper.GetString("github_token"); ghToken != "" {
		cfg.GitHub.Token = ghToken
	}
	if ghClientID := viper.GetString("github_client_id"); ghClientID != "" {
		cfg.GitHub.OAuthClientID = ghClientID
	}
	if ghClientSecret := viper.GetString("github_client_secret"); ghClientSecret != "" {
		cfg.GitHub.OAuthClientSecret = ghClientSecret
	}

	// Build service
	cfg.BuildService.BaseURL = viper.GetString("build_service.base_url")
	cfg.BuildService.Token = viper.GetString("build_service.token")
	if bsToken := viper.GetString("build_service_token"); bsToken != "" {
		cfg.BuildService.Token = bsToken
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	if whSecret := viper.GetString("github_webhook_secret"); whSecret != "" {
		cfg.Webhook.Secret = whSecret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("github.api_base_url", "https://api.github.com")

	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 120)
}
