package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider names accepted for provider.active.
const (
	ProviderBarcodeLookup = "barcodelookup"
	ProviderUPCItemDB     = "upcitemdb"
	ProviderUPCDatabase   = "upcdatabase"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Upstream UpstreamConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig selects and configures the product-lookup providers
type ProviderConfig struct {
	Active        string              `mapstructure:"active"`
	BarcodeLookup BarcodeLookupConfig `mapstructure:"barcodelookup"`
	UPCItemDB     UPCItemDBConfig     `mapstructure:"upcitemdb"`
	UPCDatabase   UPCDatabaseConfig   `mapstructure:"upcdatabase"`
}

// BarcodeLookupConfig holds BarcodeLookup.com API configuration. UseProxy
// switches the client-side adapter to the proxy relay so the key stays off
// the client.
type BarcodeLookupConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	UseProxy bool   `mapstructure:"use_proxy"`
	ProxyURL string `mapstructure:"proxy_url"`
}

// UPCItemDBConfig holds UPC Item DB configuration
type UPCItemDBConfig struct {
	TrialEndpoint string `mapstructure:"trial_endpoint"`
	PaidEndpoint  string `mapstructure:"paid_endpoint"`
	UsePaidPlan   bool   `mapstructure:"use_paid_plan"`
	APIKey        string `mapstructure:"api_key"`
	KeyType       string `mapstructure:"key_type"`
}

// UPCDatabaseConfig holds UPCDatabase.org configuration. The default API key
// is the provider's shared limited-access key, a configuration default rather
// than a secret.
type UPCDatabaseConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	UseRelay bool   `mapstructure:"use_relay"`
	RelayURL string `mapstructure:"relay_url"`
}

// UpstreamConfig bounds calls to upstream providers
type UpstreamConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/scanlens/")

	// Environment variable settings
	v.SetEnvPrefix("SCANLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Provider defaults
	v.SetDefault("provider.active", ProviderBarcodeLookup)
	v.SetDefault("provider.barcodelookup.api_key", "")
	v.SetDefault("provider.barcodelookup.base_url", "https://api.barcodelookup.com/v3/products")
	v.SetDefault("provider.barcodelookup.use_proxy", false)
	v.SetDefault("provider.barcodelookup.proxy_url", "http://localhost:3000/api")
	v.SetDefault("provider.upcitemdb.trial_endpoint", "https://api.upcitemdb.com/prod/trial/lookup")
	v.SetDefault("provider.upcitemdb.paid_endpoint", "https://api.upcitemdb.com/prod/v1/lookup")
	v.SetDefault("provider.upcitemdb.use_paid_plan", false)
	v.SetDefault("provider.upcitemdb.api_key", "")
	v.SetDefault("provider.upcitemdb.key_type", "3scale")
	v.SetDefault("provider.upcdatabase.endpoint", "https://api.upcdatabase.org/product")
	v.SetDefault("provider.upcdatabase.api_key", "C0D1F5CEBE1CC47A17C986642FEF7B53")
	v.SetDefault("provider.upcdatabase.use_relay", true)
	v.SetDefault("provider.upcdatabase.relay_url", "https://api.allorigins.win/raw?url=")

	// Upstream defaults
	v.SetDefault("upstream.timeout", "10s")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Provider.Active {
	case ProviderBarcodeLookup, ProviderUPCItemDB, ProviderUPCDatabase:
	default:
		return fmt.Errorf("provider must be one of %s, %s, %s, got: %s",
			ProviderBarcodeLookup, ProviderUPCItemDB, ProviderUPCDatabase, config.Provider.Active)
	}

	// The proxy server calls upstream directly, so it needs the key; only the
	// proxied client-side adapter may run without one.
	if config.Provider.Active == ProviderBarcodeLookup &&
		!config.Provider.BarcodeLookup.UseProxy &&
		config.Provider.BarcodeLookup.APIKey == "" {
		return fmt.Errorf("BarcodeLookup API key is required (set SCANLENS_PROVIDER_BARCODELOOKUP_API_KEY)")
	}

	if config.Provider.UPCItemDB.UsePaidPlan && config.Provider.UPCItemDB.APIKey == "" {
		return fmt.Errorf("UPC Item DB API key is required for the paid plan")
	}

	if config.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got: %s", config.Upstream.Timeout)
	}

	return nil
}
