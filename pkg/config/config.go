package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// StaticConfig represents the static configuration for the Nautobot MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `yaml:"port" mapstructure:"port"`
	SSEBaseURL string `yaml:"sse_base_url" mapstructure:"sse_base_url"`

	// Logging configuration
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	LogJSON  bool   `yaml:"log_json" mapstructure:"log_json"`

	// Nautobot configuration
	NautobotURL   string `yaml:"nautobot_url" mapstructure:"nautobot_url"`
	NautobotToken string `yaml:"nautobot_token" mapstructure:"nautobot_token"`
	VerifySSL     bool   `yaml:"verify_ssl" mapstructure:"verify_ssl"`
	// Timeout bounds each request attempt, in seconds.
	Timeout int `yaml:"timeout" mapstructure:"timeout"`
	// RateLimit is the outbound ceiling in requests per minute.
	RateLimit int `yaml:"rate_limit" mapstructure:"rate_limit"`

	// Security configuration
	ReadOnly bool `yaml:"read_only" mapstructure:"read_only"`

	// Output configuration
	ListOutput string `yaml:"list_output" mapstructure:"list_output"`

	// Toolset configuration
	Toolsets      []string `yaml:"toolsets" mapstructure:"toolsets"`
	EnabledTools  []string `yaml:"enabled_tools" mapstructure:"enabled_tools"`
	DisabledTools []string `yaml:"disabled_tools" mapstructure:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:       0, // 0 means stdio mode
		LogLevel:   "info",
		LogJSON:    false,
		VerifySSL:  true,
		Timeout:    30,
		RateLimit:  100,
		ListOutput: "json",
		Toolsets:   []string{"ipam"},
		ReadOnly:   false,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("verify_ssl", true)
	v.SetDefault("timeout", 30)
	v.SetDefault("rate_limit", 100)
	v.SetDefault("list_output", "json")
	v.SetDefault("toolsets", []string{"ipam"})
	v.SetDefault("read_only", false)
}

// bindEnv wires the environment variables the service honors. Explicit names
// keep NAUTOBOT_URL spelled the way operators already export it.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("nautobot_url", "NAUTOBOT_URL")
	_ = v.BindEnv("nautobot_token", "NAUTOBOT_TOKEN")
	_ = v.BindEnv("verify_ssl", "NAUTOBOT_VERIFY_SSL")
	_ = v.BindEnv("timeout", "NAUTOBOT_TIMEOUT")
	_ = v.BindEnv("rate_limit", "NAUTOBOT_RATE_LIMIT")
	_ = v.BindEnv("log_level", "NAUTOBOT_LOG_LEVEL")
}

// Validate validates the configuration
func (c *StaticConfig) Validate() error {
	// Validate port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	// Validate log level
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("log_level must be a zerolog level name (trace, debug, info, warn, error), got %s", c.LogLevel)
		}
	}

	// Validate list output
	validOutputs := map[string]bool{
		"table": true,
		"yaml":  true,
		"json":  true,
	}
	if !validOutputs[strings.ToLower(c.ListOutput)] {
		return fmt.Errorf("list_output must be one of: table, yaml, json, got %s", c.ListOutput)
	}

	// Validate request ceilings
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %d", c.RateLimit)
	}

	// Validate Nautobot configuration
	if c.NautobotURL != "" {
		if !strings.HasPrefix(c.NautobotURL, "http://") && !strings.HasPrefix(c.NautobotURL, "https://") {
			return fmt.Errorf("nautobot_url must start with http:// or https://, got %s", c.NautobotURL)
		}

		if c.NautobotToken == "" {
			return fmt.Errorf("nautobot authentication required: nautobot_token must be provided when nautobot_url is set")
		}
	}

	return nil
}

// LoadConfig loads configuration with viper: defaults, then an optional YAML
// file, then NAUTOBOT_* environment variables on top.
func LoadConfig(configPath string) (*StaticConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := &StaticConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// HasNautobotConfig returns true if Nautobot configuration is present
func (c *StaticConfig) HasNautobotConfig() bool {
	return c.NautobotURL != "" && c.NautobotToken != ""
}

// GetPortString returns the listen address for HTTP mode, or "" in stdio
// mode.
func (c *StaticConfig) GetPortString() string {
	if c.Port == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.Port)
}
