// Package config handles configuration loading for the federated credential
// CLI.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows values like the
// username to be injected at runtime.
//
// # Example Configuration
//
//	authority:
//	  endpoint: https://sts.contoso.com/adfs/services/trust/13/usernamemixed
//	  trustVersion: "1.3"
//	  audience: urn:federation:MicrosoftOnline
//	  username: ${FEDCRED_USERNAME}
//
//	transport:
//	  timeout: 30s
//	  minTLSVersion: "1.2"
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/transport"
	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/wstrust"
)

// Config is the root configuration structure
type Config struct {
	Authority AuthorityConfig `yaml:"authority"`
	Transport TransportConfig `yaml:"transport"`
}

// AuthorityConfig identifies the token-issuing endpoint and the account
type AuthorityConfig struct {
	Endpoint     string `yaml:"endpoint"`
	TrustVersion string `yaml:"trustVersion"`
	Audience     string `yaml:"audience"`
	Username     string `yaml:"username"`
}

// TransportConfig holds HTTPS client settings
type TransportConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	MinTLSVersion string        `yaml:"minTLSVersion"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Authority.TrustVersion == "" {
		c.Authority.TrustVersion = "1.3"
	}
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 30 * time.Second
	}
	if c.Transport.MinTLSVersion == "" {
		c.Transport.MinTLSVersion = "1.2"
	}
}

func (c *Config) validate() error {
	if c.Authority.Endpoint == "" {
		return fmt.Errorf("authority.endpoint is required")
	}

	u, err := url.Parse(c.Authority.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", wstrust.ErrMalformedEndpoint, c.Authority.Endpoint)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be https, got %q", wstrust.ErrMalformedEndpoint, u.Scheme)
	}

	if _, err := wstrust.ParseVersion(c.Authority.TrustVersion); err != nil {
		return err
	}

	switch c.Transport.MinTLSVersion {
	case "1.2", "1.3":
		// Valid versions
	default:
		return fmt.Errorf("transport.minTLSVersion must be '1.2' or '1.3', got %q", c.Transport.MinTLSVersion)
	}

	return nil
}

// Endpoint returns the configured trust endpoint. Validation has already
// guaranteed that the version string parses.
func (c *Config) Endpoint() wstrust.Endpoint {
	version, _ := wstrust.ParseVersion(c.Authority.TrustVersion)
	return wstrust.Endpoint{
		URI:     c.Authority.Endpoint,
		Version: version,
	}
}

// TransportClientConfig builds the transport client configuration
func (c *Config) TransportClientConfig() *transport.Config {
	tc := transport.DefaultConfig()
	tc.Timeout = c.Transport.Timeout
	if c.Transport.MinTLSVersion == "1.3" {
		tc.MinTLSVersion = transport.TLS13
	}
	return tc
}
