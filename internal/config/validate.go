package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	if c.Navigation.MaxPathSegments < 1 {
		return fmt.Errorf("navigation.max_path_segments must be >= 1 (got %d)", c.Navigation.MaxPathSegments)
	}
	if c.Navigation.DefaultIcon == "" {
		return fmt.Errorf("navigation.default_icon must not be empty")
	}

	if err := c.Modules.validate(); err != nil {
		return fmt.Errorf("modules: %w", err)
	}

	return nil
}

func (m *ModulesConfig) validate() error {
	if m.RegistryBaseURL != "" {
		u, err := url.Parse(m.RegistryBaseURL)
		if err != nil {
			return fmt.Errorf("registry_base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("registry_base_url: unsupported scheme %q", u.Scheme)
		}
	}
	if m.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive (got %v)", m.RequestTimeout)
	}
	return nil
}
