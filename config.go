package dceapi

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultBaseURL is the production address of the exchange's open data API.
const DefaultBaseURL = "http://www.dce.com.cn"

// DefaultTimeout bounds every network call, including authentication.
const DefaultTimeout = 30 * time.Second

// Trade types accepted by the exchange.
const (
	TradeTypeFutures = 1
	TradeTypeOptions = 2
)

// Config holds the settings shared by every request issued through a Client.
// It is copied at construction; mutating it afterwards has no effect on an
// existing client.
type Config struct {
	// APIKey identifies the caller. Required.
	APIKey string `env:"DCE_API_KEY"`

	// Secret is exchanged for a bearer token. Required.
	Secret string `env:"DCE_SECRET"`

	// BaseURL overrides the API address, mainly for testing.
	BaseURL string `env:"DCE_BASE_URL, default=http://www.dce.com.cn"`

	// Timeout bounds each network call.
	Timeout time.Duration `env:"DCE_TIMEOUT, default=30s"`

	// Lang selects the response language: "zh" or "en".
	Lang string `env:"DCE_LANG, default=zh"`

	// TradeType selects futures (1) or options (2) data.
	TradeType int `env:"DCE_TRADE_TYPE, default=1"`

	// AcceptEncoding lists the response compressions offered to the server,
	// in preference order. Supported: gzip, br, deflate.
	AcceptEncoding []string `env:"DCE_ACCEPT_ENCODING, delimiter=;, default=gzip;br;deflate"`
}

// LoadConfig reads configuration from the process environment.
// The returned config has defaults applied but is not validated; New
// validates before any network call is made.
func LoadConfig(ctx context.Context) (Config, error) {
	return loadConfig(ctx, nil)
}

func loadConfig(ctx context.Context, lookup envconfig.Lookuper) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookup, // nil defaults to OS environment
	})
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields so that a hand-built Config behaves
// like one produced by LoadConfig.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Lang == "" {
		c.Lang = "zh"
	}
	if c.TradeType == 0 {
		c.TradeType = TradeTypeFutures
	}
	if len(c.AcceptEncoding) == 0 {
		c.AcceptEncoding = []string{"gzip", "br", "deflate"}
	}
}

// Validate checks that the configuration is usable. Failures are reported
// as *ConfigError before any request is attempted.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "APIKey", Reason: "API key is required"}
	}
	if c.Secret == "" {
		return &ConfigError{Field: "Secret", Reason: "secret is required"}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ConfigError{Field: "BaseURL", Reason: "must be an absolute http(s) URL"}
	}

	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Reason: "must be positive"}
	}

	if c.Lang != "zh" && c.Lang != "en" {
		return &ConfigError{Field: "Lang", Reason: `must be "zh" or "en"`}
	}

	if c.TradeType != TradeTypeFutures && c.TradeType != TradeTypeOptions {
		return &ConfigError{Field: "TradeType", Reason: "must be 1 (futures) or 2 (options)"}
	}

	for i, enc := range c.AcceptEncoding {
		// "brotli" is a common spelling of the "br" coding
		if enc == "brotli" {
			c.AcceptEncoding[i] = "br"
			enc = "br"
		}
		if !slices.Contains([]string{"gzip", "br", "deflate"}, enc) {
			return &ConfigError{Field: "AcceptEncoding", Reason: "unsupported coding " + strings.TrimSpace(enc)}
		}
	}

	return nil
}

// acceptEncodingHeader renders the configured codings as an Accept-Encoding
// header value.
func (c *Config) acceptEncodingHeader() string {
	return strings.Join(c.AcceptEncoding, ", ")
}
