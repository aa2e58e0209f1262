package dceapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DCE_API_KEY", "test-key")
	t.Setenv("DCE_SECRET", "test-secret")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "zh", cfg.Lang)
	assert.Equal(t, TradeTypeFutures, cfg.TradeType)
	assert.Equal(t, []string{"gzip", "br", "deflate"}, cfg.AcceptEncoding)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DCE_API_KEY", "test-key")
	t.Setenv("DCE_SECRET", "test-secret")
	t.Setenv("DCE_BASE_URL", "https://api.example.com")
	t.Setenv("DCE_TIMEOUT", "5s")
	t.Setenv("DCE_LANG", "en")
	t.Setenv("DCE_TRADE_TYPE", "2")
	t.Setenv("DCE_ACCEPT_ENCODING", "gzip")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, TradeTypeOptions, cfg.TradeType)
	assert.Equal(t, []string{"gzip"}, cfg.AcceptEncoding)
}

func TestConfigValidate_MissingAPIKey(t *testing.T) {
	cfg := Config{Secret: "s"}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "APIKey", cfgErr.Field)
}

func TestConfigValidate_MissingSecret(t *testing.T) {
	cfg := Config{APIKey: "k"}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Secret", cfgErr.Field)
}

func TestConfigValidate_BadBaseURL(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s", BaseURL: "not-a-url"}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "BaseURL", cfgErr.Field)
}

func TestConfigValidate_BadLang(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s", Lang: "fr"}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Lang", cfgErr.Field)
}

func TestConfigValidate_BadTradeType(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s", TradeType: 3}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TradeType", cfgErr.Field)
}

func TestConfigValidate_AcceptEncoding(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s", AcceptEncoding: []string{"gzip", "brotli"}}
	cfg.applyDefaults()

	require.NoError(t, cfg.Validate())

	// "brotli" is normalized to the wire name
	assert.Equal(t, []string{"gzip", "br"}, cfg.AcceptEncoding)
	assert.Equal(t, "gzip, br", cfg.acceptEncodingHeader())
}

func TestConfigValidate_UnsupportedEncoding(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s", AcceptEncoding: []string{"zstd"}}
	cfg.applyDefaults()

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "AcceptEncoding", cfgErr.Field)
}

func TestApplyDefaults_ZeroValues(t *testing.T) {
	cfg := Config{APIKey: "k", Secret: "s"}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "zh", cfg.Lang)
	assert.Equal(t, TradeTypeFutures, cfg.TradeType)
	assert.Equal(t, []string{"gzip", "br", "deflate"}, cfg.AcceptEncoding)
}
