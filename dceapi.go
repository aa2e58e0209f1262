// Package dceapi is a typed client for the Dalian Commodity Exchange open
// data API. It authenticates with an API key and secret, maintains the
// short-lived bearer token the API requires, and exposes the read-only
// endpoints as typed methods grouped into per-topic services.
//
// Construct a client from explicit configuration:
//
//	client, err := dceapi.New(dceapi.Config{
//		APIKey: "your-api-key",
//		Secret: "your-secret",
//	})
//
// or from DCE_API_KEY / DCE_SECRET in the environment:
//
//	client, err := dceapi.NewFromEnv(ctx)
//
// Every endpoint method takes a context and returns a typed payload or a
// typed error. Token acquisition and refresh are transparent: the first
// call authenticates, and a server-signaled expiry triggers exactly one
// re-authentication and retry.
package dceapi

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the entry point for the API. All cross-cutting behavior (token
// lifecycle, compression, retry-on-expiry) is shared; the service fields
// only group related endpoints.
type Client struct {
	cfg       Config
	tokens    *tokenSource
	transport *transport
	refCache  *refCache

	// News provides article and announcement endpoints.
	News *NewsService

	// Common provides trade dates and variety information.
	Common *CommonService

	// Market provides quotes and market statistics.
	Market *MarketService

	// Trade provides trading parameters and contract information.
	Trade *TradeService

	// Settle provides settlement parameters.
	Settle *SettleService

	// Member provides member trading rankings.
	Member *MemberService

	// Delivery provides delivery data, costs and warehouse information.
	Delivery *DeliveryService
}

type service struct {
	client *Client
}

type clientOptions struct {
	httpClient  *http.Client
	userAgent   string
	instrument  bool
	refCacheTTL time.Duration
}

// Option configures optional client behavior.
type Option func(*clientOptions)

// WithHTTPClient supplies the http.Client used for all calls, including
// authentication. Its transport is used as-is; request timeouts are still
// applied from Config.Timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header on outbound requests.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithInstrumentation wraps the outbound transport with OpenTelemetry HTTP
// instrumentation. Traces and metrics go to the globally registered
// providers; configuring those is the embedding application's concern.
func WithInstrumentation() Option {
	return func(o *clientOptions) {
		o.instrument = true
	}
}

// WithReferenceCache caches slow-moving reference data (the variety list
// and the current trade date) in memory for the given TTL, keyed by
// language and trade type. Market and trading data is never cached.
func WithReferenceCache(ttl time.Duration) Option {
	return func(o *clientOptions) {
		o.refCacheTTL = ttl
	}
}

// New creates a client for the given configuration. Zero-valued optional
// fields receive defaults; missing credentials or malformed settings fail
// immediately with *ConfigError, before any network call.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: http.DefaultTransport}
	}
	if options.instrument {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient = &http.Client{Transport: otelhttp.NewTransport(base)}
	}

	c := &Client{
		cfg:    cfg,
		tokens: newTokenSource(cfg, httpClient),
		transport: &transport{
			cfg:       cfg,
			client:    httpClient,
			userAgent: options.userAgent,
		},
	}

	if options.refCacheTTL > 0 {
		c.refCache = newRefCache(options.refCacheTTL)
	}

	c.News = &NewsService{client: c}
	c.Common = &CommonService{client: c}
	c.Market = &MarketService{client: c}
	c.Trade = &TradeService{client: c}
	c.Settle = &SettleService{client: c}
	c.Member = &MemberService{client: c}
	c.Delivery = &DeliveryService{client: c}

	return c, nil
}

// NewFromEnv loads configuration from the environment and creates a client.
func NewFromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}
