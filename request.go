package dceapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// RequestOptions overrides client-wide settings for a single call. The zero
// value (or a nil pointer) leaves the configured defaults in place.
type RequestOptions struct {
	// Lang overrides the response language for this call.
	Lang string

	// TradeType overrides the futures/options selection for this call.
	TradeType int
}

// request describes a single API call: path, method, query parameters and
// optional JSON body. It is built fresh per call and never shared.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	opts   *RequestOptions
}

func (r *request) lang(cfg Config) string {
	if r.opts != nil && r.opts.Lang != "" {
		return r.opts.Lang
	}
	return cfg.Lang
}

func (r *request) tradeType(cfg Config) int {
	if r.opts != nil && r.opts.TradeType != 0 {
		return r.opts.TradeType
	}
	return cfg.TradeType
}

// do runs the authenticated request pipeline: ensure a valid token, send,
// and recover from exactly one class of failure. When the first attempt
// comes back with the expiry signal the token is force-refreshed and the
// request resent once; any second failure is surfaced as-is. No other
// status triggers a retry.
func (c *Client) do(ctx context.Context, r *request, v any) error {
	err := c.attempt(ctx, r, v)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.TokenExpired() {
		log.Debug().Str("path", r.path).Msg("dceapi: token expired, refreshing and retrying once")

		if _, rerr := c.tokens.ForceRefresh(ctx); rerr != nil {
			return rerr
		}
		err = c.attempt(ctx, r, v)
	}

	return err
}

// attempt performs a single token-get, send and decode. The expiry signal is
// reported as *APIError with code 402 so that do can distinguish it, whether
// the server carried it as the HTTP status or inside the envelope.
func (c *Client) attempt(ctx context.Context, r *request, v any) error {
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.transport.send(ctx, r, tok.AccessToken)
	if err != nil {
		return err
	}

	if resp.Status == http.StatusPaymentRequired {
		return &APIError{
			Status:  resp.Status,
			Code:    CodeTokenExpired,
			Message: "token expired",
			Body:    resp.Body,
		}
	}

	if resp.Status < 200 || resp.Status > 299 {
		return &APIError{
			Status:  resp.Status,
			Message: http.StatusText(resp.Status),
			Body:    resp.Body,
		}
	}

	return c.transport.decode(resp, v)
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, opts *RequestOptions, v any) error {
	return c.do(ctx, &request{
		method: http.MethodGet,
		path:   path,
		query:  queryValues(params),
		opts:   opts,
	}, v)
}

func (c *Client) post(ctx context.Context, path string, body any, opts *RequestOptions, v any) error {
	return c.do(ctx, &request{
		method: http.MethodPost,
		path:   path,
		body:   body,
		opts:   opts,
	}, v)
}
