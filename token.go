package dceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// authPath is the token endpoint. It is the only call authenticated with the
// shared secret; everything else carries the bearer token it returns.
const authPath = "/dceapi/cms/auth/accessToken"

// tokenExpirySlack is how long before the stated expiry a token is treated
// as stale and refreshed proactively.
const tokenExpirySlack = 60 * time.Second

// defaultTokenTTL applies when the token endpoint omits expiresIn.
const defaultTokenTTL = time.Hour

// tokenGrant is the payload of a successful authentication response.
type tokenGrant struct {
	TokenType string `json:"tokenType"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// tokenSource owns the client's bearer token. It hands out the cached token
// while it remains valid and re-authenticates when it is missing, about to
// expire, or explicitly invalidated by the expiry signal.
//
// The mutex is held for the full duration of a refresh: concurrent callers
// needing a token wait for the in-flight authentication call instead of
// issuing their own, so at most one authentication request is ever in
// flight per client.
type tokenSource struct {
	cfg    Config
	client *http.Client

	mu    sync.Mutex
	token *oauth2.Token
}

func newTokenSource(cfg Config, client *http.Client) *tokenSource {
	return &tokenSource{cfg: cfg, client: client}
}

// Token returns a currently-valid bearer token, authenticating first if the
// cached one is absent or within tokenExpirySlack of expiry.
func (s *tokenSource) Token(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid() {
		return s.token, nil
	}

	return s.refreshLocked(ctx)
}

// ForceRefresh discards the cached token and re-authenticates. Used after
// the server signals that the presented token has expired. On failure the
// prior token is left in place.
func (s *tokenSource) ForceRefresh(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

// valid reports whether the cached token can still be handed out. The
// expiry margin is wider than oauth2.Token.Valid's, so the check is done
// here instead.
func (s *tokenSource) valid() bool {
	return s.token != nil &&
		s.token.AccessToken != "" &&
		time.Now().Add(tokenExpirySlack).Before(s.token.Expiry)
}

// refreshLocked authenticates against the token endpoint and replaces the
// stored token wholesale. Callers must hold s.mu.
//
// The request deliberately survives cancellation of the triggering caller:
// other callers may be blocked on this refresh, and an aborted one would
// fail them all for no reason. The configured timeout still applies.
func (s *tokenSource) refreshLocked(ctx context.Context) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(struct {
		Secret string `json:"secret"`
	}{Secret: s.cfg.Secret})
	if err != nil {
		return nil, &AuthError{Reason: "could not encode credentials", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+authPath, bytes.NewReader(body))
	if err != nil {
		return nil, &AuthError{Reason: "could not build authentication request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: "authentication call failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Reason: "could not read authentication response", Err: err}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, &AuthError{Reason: "malformed authentication response", Err: err}
	}

	if env.Code != CodeSuccess {
		return nil, &AuthError{Reason: authFailureReason(env.Code, env.message())}
	}

	var grant tokenGrant
	if err := json.Unmarshal(env.Data, &grant); err != nil {
		return nil, &AuthError{Reason: "malformed token payload", Err: err}
	}

	if grant.Token == "" {
		return nil, &AuthError{Reason: "server returned an empty token"}
	}

	ttl := defaultTokenTTL
	if grant.ExpiresIn > 0 {
		ttl = time.Duration(grant.ExpiresIn) * time.Second
	}

	s.token = &oauth2.Token{
		AccessToken: grant.Token,
		TokenType:   grant.TokenType,
		Expiry:      time.Now().Add(ttl),
	}

	log.Debug().Time("expiry", s.token.Expiry).Msg("dceapi: access token refreshed")

	return s.token, nil
}

func authFailureReason(code int, msg string) string {
	switch code {
	case CodeParamError:
		return "invalid parameters: " + msg
	case CodeNoPermission:
		return "permission denied: " + msg
	case CodeServerError:
		return "server error: " + msg
	case CodeRateLimited:
		return "rate limited: " + msg
	default:
		return msg
	}
}
