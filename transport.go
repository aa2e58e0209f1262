package dceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// envelope is the uniform response wrapper used by every endpoint:
// {"code": int, "msg": string, "data": ...}. Some deployments spell the
// message field "message"; both are accepted.
type envelope struct {
	Code   int             `json:"code"`
	Msg    string          `json:"msg"`
	AltMsg string          `json:"message"`
	Data   json.RawMessage `json:"data"`
}

func (e *envelope) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.AltMsg
}

// rawResponse is the transport's view of a completed exchange: status and
// body, before decompression and envelope decoding.
type rawResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// transport performs the network exchange for a single request. It holds no
// state beyond the configuration it was built from; retry policy lives in
// the pipeline, not here.
type transport struct {
	cfg       Config
	client    *http.Client
	userAgent string
}

// send issues the request described by r with the given bearer token and
// returns the raw status and body. The call is bounded by the configured
// timeout.
func (t *transport) send(ctx context.Context, r *request, token string) (*rawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	u := t.cfg.BaseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, &TransportError{Op: "encode request body", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", t.cfg.APIKey)
	req.Header.Set("tradeType", strconv.Itoa(r.tradeType(t.cfg)))
	req.Header.Set("lang", r.lang(t.cfg))
	req.Header.Set("Accept-Encoding", t.cfg.acceptEncodingHeader())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: r.method + " " + r.path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	return &rawResponse{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   raw,
	}, nil
}

// decode decompresses the body per its Content-Encoding, parses the
// envelope, and unmarshals the payload into v. A non-success envelope code
// is returned as *APIError; v may be nil when the payload is irrelevant.
func (t *transport) decode(raw *rawResponse, v any) error {
	body, err := decompress(raw.Header.Get("Content-Encoding"), raw.Body)
	if err != nil {
		return &DecodeError{Raw: raw.Body, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &DecodeError{Raw: body, Err: err}
	}

	if env.Code != CodeSuccess {
		return &APIError{
			Status:  raw.Status,
			Code:    env.Code,
			Message: env.message(),
			Body:    body,
		}
	}

	if v == nil {
		return nil
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return &DecodeError{Raw: body, Err: errNoData}
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return &DecodeError{Raw: body, Err: err}
	}

	return nil
}

var errNoData = errNoDataType{}

type errNoDataType struct{}

func (errNoDataType) Error() string { return "successful response carried no data" }

// queryValues converts a flat string mapping into url.Values, dropping empty
// entries.
func queryValues(params map[string]string) url.Values {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}
