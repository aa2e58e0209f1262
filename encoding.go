package dceapi

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// decompress reverses the response's Content-Encoding. Because the client
// negotiates codings itself via an explicit Accept-Encoding header, the
// standard library's transparent gzip handling is bypassed and the body
// arrives as sent.
func decompress(encoding string, body []byte) ([]byte, error) {
	switch encoding {
	case "", "identity":
		return body, nil

	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		return readAll(r, "gzip")

	case "br":
		return readAll(brotli.NewReader(bytes.NewReader(body)), "brotli")

	case "deflate":
		// "deflate" is zlib-wrapped per RFC 9110, but some servers send raw
		// deflate streams; fall back when the zlib header is absent.
		r, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			fr := flate.NewReader(bytes.NewReader(body))
			defer fr.Close()
			return readAll(fr, "deflate")
		}
		defer r.Close()
		return readAll(r, "deflate")

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

func readAll(r io.Reader, coding string) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", coding, err)
	}
	return out, nil
}
