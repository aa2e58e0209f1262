package dceapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/openfutures/dceapi/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompress_RoundTrip(t *testing.T) {
	payload := []byte(`{"code":200,"msg":"success","data":{"tradeDate":"20260828"}}`)

	for _, encoding := range []string{"gzip", "br", "deflate"} {
		t.Run(encoding, func(t *testing.T) {
			compressed := testhelpers.Compress(t, encoding, payload)

			out, err := decompress(encoding, compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecompress_Identity(t *testing.T) {
	payload := []byte(`{"code":200}`)

	for _, encoding := range []string{"", "identity"} {
		out, err := decompress(encoding, payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	}
}

func TestDecompress_UnsupportedEncoding(t *testing.T) {
	_, err := decompress("zstd", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content encoding")
}

func TestDecompress_CorruptGzip(t *testing.T) {
	_, err := decompress("gzip", []byte("definitely not gzip"))
	require.Error(t, err)
}

func TestDecode_CompressedResponses(t *testing.T) {
	for _, encoding := range []string{"gzip", "br", "deflate"} {
		t.Run(encoding, func(t *testing.T) {
			mock := testhelpers.SetupMockExchange(t)
			mock.Handle(pathMaxTradeDate, func(w http.ResponseWriter, r *http.Request) {
				testhelpers.WriteCompressedEnvelope(t, w, encoding, 200, "success",
					map[string]string{"tradeDate": "20260828"})
			})

			client := testClient(t, mock)

			date, err := client.Common.MaxTradeDate(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, "20260828", date.Date, "compressed payload must decode identically to plain")
		})
	}
}

func TestDecode_EnvelopeMessageAlias(t *testing.T) {
	env := envelope{AltMsg: "alias"}
	assert.Equal(t, "alias", env.message())

	env.Msg = "primary"
	assert.Equal(t, "primary", env.message())
}

func TestDecode_NullDataOnSuccess(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	mock.Handle(pathMaxTradeDate, func(w http.ResponseWriter, r *http.Request) {
		testhelpers.WriteEnvelope(w, 200, "success", nil)
	})

	client := testClient(t, mock)

	_, err := client.Common.MaxTradeDate(context.Background(), nil)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}
