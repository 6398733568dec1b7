package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func brCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zlibCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func rawDeflateCompress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeChain(t *testing.T) {
	plain := []byte(`{"response":"Gravity pulls masses together."}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
		changed  bool
	}{
		{name: "none", encoding: "", body: plain},
		{name: "identity", encoding: "identity", body: plain},
		{name: "gzip", encoding: "gzip", body: gzipCompress(t, plain), changed: true},
		{name: "brotli", encoding: "br", body: brCompress(t, plain), changed: true},
		{name: "zstd", encoding: "zstd", body: zstdCompress(t, plain), changed: true},
		{name: "deflate zlib", encoding: "deflate", body: zlibCompress(t, plain), changed: true},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateCompress(t, plain), changed: true},
		{name: "chained", encoding: "gzip, br", body: brCompress(t, gzipCompress(t, plain)), changed: true},
		{name: "upper case", encoding: "GZIP", body: gzipCompress(t, plain), changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeChain(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeChain_Unsupported(t *testing.T) {
	_, _, err := DecodeChain("lzma", []byte("x"))
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecodeChain_CorruptGzip(t *testing.T) {
	_, _, err := DecodeChain("gzip", []byte("not gzip"))
	assert.Error(t, err)
}
