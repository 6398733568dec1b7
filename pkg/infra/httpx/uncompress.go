package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// DecodeChain undoes a Content-Encoding header value, last encoding first.
// Supports br, gzip, zstd and deflate (zlib-wrapped or raw). It reports
// whether the body changed.
func DecodeChain(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}
	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.TrimSpace(strings.ToLower(encodings[i]))
		var (
			out []byte
			err error
		)
		switch enc {
		case "", "identity":
			continue
		case "br":
			out, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip":
			out, err = readAllClose(gzip.NewReader(bytes.NewReader(body)))
		case "zstd":
			var dec *zstd.Decoder
			dec, err = zstd.NewReader(bytes.NewReader(body))
			if err == nil {
				out, err = io.ReadAll(dec)
				dec.Close()
			}
		case "deflate":
			out, err = readAllClose(zlib.NewReader(bytes.NewReader(body)))
			if err != nil {
				out, err = readAllClose(flate.NewReader(bytes.NewReader(body)), nil)
			}
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", enc)
		}
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", enc, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func readAllClose(r io.ReadCloser, openErr error) ([]byte, error) {
	if openErr != nil {
		return nil, openErr
	}
	out, err := io.ReadAll(r)
	cerr := r.Close()
	if err != nil {
		return nil, err
	}
	return out, cerr
}
