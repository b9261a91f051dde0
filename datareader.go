package sdat2img

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// NewDataReader wraps a raw data stream with the decompressor implied by the
// file name. ".br" (the compression block updates actually ship in since
// Android 8), ".gz" and ".zst" are recognized, any other name passes the
// stream through untouched. The returned reader yields the plain block
// stream either way.
func NewDataReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".br":
		return io.NopCloser(brotli.NewReader(r)), nil
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "opening gzip stream")
		}
		return gr, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "opening zstd stream")
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
