package sdat2img

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestDataReaderPassthrough(t *testing.T) {
	raw := []byte("plain block data")
	r, err := NewDataReader(bytes.NewReader(raw), "system.new.dat")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("passthrough modified the stream")
	}
}

func TestDataReaderBrotli(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, 3*BlockSize)
	var compressed bytes.Buffer
	w := brotli.NewWriter(&compressed)
	if _, err := w.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewDataReader(&compressed, "system.new.dat.br")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("brotli round trip failed")
	}
}

func TestDataReaderGzip(t *testing.T) {
	raw := bytes.Repeat([]byte{0xCD}, 2*BlockSize)
	var compressed bytes.Buffer
	w := gzip.NewWriter(&compressed)
	if _, err := w.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewDataReader(&compressed, "system.new.dat.gz")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("gzip round trip failed")
	}
}

func TestDataReaderZstd(t *testing.T) {
	raw := bytes.Repeat([]byte{0xEF}, 2*BlockSize)
	var compressed bytes.Buffer
	w, err := zstd.NewWriter(&compressed)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewDataReader(&compressed, "system.new.dat.zst")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("zstd round trip failed")
	}
}

func TestDataReaderBadGzip(t *testing.T) {
	if _, err := NewDataReader(bytes.NewReader([]byte("not gzip")), "x.gz"); err == nil {
		t.Fatal("expected an error for a corrupt gzip stream")
	}
}
