package compress_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/kafkawire/broker/compress"
)

func TestCodecsRoundTrip(t *testing.T) {
	message := []byte("the quick brown fox jumps over the lazy dog")

	for _, compression := range []compress.Compression{
		compress.Gzip,
		compress.Snappy,
		compress.Lz4,
		compress.Zstd,
	} {
		compression := compression
		t.Run(compression.String(), func(t *testing.T) {
			codec := compression.Codec()
			if codec == nil {
				t.Fatalf("no codec registered for %s", compression)
			}

			var compressed bytes.Buffer
			w := codec.NewWriter(&compressed)
			if _, err := w.Write(message); err != nil {
				t.Fatalf("writing: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("closing writer: %v", err)
			}

			r := codec.NewReader(&compressed)
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("reading: %v", err)
			}
			if !bytes.Equal(got, message) {
				t.Fatalf("round trip mismatch: got %q, want %q", got, message)
			}
		})
	}
}

func TestCompressionNoneHasNoCodec(t *testing.T) {
	if codec := compress.None.Codec(); codec != nil {
		t.Fatalf("expected no codec for Compression(None), got %v", codec)
	}
	if compress.None.String() != "none" {
		t.Fatalf("expected %q, got %q", "none", compress.None.String())
	}
}

func TestCompressionOutOfRangeHasNoCodec(t *testing.T) {
	unknown := compress.Compression(42)
	if codec := unknown.Codec(); codec != nil {
		t.Fatalf("expected no codec for out-of-range Compression, got %v", codec)
	}
}
