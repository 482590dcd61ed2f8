// Package compress declares the Codec interface record batches are
// compressed and decompressed through, and the table of codecs the Kafka
// wire protocol recognizes.
package compress

import (
	"io"

	"github.com/kafkawire/broker/compress/gzip"
	"github.com/kafkawire/broker/compress/lz4"
	"github.com/kafkawire/broker/compress/snappy"
	"github.com/kafkawire/broker/compress/zstd"
)

// Compression identifies the codec a record batch was compressed with. It
// occupies the low 3 bits of a record batch's attributes field.
type Compression int8

const (
	None   Compression = 0
	Gzip   Compression = 1
	Snappy Compression = 2
	Lz4    Compression = 3
	Zstd   Compression = 4
)

func (c Compression) Codec() Codec {
	if i := int(c); i >= 0 && i < len(Codecs) {
		return Codecs[i]
	}
	return nil
}

func (c Compression) String() string {
	if codec := c.Codec(); codec != nil {
		return codec.Name()
	}
	return "none"
}

// Codec represents a compression codec used to encode and decode record
// batches. See https://cwiki.apache.org/confluence/display/KAFKA/Compression
//
// A Codec must be safe for concurrent use by multiple goroutines.
type Codec interface {
	Code() int8
	Name() string
	NewReader(r io.Reader) io.ReadCloser
	NewWriter(w io.Writer) io.WriteCloser
}

var (
	GzipCodec   gzip.Codec
	SnappyCodec snappy.Codec
	Lz4Codec    lz4.Codec
	ZstdCodec   zstd.Codec

	// Codecs is indexed by Compression; Codecs[None] is intentionally nil.
	Codecs = [...]Codec{
		Gzip:   &GzipCodec,
		Snappy: &SnappyCodec,
		Lz4:    &Lz4Codec,
		Zstd:   &ZstdCodec,
	}
)
