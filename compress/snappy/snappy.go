// Package snappy implements the compress.Codec interface for the snappy
// compression format.
package snappy

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	xerial "github.com/eapache/go-xerial-snappy"
	"github.com/golang/snappy"
)

const Code = 2

// Framing selects which variant of the snappy format a Codec produces.
// Kafka brokers historically wrapped raw snappy blocks in Xerial's
// chunked framing; Framed keeps producing that format for interop with
// older consumers, Unframed writes plain snappy blocks.
type Framing int

const (
	Framed Framing = iota
	Unframed
)

type Codec struct {
	Framing Framing

	readers sync.Pool
	writers sync.Pool
}

func (c *Codec) Code() int8 { return Code }

func (c *Codec) Name() string { return "snappy" }

func (c *Codec) NewReader(r io.Reader) io.ReadCloser {
	x, _ := c.readers.Get().(*xerialReader)
	if x == nil {
		x = &xerialReader{}
	}
	x.reset(r)
	return x
}

func (c *Codec) NewWriter(w io.Writer) io.WriteCloser {
	x, _ := c.writers.Get().(*xerialWriter)
	if x == nil {
		x = &xerialWriter{}
	}
	x.reset(w, c.Framing == Framed, &c.writers)
	return x
}

// xerialReader transparently decodes both xerial-framed and raw snappy
// streams: brokers across versions disagree on which one they emit.
type xerialReader struct {
	reader io.Reader
	buf    bytes.Buffer
	pool   *sync.Pool
}

func (x *xerialReader) reset(r io.Reader) {
	x.reader = r
	x.buf.Reset()
}

func (x *xerialReader) Read(p []byte) (int, error) {
	if x.buf.Len() == 0 {
		if err := x.fill(); err != nil {
			return 0, err
		}
	}
	return x.buf.Read(p)
}

func (x *xerialReader) fill() error {
	raw, err := io.ReadAll(x.reader)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return io.EOF
	}
	decoded, err := xerial.Decode(raw)
	if err != nil {
		return fmt.Errorf("snappy: %w", err)
	}
	x.buf.Write(decoded)
	return nil
}

func (x *xerialReader) Close() error {
	x.reader = nil
	x.buf.Reset()
	return nil
}

// xerialWriter buffers the whole message and snappy-compresses it on
// Close, optionally wrapping the block in xerial's chunked framing.
type xerialWriter struct {
	writer io.Writer
	buf    bytes.Buffer
	framed bool
	pool   *sync.Pool
}

func (x *xerialWriter) reset(w io.Writer, framed bool, pool *sync.Pool) {
	x.writer = w
	x.buf.Reset()
	x.framed = framed
	x.pool = pool
}

func (x *xerialWriter) Write(p []byte) (int, error) { return x.buf.Write(p) }

func (x *xerialWriter) Close() error {
	defer func() {
		x.writer = nil
		x.pool.Put(x)
	}()

	if x.framed {
		_, err := x.writer.Write(xerial.EncodeStream(nil, x.buf.Bytes()))
		return err
	}
	_, err := x.writer.Write(snappy.Encode(nil, x.buf.Bytes()))
	return err
}
