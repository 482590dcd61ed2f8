// Package lz4 implements the compress.Codec interface for the LZ4
// compression format.
package lz4

import (
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const Code = 3

type Codec struct {
	// Compression level passed to the lz4 writer. Zero uses the library
	// default.
	Level int

	readers sync.Pool
	writers sync.Pool
}

func (c *Codec) Code() int8 { return Code }

func (c *Codec) Name() string { return "lz4" }

func (c *Codec) NewReader(r io.Reader) io.ReadCloser {
	z, _ := c.readers.Get().(*lz4.Reader)
	if z == nil {
		z = lz4.NewReader(r)
	} else {
		z.Reset(r)
	}
	return &reader{Reader: z, pool: &c.readers}
}

func (c *Codec) NewWriter(w io.Writer) io.WriteCloser {
	z, _ := c.writers.Get().(*lz4.Writer)
	if z == nil {
		z = lz4.NewWriter(w)
	} else {
		z.Reset(w)
	}
	if c.Level != 0 {
		z.Apply(lz4.CompressionLevelOption(lz4.CompressionLevel(c.Level)))
	}
	return &writer{Writer: z, pool: &c.writers}
}

type reader struct {
	*lz4.Reader
	pool *sync.Pool
}

func (r *reader) Close() error {
	if r.Reader != nil {
		r.pool.Put(r.Reader)
		r.Reader = nil
	}
	return nil
}

type writer struct {
	*lz4.Writer
	pool *sync.Pool
}

func (w *writer) Close() (err error) {
	if w.Writer != nil {
		err = w.Writer.Close()
		w.pool.Put(w.Writer)
		w.Writer = nil
	}
	return
}
