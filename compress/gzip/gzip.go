// Package gzip implements the compress.Codec interface for the gzip
// compression format.
package gzip

import (
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const Code = 1

type Codec struct {
	// Compression level passed to gzip.NewWriterLevel, defaulting to
	// gzip.DefaultCompression.
	Level int

	writers sync.Pool
	readers sync.Pool
}

func (c *Codec) Code() int8 { return Code }

func (c *Codec) Name() string { return "gzip" }

func (c *Codec) NewReader(r io.Reader) io.ReadCloser {
	var z *gzip.Reader
	if v := c.readers.Get(); v != nil {
		z = v.(*gzip.Reader)
		z.Reset(r)
	} else {
		z, _ = gzip.NewReader(r)
	}
	return &reader{Reader: z, pool: &c.readers}
}

func (c *Codec) NewWriter(w io.Writer) io.WriteCloser {
	level := c.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	var z *gzip.Writer
	if v := c.writers.Get(); v != nil {
		z = v.(*gzip.Writer)
		z.Reset(w)
	} else {
		z, _ = gzip.NewWriterLevel(w, level)
	}
	return &writer{Writer: z, pool: &c.writers}
}

type reader struct {
	*gzip.Reader
	pool *sync.Pool
}

func (r *reader) Close() (err error) {
	if r.Reader != nil {
		err = r.Reader.Close()
		r.pool.Put(r.Reader)
		r.Reader = nil
	}
	return
}

type writer struct {
	*gzip.Writer
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
