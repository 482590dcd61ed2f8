// Package zstd implements the compress.Codec interface for the zstd
// compression format.
package zstd

import (
	"io"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"
)

const Code = 4

type Codec struct {
	// Level sets the compression level; zero selects the library default.
	Level int

	encoders sync.Pool
	decoders sync.Pool
}

func (c *Codec) Code() int8 { return Code }

func (c *Codec) Name() string { return "zstd" }

func (c *Codec) level() zstd.EncoderLevel {
	if c.Level == 0 {
		return zstd.SpeedDefault
	}
	return zstd.EncoderLevelFromZstd(c.Level)
}

func (c *Codec) NewReader(r io.Reader) io.ReadCloser {
	d, _ := c.decoders.Get().(*zstd.Decoder)
	if d == nil {
		d, _ = zstd.NewReader(r)
	} else {
		d.Reset(r)
	}
	x := &decoder{Decoder: d, pool: &c.decoders}
	runtime.SetFinalizer(x, func(x *decoder) { x.Decoder.Close() })
	return x
}

func (c *Codec) NewWriter(w io.Writer) io.WriteCloser {
	e, _ := c.encoders.Get().(*zstd.Encoder)
	if e == nil {
		e, _ = zstd.NewWriter(w, zstd.WithEncoderLevel(c.level()))
	} else {
		e.Reset(w)
	}
	x := &encoder{Encoder: e, pool: &c.encoders}
	runtime.SetFinalizer(x, func(x *encoder) { x.Encoder.Close() })
	return x
}

type decoder struct {
	*zstd.Decoder
	pool *sync.Pool
}

func (d *decoder) Close() error {
	if d.Decoder != nil {
		d.Decoder.Reset(nil)
		d.pool.Put(d.Decoder)
		d.Decoder = nil
		runtime.SetFinalizer(d, nil)
	}
	return nil
}

type encoder struct {
	*zstd.Encoder
	pool *sync.Pool
}

func (e *encoder) Close() (err error) {
	if e.Encoder != nil {
		err = e.Encoder.Close()
		e.pool.Put(e.Encoder)
		e.Encoder = nil
		runtime.SetFinalizer(e, nil)
	}
	return
}
