package protocol

import (
	"encoding/binary"
	"errors"
	"io"
	"reflect"
)

// ErrTruncated is returned when a response frame ends before the decoder
// finished reading a value it was promised by the message's length prefix.
var ErrTruncated = errors.New("protocol: truncated message")

type decoder struct {
	reader io.Reader
	remain int
	err    error
}

func (d *decoder) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) read(n int) []byte {
	if n > d.remain {
		d.setErr(ErrTruncated)
		return nil
	}
	b := make([]byte, n)
	r, err := io.ReadFull(d.reader, b)
	d.remain -= r
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		d.setErr(err)
		return b[:r]
	}
	return b
}

func (d *decoder) discardAll() {
	if d.remain > 0 {
		io.CopyN(io.Discard, d.reader, int64(d.remain))
		d.remain = 0
	}
}

func (d *decoder) readInt8() int8 {
	b := d.read(1)
	if len(b) != 1 {
		return 0
	}
	return int8(b[0])
}

func (d *decoder) readInt16() int16 {
	b := d.read(2)
	if len(b) != 2 {
		return 0
	}
	return int16(binary.BigEndian.Uint16(b))
}

func (d *decoder) readInt32() int32 {
	b := d.read(4)
	if len(b) != 4 {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

func (d *decoder) readInt64() int64 {
	b := d.read(8)
	if len(b) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

func (d *decoder) readBool() bool { return d.readInt8() != 0 }

func (d *decoder) readString() string {
	n := d.readInt16()
	if n < 0 {
		return ""
	}
	return string(d.read(int(n)))
}

func (d *decoder) readBytes() []byte {
	n := d.readInt32()
	if n < 0 {
		return nil
	}
	return d.read(int(n))
}

// readVarInt reads a zigzag-encoded base-128 varint, the integer encoding
// used within record batches.
func (d *decoder) readVarInt() int64 {
	var u uint64
	var shift uint
	for {
		b := d.read(1)
		if len(b) != 1 {
			return 0
		}
		u |= uint64(b[0]&0x7f) << shift
		if b[0]&0x80 == 0 {
			break
		}
		shift += 7
	}
	return int64(u>>1) ^ -int64(u&1)
}

func (d *decoder) readVarString() string {
	n := d.readVarInt()
	if n < 0 {
		return ""
	}
	return string(d.read(int(n)))
}

func (d *decoder) readVarBytes() []byte {
	n := d.readVarInt()
	if n < 0 {
		return nil
	}
	return d.read(int(n))
}

func (d *decoder) discard(n int) {
	d.read(n)
}

type decodeFunc func(*decoder, reflect.Value)

func decodeFuncOf(typ reflect.Type, version int16, tag structTag) decodeFunc {
	switch typ.Kind() {
	case reflect.Bool:
		return func(d *decoder, v reflect.Value) { v.SetBool(d.readBool()) }
	case reflect.Int8:
		return func(d *decoder, v reflect.Value) { v.SetInt(int64(d.readInt8())) }
	case reflect.Int16:
		return func(d *decoder, v reflect.Value) { v.SetInt(int64(d.readInt16())) }
	case reflect.Int32:
		return func(d *decoder, v reflect.Value) { v.SetInt(int64(d.readInt32())) }
	case reflect.Int64:
		return func(d *decoder, v reflect.Value) { v.SetInt(d.readInt64()) }
	case reflect.String:
		return func(d *decoder, v reflect.Value) { v.SetString(d.readString()) }
	case reflect.Struct:
		return structDecodeFuncOf(typ, version)
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 { // []byte
			return func(d *decoder, v reflect.Value) { v.SetBytes(d.readBytes()) }
		}
		return arrayDecodeFuncOf(typ, version, tag)
	default:
		panic("protocol: unsupported type: " + typ.String())
	}
}

func structDecodeFuncOf(typ reflect.Type, version int16) decodeFunc {
	type field struct {
		decode decodeFunc
		index  int
	}
	var fields []field
	forEachStructField(typ, func(ftyp reflect.Type, index int, tag string) {
		forEachStructTag(tag, func(tag structTag) bool {
			if tag.MinVersion <= version && version <= tag.MaxVersion {
				fields = append(fields, field{
					decode: decodeFuncOf(ftyp, version, tag),
					index:  index,
				})
				return false
			}
			return true
		})
	})
	return func(d *decoder, v reflect.Value) {
		for _, f := range fields {
			f.decode(d, v.Field(f.index))
		}
	}
}

func arrayDecodeFuncOf(typ reflect.Type, version int16, tag structTag) decodeFunc {
	elemType := typ.Elem()
	elemFunc := decodeFuncOf(elemType, version, tag)
	return func(d *decoder, v reflect.Value) {
		n := d.readInt32()
		if n < 0 {
			v.Set(reflect.Zero(typ))
			return
		}
		s := reflect.MakeSlice(typ, int(n), int(n))
		for i := 0; i < int(n); i++ {
			elemFunc(d, s.Index(i))
		}
		v.Set(s)
	}
}
