package protocol

import (
	"encoding/binary"
	"io"
	"reflect"
)

type encoder struct {
	writer io.Writer
	buf    [8]byte
	err    error
}

func (e *encoder) writeInt8(i int8) {
	if e.err != nil {
		return
	}
	e.buf[0] = byte(i)
	_, e.err = e.writer.Write(e.buf[:1])
}

func (e *encoder) writeInt16(i int16) {
	if e.err != nil {
		return
	}
	binary.BigEndian.PutUint16(e.buf[:2], uint16(i))
	_, e.err = e.writer.Write(e.buf[:2])
}

func (e *encoder) writeInt32(i int32) {
	if e.err != nil {
		return
	}
	binary.BigEndian.PutUint32(e.buf[:4], uint32(i))
	_, e.err = e.writer.Write(e.buf[:4])
}

func (e *encoder) writeInt64(i int64) {
	if e.err != nil {
		return
	}
	binary.BigEndian.PutUint64(e.buf[:8], uint64(i))
	_, e.err = e.writer.Write(e.buf[:8])
}

func (e *encoder) writeBool(b bool) {
	if b {
		e.writeInt8(1)
	} else {
		e.writeInt8(0)
	}
}

// writeString writes a nullable string using the standard 2-byte length
// prefix. A zero-length Go string is written as length 0, never as null;
// callers that need to send a null string explicitly use writeNullString.
func (e *encoder) writeString(s string) {
	e.writeInt16(int16(len(s)))
	if e.err == nil && len(s) > 0 {
		_, e.err = io.WriteString(e.writer, s)
	}
}

func (e *encoder) writeNullString(s string) {
	if s == "" {
		e.writeInt16(-1)
		return
	}
	e.writeString(s)
}

func (e *encoder) writeBytes(b []byte) {
	if b == nil {
		e.writeInt32(-1)
		return
	}
	e.writeInt32(int32(len(b)))
	if e.err == nil && len(b) > 0 {
		_, e.err = e.writer.Write(b)
	}
}

// writeVarInt writes i using zigzag base-128 varint encoding.
func (e *encoder) writeVarInt(i int64) {
	u := uint64(i<<1) ^ uint64(i>>63)
	for u >= 0x80 {
		e.writeInt8(int8(byte(u) | 0x80))
		u >>= 7
	}
	e.writeInt8(int8(u))
}

func (e *encoder) writeVarString(s string) {
	e.writeVarInt(int64(len(s)))
	if e.err == nil && len(s) > 0 {
		_, e.err = io.WriteString(e.writer, s)
	}
}

func (e *encoder) writeVarNullBytes(b []byte) {
	if b == nil {
		e.writeVarInt(-1)
		return
	}
	e.writeVarInt(int64(len(b)))
	if e.err == nil && len(b) > 0 {
		_, e.err = e.writer.Write(b)
	}
}

func (e *encoder) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.writer.Write(b)
	e.err = err
	return n, err
}

func sizeOfVarInt(i int64) int {
	u := uint64(i<<1) ^ uint64(i>>63)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

type encodeFunc func(*encoder, reflect.Value)

func encodeFuncOf(typ reflect.Type, version int16, tag structTag) encodeFunc {
	switch typ.Kind() {
	case reflect.Bool:
		return func(e *encoder, v reflect.Value) { e.writeBool(v.Bool()) }
	case reflect.Int8:
		return func(e *encoder, v reflect.Value) { e.writeInt8(int8(v.Int())) }
	case reflect.Int16:
		return func(e *encoder, v reflect.Value) { e.writeInt16(int16(v.Int())) }
	case reflect.Int32:
		return func(e *encoder, v reflect.Value) { e.writeInt32(int32(v.Int())) }
	case reflect.Int64:
		return func(e *encoder, v reflect.Value) { e.writeInt64(v.Int()) }
	case reflect.String:
		if tag.Nullable {
			return func(e *encoder, v reflect.Value) { e.writeNullString(v.String()) }
		}
		return func(e *encoder, v reflect.Value) { e.writeString(v.String()) }
	case reflect.Struct:
		return structEncodeFuncOf(typ, version)
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 { // []byte
			return func(e *encoder, v reflect.Value) { e.writeBytes(v.Bytes()) }
		}
		return arrayEncodeFuncOf(typ, version, tag)
	default:
		panic("protocol: unsupported type: " + typ.String())
	}
}

func structEncodeFuncOf(typ reflect.Type, version int16) encodeFunc {
	type field struct {
		encode encodeFunc
		index  int
	}
	var fields []field
	forEachStructField(typ, func(ftyp reflect.Type, index int, tag string) {
		forEachStructTag(tag, func(tag structTag) bool {
			if tag.MinVersion <= version && version <= tag.MaxVersion {
				fields = append(fields, field{
					encode: encodeFuncOf(ftyp, version, tag),
					index:  index,
				})
				return false
			}
			return true
		})
	})
	return func(e *encoder, v reflect.Value) {
		for _, f := range fields {
			f.encode(e, v.Field(f.index))
		}
	}
}

func arrayEncodeFuncOf(typ reflect.Type, version int16, tag structTag) encodeFunc {
	elemFunc := encodeFuncOf(typ.Elem(), version, tag)
	return func(e *encoder, v reflect.Value) {
		if v.IsNil() {
			e.writeInt32(-1)
			return
		}
		n := v.Len()
		e.writeInt32(int32(n))
		for i := 0; i < n; i++ {
			elemFunc(e, v.Index(i))
		}
	}
}
