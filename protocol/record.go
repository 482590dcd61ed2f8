package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"time"

	"github.com/kafkawire/broker/compress"
)

// ErrNoRecord is returned when attempting to write an empty RecordSet.
var ErrNoRecord = errors.New("protocol: no records in record set")

// Attributes is a bitset carried in a record batch header.
type Attributes int16

const (
	AttrGzip          Attributes = Attributes(compress.Gzip)
	AttrSnappy        Attributes = Attributes(compress.Snappy)
	AttrLz4           Attributes = Attributes(compress.Lz4)
	AttrZstd          Attributes = Attributes(compress.Zstd)
	AttrTransactional Attributes = 1 << 4
	AttrControl       Attributes = 1 << 5
)

func (a Attributes) Compression() compress.Compression {
	return compress.Compression(a & 7)
}

func (a Attributes) Transactional() bool { return a&AttrTransactional != 0 }

func (a Attributes) Control() bool { return a&AttrControl != 0 }

// Header is a single entry in a record's header list.
type Header struct {
	Key   string
	Value []byte
}

// Record is a single entry exchanged in Produce requests and Fetch
// responses.
type Record struct {
	Offset  int64
	Time    time.Time
	Key     []byte
	Value   []byte
	Headers []Header
}

// RecordBatch carries the batch-level metadata of a v2 record set, the
// only format this codec produces and consumes.
type RecordBatch struct {
	PartitionLeaderEpoch int32
	Attributes           Attributes
	BaseOffset           int64
	LastOffsetDelta      int32
	FirstTimestamp       time.Time
	MaxTimestamp         time.Time
	ProducerID           int64
	ProducerEpoch        int16
	BaseSequence         int32
	Records              []Record
}

const recordBatchMagic = 2

// ReadRecordBatch decodes a single v2-format record batch from r.
func ReadRecordBatch(r io.Reader) (*RecordBatch, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d := &decoder{reader: newByteReader(buf), remain: len(buf)}

	baseOffset := d.readInt64()
	batchLength := d.readInt32()
	if d.err != nil {
		return nil, d.err
	}

	body := d.read(int(batchLength))
	if d.err != nil {
		return nil, d.err
	}

	bd := &decoder{reader: newByteReader(body), remain: len(body)}

	partitionLeaderEpoch := bd.readInt32()
	magic := bd.readInt8()
	if magic != recordBatchMagic {
		return nil, fmt.Errorf("protocol: unsupported record batch magic byte %d", magic)
	}

	crc := bd.readInt32()
	checksum := crc32.Checksum(body[9:], crc32c)
	if checksum != uint32(crc) {
		return nil, fmt.Errorf("protocol: record batch crc32 mismatch (computed=%d found=%d)", checksum, uint32(crc))
	}

	attributes := Attributes(bd.readInt16())
	lastOffsetDelta := bd.readInt32()
	firstTimestamp := bd.readInt64()
	maxTimestamp := bd.readInt64()
	producerID := bd.readInt64()
	producerEpoch := bd.readInt16()
	baseSequence := bd.readInt32()
	numRecords := bd.readInt32()
	if bd.err != nil {
		return nil, bd.err
	}

	consumed := len(body) - bd.remain
	recordsReader := io.Reader(newByteReader(body[consumed:]))
	if codec := attributes.Compression().Codec(); codec != nil {
		decompressor := codec.NewReader(recordsReader)
		defer decompressor.Close()
		recordsReader = decompressor
	}

	rd := &decoder{reader: recordsReader, remain: 1 << 30}
	records := make([]Record, 0, numRecords)
	for i := int32(0); i < numRecords && rd.err == nil; i++ {
		rec, err := readRecord(rd, baseOffset, firstTimestamp)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &RecordBatch{
		PartitionLeaderEpoch: partitionLeaderEpoch,
		Attributes:           attributes,
		BaseOffset:           baseOffset,
		LastOffsetDelta:      lastOffsetDelta,
		FirstTimestamp:       MakeTime(firstTimestamp),
		MaxTimestamp:         MakeTime(maxTimestamp),
		ProducerID:           producerID,
		ProducerEpoch:        producerEpoch,
		BaseSequence:         baseSequence,
		Records:              records,
	}, nil
}

func readRecord(d *decoder, baseOffset, firstTimestamp int64) (Record, error) {
	_ = d.readVarInt() // record length, recomputed on encode
	_ = d.readInt8()   // record attributes, unused
	timestampDelta := d.readVarInt()
	offsetDelta := d.readVarInt()
	key := d.readVarBytes()
	value := d.readVarBytes()

	var headers []Header
	if n := d.readVarInt(); n > 0 {
		headers = make([]Header, n)
		for i := range headers {
			headers[i] = Header{Key: d.readVarString(), Value: d.readVarBytes()}
		}
	}

	if d.err != nil {
		return Record{}, d.err
	}

	return Record{
		Offset:  baseOffset + offsetDelta,
		Time:    MakeTime(firstTimestamp + timestampDelta),
		Key:     key,
		Value:   value,
		Headers: headers,
	}, nil
}

// WriteRecordBatch encodes rb to w in v2 format, compressing the record
// payload with the codec named by rb.Attributes if one is set. The batch
// header always carries -1 for partition leader epoch, producer id, producer
// epoch and base sequence; those fields of rb are not written.
// LastOffsetDelta and the timestamps are recomputed from rb.Records.
func WriteRecordBatch(w io.Writer, rb *RecordBatch) error {
	if len(rb.Records) == 0 {
		return ErrNoRecord
	}

	var recordBody bytes.Buffer
	re := &encoder{writer: &recordBody}

	firstTimestamp := Timestamp(rb.Records[0].Time)
	maxTimestamp := firstTimestamp
	lastOffsetDelta := int32(0)

	for i, r := range rb.Records {
		t := Timestamp(r.Time)
		if t > maxTimestamp {
			maxTimestamp = t
		}
		offsetDelta := int64(i)
		lastOffsetDelta = int32(offsetDelta)
		timestampDelta := t - firstTimestamp

		length := 1 +
			sizeOfVarInt(timestampDelta) +
			sizeOfVarInt(offsetDelta) +
			varBytesSize(r.Key) +
			varBytesSize(r.Value) +
			sizeOfVarInt(int64(len(r.Headers)))
		for _, h := range r.Headers {
			length += sizeOfVarInt(int64(len(h.Key))) + len(h.Key) + varBytesSize(h.Value)
		}

		re.writeVarInt(int64(length))
		re.writeInt8(0)
		re.writeVarInt(timestampDelta)
		re.writeVarInt(offsetDelta)
		re.writeVarNullBytes(r.Key)
		re.writeVarNullBytes(r.Value)
		re.writeVarInt(int64(len(r.Headers)))
		for _, h := range r.Headers {
			re.writeVarString(h.Key)
			re.writeVarNullBytes(h.Value)
		}
	}
	if re.err != nil {
		return re.err
	}

	payload := recordBody.Bytes()
	if codec := rb.Attributes.Compression().Codec(); codec != nil {
		var compressed bytes.Buffer
		cw := codec.NewWriter(&compressed)
		if _, err := cw.Write(payload); err != nil {
			return err
		}
		if err := cw.Close(); err != nil {
			return err
		}
		payload = compressed.Bytes()
	}

	var body bytes.Buffer
	be := &encoder{writer: &body}
	be.writeInt32(-1) // partition leader epoch, filled by the broker
	be.writeInt8(recordBatchMagic)
	be.writeInt32(0) // crc placeholder
	be.writeInt16(int16(rb.Attributes))
	be.writeInt32(lastOffsetDelta)
	be.writeInt64(firstTimestamp)
	be.writeInt64(maxTimestamp)
	be.writeInt64(-1) // producer id
	be.writeInt16(-1) // producer epoch
	be.writeInt32(-1) // base sequence
	be.writeInt32(int32(len(rb.Records)))
	if _, err := be.writer.Write(payload); err != nil {
		return err
	}
	if be.err != nil {
		return be.err
	}

	buf := body.Bytes()
	checksum := crc32.Checksum(buf[9:], crc32c)
	buf[5] = byte(checksum >> 24)
	buf[6] = byte(checksum >> 16)
	buf[7] = byte(checksum >> 8)
	buf[8] = byte(checksum)

	oe := &encoder{writer: w}
	oe.writeInt64(rb.BaseOffset)
	oe.writeInt32(int32(len(buf)))
	if oe.err != nil {
		return oe.err
	}
	_, err := w.Write(buf)
	return err
}

var crc32c = crc32.MakeTable(crc32.Castagnoli)

func varBytesSize(b []byte) int {
	if b == nil {
		return sizeOfVarInt(-1)
	}
	return sizeOfVarInt(int64(len(b))) + len(b)
}

// byteReader is a minimal io.Reader over an in-memory buffer, used instead
// of bytes.Reader so decoder's read path never hits a partial-read branch
// for data already fully resident in memory.
type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(b []byte) *byteReader { return &byteReader{buf: b} }

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}
