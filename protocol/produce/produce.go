// Package produce implements the Kafka Produce request and response.
package produce

import (
	"bytes"

	"github.com/kafkawire/broker/protocol"
)

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TransactionalID string         `kafka:"min=v3,max=v8,nullable"`
	Acks            int16          `kafka:"min=v0,max=v8"`
	Timeout         int32          `kafka:"min=v0,max=v8"`
	Topics          []RequestTopic `kafka:"min=v0,max=v8"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.Produce }

type RequestTopic struct {
	Topic      string             `kafka:"min=v0,max=v8"`
	Partitions []RequestPartition `kafka:"min=v0,max=v8"`
}

type RequestPartition struct {
	Partition int32  `kafka:"min=v0,max=v8"`
	RecordSet []byte `kafka:"min=v0,max=v8"`
}

// SetRecords serializes rb as the v2 record batch carried by this
// partition's RecordSet field.
func (p *RequestPartition) SetRecords(rb *protocol.RecordBatch) error {
	var buf bytes.Buffer
	if err := protocol.WriteRecordBatch(&buf, rb); err != nil {
		return err
	}
	p.RecordSet = buf.Bytes()
	return nil
}

// Records decodes the v2 record batch carried by this partition's
// RecordSet field.
func (p *RequestPartition) Records() (*protocol.RecordBatch, error) {
	return protocol.ReadRecordBatch(bytes.NewReader(p.RecordSet))
}

type Response struct {
	Topics         []ResponseTopic `kafka:"min=v0,max=v8"`
	ThrottleTimeMs int32           `kafka:"min=v1,max=v8"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.Produce }

type ResponseTopic struct {
	Topic      string              `kafka:"min=v0,max=v8"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v8"`
}

type ResponsePartition struct {
	Partition      int32  `kafka:"min=v0,max=v8"`
	ErrorCode      int16  `kafka:"min=v0,max=v8"`
	BaseOffset     int64  `kafka:"min=v0,max=v8"`
	LogAppendTime  int64  `kafka:"min=v2,max=v8"`
	LogStartOffset int64  `kafka:"min=v5,max=v8"`
	ErrorMessage   string `kafka:"min=v8,max=v8,nullable"`
}
