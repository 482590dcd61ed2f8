// Package deleterecords implements the Kafka DeleteRecords request and
// response.
package deleterecords

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Topics    []RequestTopic `kafka:"min=v0,max=v1"`
	TimeoutMs int32          `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DeleteRecords }

type RequestTopic struct {
	Name       string             `kafka:"min=v0,max=v1"`
	Partitions []RequestPartition `kafka:"min=v0,max=v1"`
}

type RequestPartition struct {
	Partition int32 `kafka:"min=v0,max=v1"`
	Offset    int64 `kafka:"min=v0,max=v1"`
}

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v0,max=v1"`
	Topics         []ResponseTopic `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DeleteRecords }

type ResponseTopic struct {
	Name       string              `kafka:"min=v0,max=v1"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v1"`
}

type ResponsePartition struct {
	Partition    int32 `kafka:"min=v0,max=v1"`
	LowWatermark int64 `kafka:"min=v0,max=v1"`
	ErrorCode    int16 `kafka:"min=v0,max=v1"`
}
