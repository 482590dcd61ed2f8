// Package listoffsets implements the Kafka ListOffsets request and response.
package listoffsets

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

const (
	FirstOffset int64 = -2
	LastOffset  int64 = -1
)

type Request struct {
	ReplicaID      int32          `kafka:"min=v0,max=v5"`
	IsolationLevel int8           `kafka:"min=v2,max=v5"`
	Topics         []RequestTopic `kafka:"min=v0,max=v5"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.ListOffsets }

type RequestTopic struct {
	Topic      string             `kafka:"min=v0,max=v5"`
	Partitions []RequestPartition `kafka:"min=v0,max=v5"`
}

type RequestPartition struct {
	Partition          int32 `kafka:"min=v0,max=v5"`
	CurrentLeaderEpoch int32 `kafka:"min=v4,max=v5"`
	Timestamp          int64 `kafka:"min=v0,max=v5"`
	MaxNumOffsets      int32 `kafka:"min=v0,max=v0"`
}

type Response struct {
	Topics []ResponseTopic `kafka:"min=v0,max=v5"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.ListOffsets }

type ResponseTopic struct {
	Topic      string              `kafka:"min=v0,max=v5"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v5"`
}

// ResponsePartition carries both the legacy v0 Offsets array and the v1+
// scalar Offset; only one of the two is populated on the wire for a given
// negotiated version. Broker.ListOffsets normalises this into Offset alone
// before returning to the caller (last element of Offsets, per the v1+
// wire shape Kafka itself adopted).
type ResponsePartition struct {
	ThrottleTimeMs int32   `kafka:"min=v2,max=v5"`
	Partition      int32   `kafka:"min=v0,max=v5"`
	ErrorCode      int16   `kafka:"min=v0,max=v5"`
	Offsets        []int64 `kafka:"min=v0,max=v0"`
	Timestamp      int64   `kafka:"min=v1,max=v5"`
	Offset         int64   `kafka:"min=v1,max=v5"`
	LeaderEpoch    int32   `kafka:"min=v4,max=v5"`
}
