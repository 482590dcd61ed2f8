// Package offsetfetch implements the Kafka OffsetFetch request and response.
package offsetfetch

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupID       string         `kafka:"min=v0,max=v5"`
	Topics        []RequestTopic `kafka:"min=v0,max=v5"`
	RequireStable bool           `kafka:"min=v5,max=v5"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.OffsetFetch }

type RequestTopic struct {
	Name             string  `kafka:"min=v0,max=v5"`
	PartitionIndexes []int32 `kafka:"min=v0,max=v5"`
}

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v3,max=v5"`
	Topics         []ResponseTopic `kafka:"min=v0,max=v5"`
	ErrorCode      int16           `kafka:"min=v2,max=v5"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.OffsetFetch }

type ResponseTopic struct {
	Name       string              `kafka:"min=v0,max=v5"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v5"`
}

type ResponsePartition struct {
	PartitionIndex       int32  `kafka:"min=v0,max=v5"`
	CommittedOffset      int64  `kafka:"min=v0,max=v5"`
	CommittedLeaderEpoch int32  `kafka:"min=v5,max=v5"`
	Metadata             string `kafka:"min=v0,max=v5,nullable"`
	ErrorCode            int16  `kafka:"min=v0,max=v5"`
}
