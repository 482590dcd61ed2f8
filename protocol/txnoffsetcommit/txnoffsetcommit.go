// Package txnoffsetcommit implements the Kafka TxnOffsetCommit request and
// response.
package txnoffsetcommit

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TransactionalID string         `kafka:"min=v0,max=v2"`
	GroupID         string         `kafka:"min=v0,max=v2"`
	ProducerID      int64          `kafka:"min=v0,max=v2"`
	ProducerEpoch   int16          `kafka:"min=v0,max=v2"`
	Topics          []RequestTopic `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.TxnOffsetCommit }

func (r *Request) Group() string { return r.GroupID }

type RequestTopic struct {
	Name       string             `kafka:"min=v0,max=v2"`
	Partitions []RequestPartition `kafka:"min=v0,max=v2"`
}

type RequestPartition struct {
	Partition            int32  `kafka:"min=v0,max=v2"`
	CommittedOffset      int64  `kafka:"min=v0,max=v2"`
	CommittedLeaderEpoch int32  `kafka:"min=v2,max=v2"`
	CommittedMetadata    string `kafka:"min=v0,max=v2,nullable"`
}

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v0,max=v2"`
	Topics         []ResponseTopic `kafka:"min=v0,max=v2"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.TxnOffsetCommit }

type ResponseTopic struct {
	Name       string              `kafka:"min=v0,max=v2"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v2"`
}

type ResponsePartition struct {
	Partition int32 `kafka:"min=v0,max=v2"`
	ErrorCode int16 `kafka:"min=v0,max=v2"`
}
