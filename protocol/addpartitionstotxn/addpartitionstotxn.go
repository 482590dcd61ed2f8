// Package addpartitionstotxn implements the Kafka AddPartitionsToTxn
// request and response.
package addpartitionstotxn

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TransactionalID string         `kafka:"min=v0,max=v2"`
	ProducerID      int64          `kafka:"min=v0,max=v2"`
	ProducerEpoch   int16          `kafka:"min=v0,max=v2"`
	Topics          []RequestTopic `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.AddPartitionsToTxn }

type RequestTopic struct {
	Name       string  `kafka:"min=v0,max=v2"`
	Partitions []int32 `kafka:"min=v0,max=v2"`
}

type Response struct {
	ThrottleTimeMs int32            `kafka:"min=v0,max=v2"`
	Results        []ResponseResult `kafka:"min=v0,max=v2"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.AddPartitionsToTxn }

type ResponseResult struct {
	Name    string              `kafka:"min=v0,max=v2"`
	Results []ResponsePartition `kafka:"min=v0,max=v2"`
}

type ResponsePartition struct {
	PartitionIndex int32 `kafka:"min=v0,max=v2"`
	ErrorCode      int16 `kafka:"min=v0,max=v2"`
}
