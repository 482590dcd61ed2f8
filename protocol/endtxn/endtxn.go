// Package endtxn implements the Kafka EndTxn request and response.
package endtxn

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TransactionalID string `kafka:"min=v0,max=v2"`
	ProducerID      int64  `kafka:"min=v0,max=v2"`
	ProducerEpoch   int16  `kafka:"min=v0,max=v2"`
	Committed       bool   `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.EndTxn }

type Response struct {
	ThrottleTimeMs int32 `kafka:"min=v0,max=v2"`
	ErrorCode      int16 `kafka:"min=v0,max=v2"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.EndTxn }
