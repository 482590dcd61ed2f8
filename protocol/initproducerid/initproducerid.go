// Package initproducerid implements the Kafka InitProducerId request and
// response.
package initproducerid

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TransactionalID      string `kafka:"min=v0,max=v1,nullable"`
	TransactionTimeoutMs int32  `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.InitProducerId }

type Response struct {
	ThrottleTimeMs int32 `kafka:"min=v0,max=v1"`
	ErrorCode      int16 `kafka:"min=v0,max=v1"`
	ProducerID     int64 `kafka:"min=v0,max=v1"`
	ProducerEpoch  int16 `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.InitProducerId }
