// Package saslhandshake implements the Kafka SaslHandshake request and
// response, the pre-KIP-152 mechanism negotiation step.
package saslhandshake

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Mechanism string `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.SaslHandshake }

type Response struct {
	ErrorCode         int16    `kafka:"min=v0,max=v1"`
	EnabledMechanisms []string `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.SaslHandshake }
