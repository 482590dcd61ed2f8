// Package heartbeat implements the Kafka Heartbeat request and response.
package heartbeat

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupID         string `kafka:"min=v0,max=v3"`
	GenerationID    int32  `kafka:"min=v0,max=v3"`
	MemberID        string `kafka:"min=v0,max=v3"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.Heartbeat }

func (r *Request) Group() string { return r.GroupID }

type Response struct {
	ErrorCode      int16 `kafka:"min=v0,max=v3"`
	ThrottleTimeMs int32 `kafka:"min=v1,max=v3"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.Heartbeat }
