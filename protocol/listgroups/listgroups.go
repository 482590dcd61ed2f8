// Package listgroups implements the Kafka ListGroups request and response.
package listgroups

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	_ struct{} `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.ListGroups }

type Response struct {
	ThrottleTimeMs int32   `kafka:"min=v1,max=v2"`
	ErrorCode      int16   `kafka:"min=v0,max=v2"`
	Groups         []Group `kafka:"min=v0,max=v2"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.ListGroups }

type Group struct {
	GroupID      string `kafka:"min=v0,max=v2"`
	ProtocolType string `kafka:"min=v0,max=v2"`
}
