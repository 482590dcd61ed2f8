// Package leavegroup implements the Kafka LeaveGroup request and response.
package leavegroup

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupID  string `kafka:"min=v0,max=v3"`
	MemberID string `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.LeaveGroup }

func (r *Request) Group() string { return r.GroupID }

type Response struct {
	ErrorCode      int16 `kafka:"min=v0,max=v3"`
	ThrottleTimeMS int32 `kafka:"min=v1,max=v3"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.LeaveGroup }
