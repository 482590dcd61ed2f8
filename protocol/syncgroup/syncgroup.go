// Package syncgroup implements the Kafka SyncGroup request and response.
package syncgroup

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupID      string              `kafka:"min=v0,max=v3"`
	GenerationID int32               `kafka:"min=v0,max=v3"`
	MemberID     string              `kafka:"min=v0,max=v3"`
	Assignments  []RequestAssignment `kafka:"min=v0,max=v3"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.SyncGroup }

func (r *Request) Group() string { return r.GroupID }

type RequestAssignment struct {
	MemberID   string `kafka:"min=v0,max=v3"`
	Assignment []byte `kafka:"min=v0,max=v3"`
}

type Response struct {
	ErrorCode      int16  `kafka:"min=v0,max=v3"`
	ThrottleTimeMS int32  `kafka:"min=v1,max=v3"`
	Assignments    []byte `kafka:"min=v0,max=v3"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.SyncGroup }
