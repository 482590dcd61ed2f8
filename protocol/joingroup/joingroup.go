// Package joingroup implements the Kafka JoinGroup request and response.
package joingroup

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupID            string            `kafka:"min=v0,max=v5"`
	SessionTimeoutMS   int32             `kafka:"min=v0,max=v5"`
	RebalanceTimeoutMS int32             `kafka:"min=v1,max=v5"`
	MemberID           string            `kafka:"min=v0,max=v5"`
	GroupInstanceID    string            `kafka:"min=v5,max=v5,nullable"`
	ProtocolType       string            `kafka:"min=v0,max=v5"`
	Protocols          []RequestProtocol `kafka:"min=v0,max=v5"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.JoinGroup }

func (r *Request) Group() string { return r.GroupID }

type RequestProtocol struct {
	Name     string `kafka:"min=v0,max=v5"`
	Metadata []byte `kafka:"min=v0,max=v5"`
}

type Response struct {
	ThrottleTimeMS int32            `kafka:"min=v2,max=v5"`
	ErrorCode      int16            `kafka:"min=v0,max=v5"`
	GenerationID   int32            `kafka:"min=v0,max=v5"`
	ProtocolName   string           `kafka:"min=v0,max=v5"`
	LeaderID       string           `kafka:"min=v0,max=v5"`
	MemberID       string           `kafka:"min=v0,max=v5"`
	Members        []ResponseMember `kafka:"min=v0,max=v5"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.JoinGroup }

type ResponseMember struct {
	MemberID        string `kafka:"min=v0,max=v5"`
	GroupInstanceID string `kafka:"min=v5,max=v5,nullable"`
	Metadata        []byte `kafka:"min=v0,max=v5"`
}
