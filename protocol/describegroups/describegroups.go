// Package describegroups implements the Kafka DescribeGroups request and
// response.
package describegroups

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupIDs []string `kafka:"min=v0,max=v4"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DescribeGroups }

type Response struct {
	ThrottleTimeMs int32   `kafka:"min=v1,max=v4"`
	Groups         []Group `kafka:"min=v0,max=v4"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DescribeGroups }

type Group struct {
	ErrorCode    int16         `kafka:"min=v0,max=v4"`
	GroupID      string        `kafka:"min=v0,max=v4"`
	State        string        `kafka:"min=v0,max=v4"`
	ProtocolType string        `kafka:"min=v0,max=v4"`
	Protocol     string        `kafka:"min=v0,max=v4"`
	Members      []GroupMember `kafka:"min=v0,max=v4"`
}

type GroupMember struct {
	MemberID         string `kafka:"min=v0,max=v4"`
	ClientID         string `kafka:"min=v0,max=v4"`
	ClientHost       string `kafka:"min=v0,max=v4"`
	MemberMetadata   []byte `kafka:"min=v0,max=v4"`
	MemberAssignment []byte `kafka:"min=v0,max=v4"`
}
