// Package describeacls implements the Kafka DescribeAcls request and
// response.
package describeacls

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Filters []ACLFilter `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DescribeAcls }

type ACLFilter struct {
	ResourceTypeFilter        int8   `kafka:"min=v0,max=v1"`
	ResourceNameFilter        string `kafka:"min=v0,max=v1,nullable"`
	ResourcePatternTypeFilter int8   `kafka:"min=v1,max=v1"`
	PrincipalFilter           string `kafka:"min=v0,max=v1,nullable"`
	HostFilter                string `kafka:"min=v0,max=v1,nullable"`
	Operation                 int8   `kafka:"min=v0,max=v1"`
	PermissionType            int8   `kafka:"min=v0,max=v1"`
}

type Response struct {
	ThrottleTimeMs int32      `kafka:"min=v0,max=v1"`
	ErrorCode      int16      `kafka:"min=v0,max=v1"`
	ErrorMessage   string     `kafka:"min=v0,max=v1,nullable"`
	Resources      []Resource `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DescribeAcls }

type Resource struct {
	ResourceType int8          `kafka:"min=v0,max=v1"`
	ResourceName string        `kafka:"min=v0,max=v1"`
	ACLs         []ResponseACL `kafka:"min=v0,max=v1"`
}

type ResponseACL struct {
	Principal      string `kafka:"min=v0,max=v1"`
	Host           string `kafka:"min=v0,max=v1"`
	Operation      int8   `kafka:"min=v0,max=v1"`
	PermissionType int8   `kafka:"min=v0,max=v1"`
}
