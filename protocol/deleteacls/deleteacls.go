// Package deleteacls implements the Kafka DeleteAcls request and response.
package deleteacls

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Filters []RequestFilter `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DeleteAcls }

type RequestFilter struct {
	ResourceTypeFilter        int8   `kafka:"min=v0,max=v1"`
	ResourceNameFilter        string `kafka:"min=v0,max=v1,nullable"`
	ResourcePatternTypeFilter int8   `kafka:"min=v1,max=v1"`
	PrincipalFilter           string `kafka:"min=v0,max=v1,nullable"`
	HostFilter                string `kafka:"min=v0,max=v1,nullable"`
	Operation                 int8   `kafka:"min=v0,max=v1"`
	PermissionType            int8   `kafka:"min=v0,max=v1"`
}

type Response struct {
	ThrottleTimeMs int32          `kafka:"min=v0,max=v1"`
	FilterResults  []FilterResult `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DeleteAcls }

type FilterResult struct {
	ErrorCode    int16         `kafka:"min=v0,max=v1"`
	ErrorMessage string        `kafka:"min=v0,max=v1,nullable"`
	MatchingACLs []MatchingACL `kafka:"min=v0,max=v1"`
}

type MatchingACL struct {
	ErrorCode           int16  `kafka:"min=v0,max=v1"`
	ErrorMessage        string `kafka:"min=v0,max=v1,nullable"`
	ResourceType        int8   `kafka:"min=v0,max=v1"`
	ResourceName        string `kafka:"min=v0,max=v1"`
	ResourcePatternType int8   `kafka:"min=v1,max=v1"`
	Principal           string `kafka:"min=v0,max=v1"`
	Host                string `kafka:"min=v0,max=v1"`
	Operation           int8   `kafka:"min=v0,max=v1"`
	PermissionType      int8   `kafka:"min=v0,max=v1"`
}
