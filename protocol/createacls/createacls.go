// Package createacls implements the Kafka CreateAcls request and response.
package createacls

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Creations []RequestACL `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.CreateAcls }

type RequestACL struct {
	ResourceType        int8   `kafka:"min=v0,max=v1"`
	ResourceName        string `kafka:"min=v0,max=v1"`
	ResourcePatternType int8   `kafka:"min=v1,max=v1"`
	Principal           string `kafka:"min=v0,max=v1"`
	Host                string `kafka:"min=v0,max=v1"`
	Operation            int8  `kafka:"min=v0,max=v1"`
	PermissionType       int8  `kafka:"min=v0,max=v1"`
}

type Response struct {
	ThrottleTimeMs int32          `kafka:"min=v0,max=v1"`
	Results        []ResponseACL `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.CreateAcls }

type ResponseACL struct {
	ErrorCode    int16  `kafka:"min=v0,max=v1"`
	ErrorMessage string `kafka:"min=v0,max=v1,nullable"`
}
