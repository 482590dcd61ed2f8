// Package alterconfigs implements the Kafka AlterConfigs request and
// response.
package alterconfigs

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Resources    []RequestResource `kafka:"min=v0,max=v1"`
	ValidateOnly bool              `kafka:"min=v0,max=v1"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.AlterConfigs }

type RequestResource struct {
	ResourceType int8            `kafka:"min=v0,max=v1"`
	ResourceName string          `kafka:"min=v0,max=v1"`
	Configs      []RequestConfig `kafka:"min=v0,max=v1"`
}

type RequestConfig struct {
	Name  string `kafka:"min=v0,max=v1"`
	Value string `kafka:"min=v0,max=v1,nullable"`
}

type Response struct {
	ThrottleTimeMs int32              `kafka:"min=v0,max=v1"`
	Responses      []ResponseResource `kafka:"min=v0,max=v1"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.AlterConfigs }

type ResponseResource struct {
	ErrorCode    int16  `kafka:"min=v0,max=v1"`
	ErrorMessage string `kafka:"min=v0,max=v1,nullable"`
	ResourceType int8   `kafka:"min=v0,max=v1"`
	ResourceName string `kafka:"min=v0,max=v1"`
}
