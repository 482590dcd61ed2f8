// Package deletegroups implements the Kafka DeleteGroups request and
// response.
package deletegroups

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	GroupIDs []string `kafka:"min=v0,max=v2"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DeleteGroups }

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v0,max=v2"`
	Responses      []ResponseGroup `kafka:"min=v0,max=v2"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DeleteGroups }

type ResponseGroup struct {
	GroupID   string `kafka:"min=v0,max=v2"`
	ErrorCode int16  `kafka:"min=v0,max=v2"`
}
