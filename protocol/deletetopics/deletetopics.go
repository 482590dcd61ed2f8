// Package deletetopics implements the Kafka DeleteTopics request and
// response.
package deletetopics

import "github.com/kafkawire/broker/protocol"

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	TopicNames []string `kafka:"min=v0,max=v3"`
	TimeoutMs  int32    `kafka:"min=v0,max=v3"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DeleteTopics }

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v1,max=v3"`
	Responses      []ResponseTopic `kafka:"min=v0,max=v3"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DeleteTopics }

type ResponseTopic struct {
	Name      string `kafka:"min=v0,max=v3"`
	ErrorCode int16  `kafka:"min=v0,max=v3"`
}
