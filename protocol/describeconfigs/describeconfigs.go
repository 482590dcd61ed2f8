// Package describeconfigs implements the Kafka DescribeConfigs request and
// response.
package describeconfigs

import "github.com/kafkawire/broker/protocol"

const (
	ResourceTypeTopic  int8 = 2
	ResourceTypeBroker int8 = 4
)

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	Resources       []RequestResource `kafka:"min=v0,max=v3"`
	IncludeSynonyms bool              `kafka:"min=v1,max=v3"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.DescribeConfigs }

type RequestResource struct {
	ResourceType int8     `kafka:"min=v0,max=v3"`
	ResourceName string   `kafka:"min=v0,max=v3"`
	ConfigNames  []string `kafka:"min=v0,max=v3,nullable"`
}

type Response struct {
	ThrottleTimeMs int32              `kafka:"min=v0,max=v3"`
	Resources      []ResponseResource `kafka:"min=v0,max=v3"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.DescribeConfigs }

type ResponseResource struct {
	ErrorCode     int16                 `kafka:"min=v0,max=v3"`
	ErrorMessage  string                `kafka:"min=v0,max=v3,nullable"`
	ResourceType  int8                  `kafka:"min=v0,max=v3"`
	ResourceName  string                `kafka:"min=v0,max=v3"`
	ConfigEntries []ResponseConfigEntry `kafka:"min=v0,max=v3"`
}

type ResponseConfigEntry struct {
	ConfigName     string                  `kafka:"min=v0,max=v3"`
	ConfigValue    string                  `kafka:"min=v0,max=v3,nullable"`
	ReadOnly       bool                    `kafka:"min=v0,max=v3"`
	ConfigSource   int8                    `kafka:"min=v0,max=v3"`
	IsSensitive    bool                    `kafka:"min=v0,max=v3"`
	ConfigSynonyms []ResponseConfigSynonym `kafka:"min=v1,max=v3"`
}

type ResponseConfigSynonym struct {
	ConfigName   string `kafka:"min=v1,max=v3"`
	ConfigValue  string `kafka:"min=v1,max=v3,nullable"`
	ConfigSource int8   `kafka:"min=v1,max=v3"`
}
