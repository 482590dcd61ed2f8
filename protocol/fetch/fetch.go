// Package fetch implements the Kafka Fetch request and response.
package fetch

import (
	"bytes"

	"github.com/kafkawire/broker/protocol"
)

func init() {
	protocol.Register(&Request{}, &Response{})
}

type Request struct {
	ReplicaID       int32            `kafka:"min=v0,max=v11"`
	MaxWaitTime     int32            `kafka:"min=v0,max=v11"`
	MinBytes        int32            `kafka:"min=v0,max=v11"`
	MaxBytes        int32            `kafka:"min=v3,max=v11"`
	IsolationLevel  int8             `kafka:"min=v4,max=v11"`
	SessionID       int32            `kafka:"min=v7,max=v11"`
	SessionEpoch    int32            `kafka:"min=v7,max=v11"`
	Topics          []RequestTopic   `kafka:"min=v0,max=v11"`
	ForgottenTopics []ForgottenTopic `kafka:"min=v7,max=v11"`
	RackID          string           `kafka:"min=v11,max=v11"`
}

func (r *Request) ApiKey() protocol.ApiKey { return protocol.Fetch }

type RequestTopic struct {
	Topic      string             `kafka:"min=v0,max=v11"`
	Partitions []RequestPartition `kafka:"min=v0,max=v11"`
}

type RequestPartition struct {
	Partition          int32 `kafka:"min=v0,max=v11"`
	CurrentLeaderEpoch int32 `kafka:"min=v9,max=v11"`
	FetchOffset        int64 `kafka:"min=v0,max=v11"`
	LogStartOffset     int64 `kafka:"min=v5,max=v11"`
	PartitionMaxBytes  int32 `kafka:"min=v0,max=v11"`
}

type ForgottenTopic struct {
	Topic      string  `kafka:"min=v7,max=v11"`
	Partitions []int32 `kafka:"min=v7,max=v11"`
}

type Response struct {
	ThrottleTimeMs int32           `kafka:"min=v1,max=v11"`
	Topics         []ResponseTopic `kafka:"min=v0,max=v11"`
}

func (r *Response) ApiKey() protocol.ApiKey { return protocol.Fetch }

type ResponseTopic struct {
	Topic      string              `kafka:"min=v0,max=v11"`
	Partitions []ResponsePartition `kafka:"min=v0,max=v11"`
}

type ResponsePartition struct {
	Partition            int32         `kafka:"min=v0,max=v11"`
	ErrorCode            int16         `kafka:"min=v0,max=v11"`
	HighWatermark        int64         `kafka:"min=v0,max=v11"`
	LastStableOffset     int64         `kafka:"min=v4,max=v11"`
	LogStartOffset       int64         `kafka:"min=v5,max=v11"`
	AbortedTransactions  []Transaction `kafka:"min=v4,max=v11"`
	PreferredReadReplica int32         `kafka:"min=v11,max=v11"`
	RecordSet            []byte        `kafka:"min=v0,max=v11"`
}

// Records decodes the v2 record batch carried by this partition's
// RecordSet field.
func (p *ResponsePartition) Records() (*protocol.RecordBatch, error) {
	if len(p.RecordSet) == 0 {
		return nil, nil
	}
	return protocol.ReadRecordBatch(bytes.NewReader(p.RecordSet))
}

type Transaction struct {
	ProducerID  int64 `kafka:"min=v4,max=v11"`
	FirstOffset int64 `kafka:"min=v4,max=v11"`
}
