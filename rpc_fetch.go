package broker

import (
	"context"
	"math/rand"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/fetch"
)

// FetchPartition is one partition entry in a Fetch call, grouped by topic
// in FetchTopic the way a caller naturally builds the request.
type FetchPartition struct {
	Partition          int32
	CurrentLeaderEpoch int32
	FetchOffset        int64
	LogStartOffset     int64
	PartitionMaxBytes  int32
}

// FetchTopic groups the partitions a caller wants fetched from one topic.
type FetchTopic struct {
	Topic      string
	Partitions []FetchPartition
}

type fetchPair struct {
	topic string
	part  FetchPartition
}

// shuffleFetchTopics flattens topics to (topic, partition) pairs, shuffles
// them (KIP-74 fairness: don't always serve the same partitions first
// under maxBytes pressure), then re-groups consecutive pairs sharing a
// topic back into one entry.
func shuffleFetchTopics(topics []FetchTopic) []FetchTopic {
	var pairs []fetchPair
	for _, t := range topics {
		for _, p := range t.Partitions {
			pairs = append(pairs, fetchPair{topic: t.Topic, part: p})
		}
	}
	rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	var out []FetchTopic
	for _, pr := range pairs {
		if n := len(out); n > 0 && out[n-1].Topic == pr.topic {
			out[n-1].Partitions = append(out[n-1].Partitions, pr.part)
			continue
		}
		out = append(out, FetchTopic{Topic: pr.topic, Partitions: []FetchPartition{pr.part}})
	}
	return out
}

// Fetch issues a Fetch request. replicaID, isolationLevel, maxWaitTime,
// minBytes, and maxBytes are sent exactly as given: no default value
// (replica id -1, READ_COMMITTED, minBytes 1, and so on) is substituted for
// a zero argument.
func (b *Broker) Fetch(ctx context.Context, replicaID int32, isolationLevel int8, maxWaitTime int32, minBytes, maxBytes int32, rackID string, topics []FetchTopic) (*fetch.Response, error) {
	shuffled := shuffleFetchTopics(topics)

	req := &fetch.Request{
		ReplicaID:      replicaID,
		MaxWaitTime:    maxWaitTime,
		MinBytes:       minBytes,
		MaxBytes:       maxBytes,
		IsolationLevel: isolationLevel,
		RackID:         rackID,
	}
	req.Topics = make([]fetch.RequestTopic, len(shuffled))
	for i, t := range shuffled {
		parts := make([]fetch.RequestPartition, len(t.Partitions))
		for j, p := range t.Partitions {
			parts[j] = fetch.RequestPartition{
				Partition:          p.Partition,
				CurrentLeaderEpoch: p.CurrentLeaderEpoch,
				FetchOffset:        p.FetchOffset,
				LogStartOffset:     p.LogStartOffset,
				PartitionMaxBytes:  p.PartitionMaxBytes,
			}
		}
		req.Topics[i] = fetch.RequestTopic{Topic: t.Topic, Partitions: parts}
	}

	resp, err := b.send(ctx, protocol.Fetch, req)
	if err != nil {
		return nil, err
	}
	return resp.(*fetch.Response), nil
}
