package broker

import (
	"context"
	"math/rand"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/metadata"
)

// Metadata requests cluster metadata for the given topics (nil or empty
// fetches every topic the broker knows about). The topic list is shuffled
// before dispatch, the same fairness precaution Fetch applies to
// partitions.
func (b *Broker) Metadata(ctx context.Context, topics []string) (*metadata.Response, error) {
	shuffled := append([]string(nil), topics...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	req := &metadata.Request{
		TopicNames:             shuffled,
		AllowAutoTopicCreation: b.config.allowAutoTopicCreation(),
	}
	resp, err := b.send(ctx, protocol.Metadata, req)
	if err != nil {
		return nil, err
	}
	return resp.(*metadata.Response), nil
}
