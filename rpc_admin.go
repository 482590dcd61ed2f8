package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/alterconfigs"
	"github.com/kafkawire/broker/protocol/createpartitions"
	"github.com/kafkawire/broker/protocol/createtopics"
	"github.com/kafkawire/broker/protocol/deleterecords"
	"github.com/kafkawire/broker/protocol/deletetopics"
	"github.com/kafkawire/broker/protocol/describeconfigs"
	"github.com/kafkawire/broker/protocol/initproducerid"
)

func (b *Broker) CreateTopics(ctx context.Context, req *createtopics.Request) (*createtopics.Response, error) {
	resp, err := b.send(ctx, protocol.CreateTopics, req)
	if err != nil {
		return nil, err
	}
	return resp.(*createtopics.Response), nil
}

func (b *Broker) CreatePartitions(ctx context.Context, req *createpartitions.Request) (*createpartitions.Response, error) {
	resp, err := b.send(ctx, protocol.CreatePartitions, req)
	if err != nil {
		return nil, err
	}
	return resp.(*createpartitions.Response), nil
}

func (b *Broker) DeleteTopics(ctx context.Context, req *deletetopics.Request) (*deletetopics.Response, error) {
	resp, err := b.send(ctx, protocol.DeleteTopics, req)
	if err != nil {
		return nil, err
	}
	return resp.(*deletetopics.Response), nil
}

func (b *Broker) DescribeConfigs(ctx context.Context, req *describeconfigs.Request) (*describeconfigs.Response, error) {
	resp, err := b.send(ctx, protocol.DescribeConfigs, req)
	if err != nil {
		return nil, err
	}
	return resp.(*describeconfigs.Response), nil
}

func (b *Broker) AlterConfigs(ctx context.Context, req *alterconfigs.Request) (*alterconfigs.Response, error) {
	resp, err := b.send(ctx, protocol.AlterConfigs, req)
	if err != nil {
		return nil, err
	}
	return resp.(*alterconfigs.Response), nil
}

func (b *Broker) DeleteRecords(ctx context.Context, req *deleterecords.Request) (*deleterecords.Response, error) {
	resp, err := b.send(ctx, protocol.DeleteRecords, req)
	if err != nil {
		return nil, err
	}
	return resp.(*deleterecords.Response), nil
}

func (b *Broker) InitProducerID(ctx context.Context, req *initproducerid.Request) (*initproducerid.Response, error) {
	resp, err := b.send(ctx, protocol.InitProducerId, req)
	if err != nil {
		return nil, err
	}
	return resp.(*initproducerid.Response), nil
}
