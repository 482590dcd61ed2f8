package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/addoffsetstotxn"
	"github.com/kafkawire/broker/protocol/addpartitionstotxn"
	"github.com/kafkawire/broker/protocol/endtxn"
	"github.com/kafkawire/broker/protocol/txnoffsetcommit"
)

func (b *Broker) AddPartitionsToTxn(ctx context.Context, req *addpartitionstotxn.Request) (*addpartitionstotxn.Response, error) {
	resp, err := b.send(ctx, protocol.AddPartitionsToTxn, req)
	if err != nil {
		return nil, err
	}
	return resp.(*addpartitionstotxn.Response), nil
}

func (b *Broker) AddOffsetsToTxn(ctx context.Context, req *addoffsetstotxn.Request) (*addoffsetstotxn.Response, error) {
	resp, err := b.send(ctx, protocol.AddOffsetsToTxn, req)
	if err != nil {
		return nil, err
	}
	return resp.(*addoffsetstotxn.Response), nil
}

func (b *Broker) TxnOffsetCommit(ctx context.Context, req *txnoffsetcommit.Request) (*txnoffsetcommit.Response, error) {
	resp, err := b.send(ctx, protocol.TxnOffsetCommit, req)
	if err != nil {
		return nil, err
	}
	return resp.(*txnoffsetcommit.Response), nil
}

func (b *Broker) EndTxn(ctx context.Context, req *endtxn.Request) (*endtxn.Response, error) {
	resp, err := b.send(ctx, protocol.EndTxn, req)
	if err != nil {
		return nil, err
	}
	return resp.(*endtxn.Response), nil
}
