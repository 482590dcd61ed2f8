package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/produce"
)

// Produce sends req as built by the caller. The documented defaults
// (acks=-1, timeout=30000ms, no compression) are not injected here: Acks=0
// and Timeout=0 are both meaningful wire values, so Produce never
// second-guesses a caller-supplied zero. Record batches encoded with
// protocol.WriteRecordBatch always carry producer id -1 and producer epoch
// -1; the ProducerID and ProducerEpoch fields of the RecordBatch are not
// written.
func (b *Broker) Produce(ctx context.Context, req *produce.Request) (*produce.Response, error) {
	resp, err := b.send(ctx, protocol.Produce, req)
	if err != nil {
		return nil, err
	}
	return resp.(*produce.Response), nil
}
