package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/listoffsets"
	"github.com/kafkawire/broker/protocol/offsetcommit"
	"github.com/kafkawire/broker/protocol/offsetfetch"
)

// ListOffsets looks up partition offsets at or before a timestamp (or
// listoffsets.FirstOffset/LastOffset for the log's boundaries). The
// response is normalised so every partition carries a scalar Offset and
// never the legacy v0 Offsets array: when the negotiated wire version is
// v0, the last element of Offsets is copied into Offset and Offsets is
// cleared.
func (b *Broker) ListOffsets(ctx context.Context, req *listoffsets.Request) (*listoffsets.Response, error) {
	resp, err := b.send(ctx, protocol.ListOffsets, req)
	if err != nil {
		return nil, err
	}
	res := resp.(*listoffsets.Response)
	normalizeListOffsets(res)
	return res, nil
}

func normalizeListOffsets(res *listoffsets.Response) {
	for ti := range res.Topics {
		partitions := res.Topics[ti].Partitions
		for pi := range partitions {
			p := &partitions[pi]
			if len(p.Offsets) == 0 {
				continue
			}
			p.Offset = p.Offsets[len(p.Offsets)-1]
			p.Offsets = nil
		}
	}
}

func (b *Broker) OffsetCommit(ctx context.Context, req *offsetcommit.Request) (*offsetcommit.Response, error) {
	resp, err := b.send(ctx, protocol.OffsetCommit, req)
	if err != nil {
		return nil, err
	}
	return resp.(*offsetcommit.Response), nil
}

func (b *Broker) OffsetFetch(ctx context.Context, req *offsetfetch.Request) (*offsetfetch.Response, error) {
	resp, err := b.send(ctx, protocol.OffsetFetch, req)
	if err != nil {
		return nil, err
	}
	return resp.(*offsetfetch.Response), nil
}
