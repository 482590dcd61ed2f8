package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/createacls"
	"github.com/kafkawire/broker/protocol/deleteacls"
	"github.com/kafkawire/broker/protocol/describeacls"
)

// CreateAcls creates the given ACLs. The caller-facing parameter is named
// acls; it is relabeled to the wire request's Creations field, matching
// the broker's convention of naming the outgoing field after what the
// request actually carries.
func (b *Broker) CreateAcls(ctx context.Context, acls []createacls.RequestACL) (*createacls.Response, error) {
	req := &createacls.Request{Creations: acls}
	resp, err := b.send(ctx, protocol.CreateAcls, req)
	if err != nil {
		return nil, err
	}
	return resp.(*createacls.Response), nil
}

func (b *Broker) DescribeAcls(ctx context.Context, req *describeacls.Request) (*describeacls.Response, error) {
	resp, err := b.send(ctx, protocol.DescribeAcls, req)
	if err != nil {
		return nil, err
	}
	return resp.(*describeacls.Response), nil
}

func (b *Broker) DeleteAcls(ctx context.Context, req *deleteacls.Request) (*deleteacls.Response, error) {
	resp, err := b.send(ctx, protocol.DeleteAcls, req)
	if err != nil {
		return nil, err
	}
	return resp.(*deleteacls.Response), nil
}
