package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/apiversions"
	"github.com/kafkawire/broker/protocol/saslauthenticate"
	"github.com/kafkawire/broker/protocol/saslhandshake"
)

// ApiVersions exposes the raw ApiVersions RPC directly, on top of the
// connect-time negotiation that already runs internally. Useful for
// diagnostics or re-probing a broker's advertised ranges out of band.
func (b *Broker) ApiVersions(ctx context.Context) (*apiversions.Response, error) {
	resp, err := b.send(ctx, protocol.ApiVersions, &apiversions.Request{})
	if err != nil {
		return nil, err
	}
	return resp.(*apiversions.Response), nil
}

// SaslHandshake exposes the raw SaslHandshake RPC directly. Broker.connect
// already drives this as part of authenticate; this method is for callers
// that want to probe mechanism support without going through a full
// connect/authenticate cycle.
func (b *Broker) SaslHandshake(ctx context.Context, mechanism string) (*saslhandshake.Response, error) {
	resp, err := b.send(ctx, protocol.SaslHandshake, &saslhandshake.Request{Mechanism: mechanism})
	if err != nil {
		return nil, err
	}
	return resp.(*saslhandshake.Response), nil
}

// SaslAuthenticate exposes the raw KIP-152 SaslAuthenticate RPC directly.
func (b *Broker) SaslAuthenticate(ctx context.Context, authBytes []byte) (*saslauthenticate.Response, error) {
	resp, err := b.send(ctx, protocol.SaslAuthenticate, &saslauthenticate.Request{AuthBytes: authBytes})
	if err != nil {
		return nil, err
	}
	return resp.(*saslauthenticate.Response), nil
}
