package broker

import (
	"context"
	"net"
	"time"
)

// netDialer mirrors the handful of net.Dialer knobs the teacher's Dialer
// type exposed for establishing the underlying TCP connection. Topic and
// partition leader lookup are intentionally gone: this layer dials exactly
// the address it's given and leaves leader discovery to the caller.
type netDialer struct {
	Timeout       time.Duration
	Deadline      time.Time
	LocalAddr     net.Addr
	DualStack     bool
	FallbackDelay time.Duration
	KeepAlive     time.Duration
	Resolver      *net.Resolver
}

func (d netDialer) dialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	if !d.Deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, d.Deadline)
		defer cancel()
	}

	dialer := net.Dialer{
		LocalAddr:     d.LocalAddr,
		DualStack:     d.DualStack,
		FallbackDelay: d.FallbackDelay,
		KeepAlive:     d.KeepAlive,
		Resolver:      d.Resolver,
	}

	return dialer.DialContext(ctx, network, address)
}

func splitHostPort(address string) (host string, port string) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return address, ""
	}
	return host, port
}
