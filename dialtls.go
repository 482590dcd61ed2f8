package broker

import (
	"context"
	"crypto/tls"
	"net"
	"time"
)

func dialTLS(ctx context.Context, conn net.Conn, tlsConfig *tls.Config, netAddr net.Addr, deadline time.Time) (net.Conn, error) {
	if tlsConfig.ServerName == "" {
		host, _ := splitHostPort(netAddr.String())
		tlsConfig = tlsConfig.Clone()
		tlsConfig.ServerName = host
	}

	tlsConn := tls.Client(conn, tlsConfig)
	if err := performTLSHandshake(ctx, tlsConn, deadline); err != nil {
		return nil, err
	}

	return tlsConn, nil
}

func performTLSHandshake(ctx context.Context, conn *tls.Conn, deadline time.Time) error {
	if !deadline.IsZero() {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
		defer conn.SetDeadline(time.Time{})
	}

	errch := make(chan error, 1)
	go func() { errch <- conn.Handshake() }()

	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
		conn.Close()
		<-errch
		return ctx.Err()
	}
}
