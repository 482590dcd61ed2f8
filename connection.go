package broker

import (
	"bufio"
	"context"
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kafkawire/broker/protocol"
)

// Connection is the byte-level transport a Broker drives. It is deliberately
// narrow: TCP (and optionally TLS) framing and correlation-id bookkeeping,
// nothing about API versions or SASL dialects. The default implementation
// is tcpConnection; tests substitute brokertest's spy.
type Connection interface {
	// Connect establishes the transport. Calling Connect on an already
	// connected Connection is a no-op.
	Connect(ctx context.Context) error

	// Disconnect tears down the transport. It must always succeed promptly
	// and never block on in-flight requests.
	Disconnect() error

	// Send encodes req at apiVersion, writes it, and returns the decoded
	// response, matching it back to its request by correlation id.
	Send(ctx context.Context, apiVersion int16, req protocol.Message) (protocol.Message, error)

	// Connected reports whether the transport is currently up.
	Connected() bool

	// SASLConfigured reports whether this connection was built with a SASL
	// mechanism to run after version negotiation.
	SASLConfigured() bool

	Host() string
	Port() int
}

// tcpConnection is the default Connection, grounded on the teacher's Conn:
// one net.Conn, a monotonically increasing correlation id, and a send mutex
// serialising the write-then-read exchange. Kafka guarantees responses
// return in the order requests were written on a single TCP connection, so
// serialising Send is sufficient to keep correlation ids matched without a
// separate read-dispatch goroutine.
type tcpConnection struct {
	network string
	address string
	host    string
	port    int

	dialer    netDialer
	tlsConfig *tls.Config
	sasl      bool

	clientID string
	timeout  time.Duration

	correlationID int32

	sendMu sync.Mutex
	conn   net.Conn
	rw     *bufio.ReadWriter
}

func newTCPConnection(network, address string, saslConfigured bool, clientID string, timeout time.Duration) *tcpConnection {
	host, port := splitHostPort(address)
	portNum, _ := strconv.Atoi(port)
	return &tcpConnection{
		network:  network,
		address:  address,
		host:     host,
		port:     portNum,
		sasl:     saslConfigured,
		clientID: clientID,
		timeout:  timeout,
	}
}

func (c *tcpConnection) Host() string         { return c.host }
func (c *tcpConnection) Port() int            { return c.port }
func (c *tcpConnection) SASLConfigured() bool { return c.sasl }

func (c *tcpConnection) Connected() bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.conn != nil
}

func (c *tcpConnection) Connect(ctx context.Context) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.conn != nil {
		return nil
	}

	if c.dialer.Timeout == 0 {
		c.dialer.Timeout = c.timeout
	}
	conn, err := c.dialer.dialContext(ctx, c.network, c.address)
	if err != nil {
		return err
	}

	if c.tlsConfig != nil {
		deadline := time.Time{}
		if c.timeout > 0 {
			deadline = time.Now().Add(c.timeout)
		}
		tconn, err := dialTLS(ctx, conn, c.tlsConfig, TCP(c.address), deadline)
		if err != nil {
			conn.Close()
			return err
		}
		conn = tconn
	}

	c.conn = conn
	c.rw = bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	return nil
}

func (c *tcpConnection) Disconnect() error {
	c.sendMu.Lock()
	conn := c.conn
	c.conn = nil
	c.rw = nil
	c.sendMu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Send serialises the write-then-read exchange under sendMu: a single
// tcpConnection only ever has one request in flight, which keeps the
// correlation-id check a pure sanity assertion rather than a dispatch
// mechanism.
func (c *tcpConnection) Send(ctx context.Context, apiVersion int16, req protocol.Message) (protocol.Message, error) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.conn == nil {
		return nil, errConnectionClosed(io.ErrClosedPipe)
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
		defer c.conn.SetDeadline(time.Time{})
	}

	id := atomic.AddInt32(&c.correlationID, 1)

	resp, err := protocol.RoundTrip(c.rw, apiVersion, id, c.clientID, req)
	if err != nil {
		return nil, errConnectionClosed(err)
	}
	return resp, nil
}

// Dial constructs a Broker backed by the default tcpConnection. The
// network is "tcp" or "tls" (see TCP/TLS helpers in address.go); TLS also
// requires config.TLS to be set.
func Dial(network, address string, nodeID int32, config Config) *Broker {
	dialNetwork := network
	if network == "tls" {
		dialNetwork = "tcp"
	}
	conn := newTCPConnection(dialNetwork, address, config.SASL != nil, config.ClientID, config.ConnectionTimeout)
	if network == "tls" || config.TLS != nil {
		conn.tlsConfig = config.TLS
	}
	return NewBroker(conn, nodeID, config)
}
