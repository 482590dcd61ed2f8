// Package brokertest provides a spy broker.Connection for exercising
// Broker's control flow (connect idempotence, lock serialisation,
// reauthentication, connection-closed cascades) without a real socket.
package brokertest

import (
	"context"
	"sync"

	"github.com/kafkawire/broker/protocol"
)

// Handler drives one scripted exchange: it is called with the request that
// was sent at version, and returns the response (or error) to hand back to
// the caller.
type Handler func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error)

// Connection is a spy broker.Connection. Zero value is unusable; build one
// with New. Every exported counter is safe to read after the calls that
// bump it have returned (there is no concurrent-read-while-writing
// contract beyond what sync.Mutex already gives the spy itself).
type Connection struct {
	mu sync.Mutex

	host string
	port int
	sasl bool

	connectCount    int
	disconnectCount int
	sendCount       int
	sendsByAPI      map[protocol.ApiKey]int

	connected bool
	handler   Handler

	connectErr func(n int) error
}

// New builds a spy Connection. handler answers every Send call;
// saslConfigured controls SASLConfigured()'s return value.
func New(host string, port int, saslConfigured bool, handler Handler) *Connection {
	return &Connection{
		host:       host,
		port:       port,
		sasl:       saslConfigured,
		handler:    handler,
		sendsByAPI: make(map[protocol.ApiKey]int),
	}
}

// FailConnect makes the n-th call to Connect fail with err (n is 1-based);
// every other call succeeds.
func (c *Connection) FailConnect(n int, err error) {
	c.connectErr = func(i int) error {
		if i == n {
			return err
		}
		return nil
	}
}

func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectCount++
	if c.connectErr != nil {
		if err := c.connectErr(c.connectCount); err != nil {
			return err
		}
	}
	c.connected = true
	return nil
}

func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectCount++
	c.connected = false
	return nil
}

func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Connection) SASLConfigured() bool { return c.sasl }

func (c *Connection) Host() string { return c.host }
func (c *Connection) Port() int    { return c.port }

func (c *Connection) Send(ctx context.Context, apiVersion int16, req protocol.Message) (protocol.Message, error) {
	c.mu.Lock()
	c.sendCount++
	c.sendsByAPI[req.ApiKey()]++
	handler := c.handler
	c.mu.Unlock()
	return handler(req.ApiKey(), apiVersion, req)
}

// ConnectCount returns how many times Connect was called.
func (c *Connection) ConnectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectCount
}

// DisconnectCount returns how many times Disconnect was called.
func (c *Connection) DisconnectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnectCount
}

// SendCount returns how many times Send was called in total.
func (c *Connection) SendCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendCount
}

// SendCountFor returns how many times Send was called for apiKey.
func (c *Connection) SendCountFor(apiKey protocol.ApiKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendsByAPI[apiKey]
}
