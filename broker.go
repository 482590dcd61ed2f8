// Package broker implements a client-side driver for the Apache Kafka wire
// protocol, scoped to a single cluster node: it multiplexes request/response
// RPCs over one long-lived connection, negotiates the best protocol version
// per API, authenticates (and re-authenticates) with SASL on a bounded
// session lifetime, and exposes the broker's RPC surface as typed calls.
package broker

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/kafkawire/broker/protocol"

	_ "github.com/kafkawire/broker/protocol/addoffsetstotxn"
	_ "github.com/kafkawire/broker/protocol/addpartitionstotxn"
	_ "github.com/kafkawire/broker/protocol/alterconfigs"
	_ "github.com/kafkawire/broker/protocol/apiversions"
	_ "github.com/kafkawire/broker/protocol/createacls"
	_ "github.com/kafkawire/broker/protocol/createpartitions"
	_ "github.com/kafkawire/broker/protocol/createtopics"
	_ "github.com/kafkawire/broker/protocol/deleteacls"
	_ "github.com/kafkawire/broker/protocol/deletegroups"
	_ "github.com/kafkawire/broker/protocol/deleterecords"
	_ "github.com/kafkawire/broker/protocol/deletetopics"
	_ "github.com/kafkawire/broker/protocol/describeacls"
	_ "github.com/kafkawire/broker/protocol/describeconfigs"
	_ "github.com/kafkawire/broker/protocol/describegroups"
	_ "github.com/kafkawire/broker/protocol/endtxn"
	_ "github.com/kafkawire/broker/protocol/fetch"
	_ "github.com/kafkawire/broker/protocol/findcoordinator"
	_ "github.com/kafkawire/broker/protocol/heartbeat"
	_ "github.com/kafkawire/broker/protocol/initproducerid"
	_ "github.com/kafkawire/broker/protocol/joingroup"
	_ "github.com/kafkawire/broker/protocol/leavegroup"
	_ "github.com/kafkawire/broker/protocol/listgroups"
	_ "github.com/kafkawire/broker/protocol/listoffsets"
	_ "github.com/kafkawire/broker/protocol/metadata"
	_ "github.com/kafkawire/broker/protocol/offsetcommit"
	_ "github.com/kafkawire/broker/protocol/offsetfetch"
	_ "github.com/kafkawire/broker/protocol/produce"
	_ "github.com/kafkawire/broker/protocol/saslauthenticate"
	_ "github.com/kafkawire/broker/protocol/saslhandshake"
	_ "github.com/kafkawire/broker/protocol/syncgroup"
	_ "github.com/kafkawire/broker/protocol/txnoffsetcommit"
)

// Broker is the RPC client for a single Kafka cluster node. It owns the
// connection, lifecycle state, and the connect-lock; create one with
// NewBroker per node you talk to.
type Broker struct {
	connection Connection
	nodeID     int32
	config     Config

	lock timeout
	mu   sync.Mutex // guards the fields below; not held across I/O

	versions        map[protocol.ApiKey]versionRange
	authenticatedAt time.Time
	sessionLifetime time.Duration
	authSupport     authSupport
	lookupRequest   lookupFunc

	stats brokerStats
}

type timeout struct {
	mu      timedMutex
	timeout time.Duration
}

// NewBroker constructs a Broker bound to connection. nodeID is purely
// informational (broker ids as reported by Metadata/FindCoordinator).
func NewBroker(connection Connection, nodeID int32, config Config) *Broker {
	config = config.withDefaults()
	connTimeout := config.ConnectionTimeout
	lockTimeout := 2*connTimeout + config.AuthenticationTimeout

	return &Broker{
		connection:    connection,
		nodeID:        nodeID,
		config:        config,
		lock:          timeout{mu: newTimedMutex(), timeout: lockTimeout},
		lookupRequest: notConnectedLookup,
		stats:         makeBrokerStats(),
	}
}

// Address returns "host:port" for the broker this client talks to.
func (b *Broker) Address() string {
	return b.connection.Host() + ":" + strconv.Itoa(b.connection.Port())
}

// NodeID returns the broker id passed to NewBroker.
func (b *Broker) NodeID() int32 { return b.nodeID }

// Stats returns a snapshot of the counters accumulated since the last call
// to Stats.
func (b *Broker) Stats() Stats { return b.stats.snapshot() }

// isConnected reports whether the broker can serve a request right now
// without going through connect: the transport must be up, and if SASL is
// configured the session must be authenticated and not due for
// re-authentication.
func (b *Broker) isConnected() bool {
	if !b.connection.Connected() {
		return false
	}
	if !b.connection.SASLConfigured() {
		return true
	}
	b.mu.Lock()
	authenticatedAt := b.authenticatedAt
	sessionLifetime := b.sessionLifetime
	b.mu.Unlock()
	if authenticatedAt.IsZero() {
		return false
	}
	return !shouldReauthenticate(sessionLifetime, authenticatedAt, b.config.ReauthenticationThreshold, nowMonotonic())
}

// connect brings the broker up if it is not already usable: it acquires
// the connect-lock, performs the TCP connect, version negotiation, and (if
// configured) SASL, then releases the lock. Concurrent callers that lose
// the race simply observe isConnected() once they get the lock and return
// immediately.
func (b *Broker) connect(ctx context.Context) error {
	address := b.Address()
	if err := b.lock.mu.lockContext(ctx, b.lock.timeout, address); err != nil {
		return err
	}
	defer b.lock.mu.unlock()

	if b.isConnected() {
		return nil
	}

	b.mu.Lock()
	b.authenticatedAt = time.Time{}
	b.mu.Unlock()

	if err := b.connection.Connect(ctx); err != nil {
		return errConnectionClosed(err)
	}

	b.mu.Lock()
	versions := b.versions
	b.mu.Unlock()

	if versions == nil {
		v, err := negotiateVersions(ctx, b.connection)
		if err != nil {
			return err
		}
		versions = v
		b.mu.Lock()
		b.versions = versions
		b.lookupRequest = lookup(versions)
		b.mu.Unlock()
	}

	b.mu.Lock()
	find := b.lookupRequest
	support := b.authSupport
	b.mu.Unlock()

	if support == authUnknown {
		support = resolveAuthSupport(find)
		b.mu.Lock()
		b.authSupport = support
		b.mu.Unlock()
	}

	b.mu.Lock()
	authenticatedAt := b.authenticatedAt
	b.mu.Unlock()

	if authenticatedAt.IsZero() && b.connection.SASLConfigured() {
		lifetime, err := authenticate(ctx, b.connection, find, b.config.SASL, b.config.AuthenticationTimeout, support == authSupported)
		if err != nil {
			return err
		}
		b.mu.Lock()
		b.authenticatedAt = nowMonotonic()
		b.sessionLifetime = lifetime
		b.mu.Unlock()
		b.stats.reauthentications.observe(1)
	}

	return nil
}

// disconnect clears authentication state and tears down the transport. It
// does not take the connect-lock: disconnect must always succeed promptly,
// even while another goroutine holds the lock performing a connect.
func (b *Broker) disconnect() error {
	b.mu.Lock()
	b.authenticatedAt = time.Time{}
	b.mu.Unlock()
	return b.connection.Disconnect()
}

// ensureConnected calls connect if the broker is not currently usable.
func (b *Broker) ensureConnected(ctx context.Context) error {
	if b.isConnected() {
		return nil
	}
	return b.connect(ctx)
}

// send resolves apiKey's negotiated version, encodes req, and round-trips
// it over the connection. A connection-closed failure proactively
// disconnects (clearing auth state) before the error is re-raised so the
// next call re-enters connect.
func (b *Broker) send(ctx context.Context, apiKey protocol.ApiKey, req protocol.Message) (protocol.Message, error) {
	if err := b.ensureConnected(ctx); err != nil {
		b.stats.errors.observe(1)
		return nil, err
	}

	b.mu.Lock()
	find := b.lookupRequest
	b.mu.Unlock()

	rf, err := find(apiKey)
	if err != nil {
		b.stats.errors.observe(1)
		return nil, err
	}

	start := nowMonotonic()
	resp, err := b.connection.Send(ctx, rf.apiVersion, req)
	b.stats.requests.observe(1)
	b.stats.latency.observe(nowMonotonic().Sub(start))
	if err != nil {
		b.stats.errors.observe(1)
		if be, ok := err.(*Error); ok && be.Kind == ConnectionClosed {
			b.disconnect()
		}
		return nil, err
	}
	return resp, nil
}
