package broker

import (
	"crypto/tls"
	"time"

	"github.com/kafkawire/broker/sasl"
)

// Config carries the construction-time options for a Broker. It follows the
// same per-field documented-default convention as the teacher's Dialer.
type Config struct {
	// ClientID is sent on every request as the client identifier. Brokers
	// use it only for logging and quota bucketing.
	//
	// The default is no client id.
	ClientID string

	// ConnectionTimeout bounds how long the underlying Connection is given
	// to establish its TCP (and, if configured, TLS) connection.
	//
	// The default is no timeout.
	ConnectionTimeout time.Duration

	// AuthenticationTimeout bounds how long a single SASL exchange (one
	// handshake plus however many authenticate round trips the mechanism
	// needs) is given to complete.
	//
	// The default is 1000ms.
	AuthenticationTimeout time.Duration

	// ReauthenticationThreshold is how close to sessionLifetime's expiry
	// the broker will get before forcing a fresh SASL exchange on the next
	// request rather than reusing the existing session.
	//
	// The default is 10000ms.
	ReauthenticationThreshold time.Duration

	// AllowAutoTopicCreation is forwarded to Metadata requests, telling the
	// broker whether it may auto-create topics named in the request that do
	// not yet exist. A nil value means true; set it to a pointer to false
	// to opt out.
	//
	// The default is true.
	AllowAutoTopicCreation *bool

	// SASL configures the authentication mechanism to run after version
	// negotiation. Nil disables SASL entirely.
	//
	// The default is nil.
	SASL sasl.Mechanism

	// TLS configures the client to speak TLS in-band over the TCP
	// connection to the broker.
	//
	// The default is nil: no TLS.
	TLS *tls.Config

	// Logger is stored on the Broker. No Broker code calls it, so
	// connect/disconnect, version negotiation and SASL events are not
	// logged.
	//
	// The default is a no-op logger.
	Logger Logger
}

func (c Config) withDefaults() Config {
	if c.AuthenticationTimeout == 0 {
		c.AuthenticationTimeout = 1000 * time.Millisecond
	}
	if c.ReauthenticationThreshold == 0 {
		c.ReauthenticationThreshold = 10000 * time.Millisecond
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	if c.AllowAutoTopicCreation == nil {
		t := true
		c.AllowAutoTopicCreation = &t
	}
	return c
}

func (c Config) allowAutoTopicCreation() bool {
	return c.AllowAutoTopicCreation == nil || *c.AllowAutoTopicCreation
}
