// Package sasl defines the interfaces the broker client uses to drive a
// SASL challenge/response exchange, independently of any particular
// mechanism.
package sasl

import "context"

// Mechanism implements the SASL state machine for a particular mode of
// authentication. It is used by the broker to perform the SASL handshake.
//
// A Mechanism must be re-usable and safe for concurrent access by multiple
// goroutines.
type Mechanism interface {
	// Name returns the identifier for this SASL mechanism. This string is
	// sent in the SaslHandshake request and must match one of the
	// mechanisms the broker supports.
	Name() string

	// Start begins SASL authentication. It returns an authentication state
	// machine and "initial response" data (if required by the selected
	// mechanism). A non-nil error causes the client to abort the
	// authentication attempt.
	//
	// A nil ir value is different from a zero-length value. The nil value
	// indicates that the selected mechanism does not use an initial
	// response, while a zero-length value indicates an empty initial
	// response, which must still be sent to the broker.
	Start(ctx context.Context) (sess StateMachine, ir []byte, err error)
}

// NeedsHost is an optional interface for a SASL Mechanism that needs to know
// the host it is doing the SASL handshake with.
type NeedsHost interface {
	// WithHost is called before Start with the address of the broker being
	// connected to, without any port number, and must return a Mechanism
	// that uses that host once Start is called on it.
	WithHost(address string) Mechanism
}

// StateMachine implements the SASL challenge/response flow for a single
// SASL handshake. A StateMachine is created by the Mechanism per
// connection, so it does not need to be safe for concurrent use.
type StateMachine interface {
	// Next continues challenge-response authentication. A non-nil error
	// indicates that the client should abort the authentication attempt. If
	// the client has been successfully authenticated, done is true.
	Next(ctx context.Context, challenge []byte) (done bool, response []byte, err error)
}
