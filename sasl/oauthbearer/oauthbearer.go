// Package oauthbearer implements the SASL OAUTHBEARER mechanism.
package oauthbearer

import (
	"context"
	"errors"
	"fmt"

	"github.com/kafkawire/broker/sasl"
)

// Mechanism implements the OAUTHBEARER mechanism and passes a bearer token.
type Mechanism struct {
	Token string
}

func (Mechanism) Name() string { return "OAUTHBEARER" }

func (m Mechanism) Start(ctx context.Context) (sasl.StateMachine, []byte, error) {
	if m.Token == "" {
		return nil, nil, errors.New("oauthbearer: token must have a value")
	}
	ir := []byte(fmt.Sprintf("n,,\x01auth=Bearer %s\x01\x01", m.Token))
	return m, ir, nil
}

func (m Mechanism) Next(ctx context.Context, challenge []byte) (bool, []byte, error) {
	if len(challenge) == 0 {
		return true, nil, nil
	}
	// A non-empty challenge after the initial response means the broker
	// rejected the token and is describing why; the exchange cannot
	// continue.
	return false, nil, fmt.Errorf("oauthbearer: server rejected token: %s", challenge)
}
