// Package scram implements the SASL SCRAM-SHA-256 and SCRAM-SHA-512
// mechanisms.
package scram

import (
	"context"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"github.com/xdg/scram"

	"github.com/kafkawire/broker/sasl"
)

// Algorithm determines the hash function used by SCRAM to protect the
// user's credentials.
type Algorithm int

const (
	_ Algorithm = iota
	SHA256
	SHA512
)

func (a Algorithm) name() string {
	switch a {
	case SHA256:
		return "SCRAM-SHA-256"
	case SHA512:
		return "SCRAM-SHA-512"
	}
	return "invalid"
}

func (a Algorithm) hashGenerator() scram.HashGeneratorFcn {
	switch a {
	case SHA256:
		return scram.SHA256
	case SHA512:
		// the xdg/scram package has no predefined constant for SHA512.
		return scram.HashGeneratorFcn(func() hash.Hash {
			return sha512.New()
		})
	}
	return nil
}

type mechanism struct {
	algorithm Algorithm
	client    *scram.Client
	convo     *scram.ClientConversation
}

// Mechanism returns a sasl.Mechanism that authenticates with SCRAM using
// the given algorithm and credentials.
//
// SCRAM-SHA-256 and SCRAM-SHA-512 were added to Kafka in 0.10.2.0 and will
// not work against older brokers.
func Mechanism(algorithm Algorithm, username, password string) (sasl.Mechanism, error) {
	hashGen := algorithm.hashGenerator()
	if hashGen == nil {
		return nil, errors.New("scram: invalid algorithm")
	}

	client, err := hashGen.NewClient(username, password, "")
	if err != nil {
		return nil, errors.Wrap(err, "scram: failed to construct client")
	}

	return &mechanism{algorithm: algorithm, client: client}, nil
}

func (m *mechanism) Name() string { return m.algorithm.name() }

func (m *mechanism) Start(ctx context.Context) (sasl.StateMachine, []byte, error) {
	convo := m.client.NewConversation()
	msg, err := convo.Step("")
	if err != nil {
		return nil, nil, errors.Wrap(err, "scram: failed to start conversation")
	}
	return &mechanism{algorithm: m.algorithm, client: m.client, convo: convo}, []byte(msg), nil
}

func (m *mechanism) Next(ctx context.Context, challenge []byte) (bool, []byte, error) {
	msg, err := m.convo.Step(string(challenge))
	if err != nil {
		return false, nil, errors.Wrap(err, "scram: failed to step conversation")
	}
	return m.convo.Done(), []byte(msg), nil
}
