package brokertest

import (
	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/apiversions"
	"github.com/kafkawire/broker/protocol/saslauthenticate"
	"github.com/kafkawire/broker/protocol/saslhandshake"
)

// allApiKeys lists every API key this module registers a codec for,
// independently of the protocol package's unexported registry, so tests
// can build a full ApiVersions response without reaching into internals.
var allApiKeys = []protocol.ApiKey{
	protocol.Produce, protocol.Fetch, protocol.ListOffsets, protocol.Metadata,
	protocol.OffsetCommit, protocol.OffsetFetch, protocol.FindCoordinator,
	protocol.JoinGroup, protocol.Heartbeat, protocol.LeaveGroup, protocol.SyncGroup,
	protocol.DescribeGroups, protocol.ListGroups, protocol.SaslHandshake,
	protocol.ApiVersions, protocol.CreateTopics, protocol.DeleteTopics,
	protocol.DeleteRecords, protocol.InitProducerId, protocol.AddPartitionsToTxn,
	protocol.AddOffsetsToTxn, protocol.EndTxn, protocol.TxnOffsetCommit,
	protocol.DescribeAcls, protocol.CreateAcls, protocol.DeleteAcls,
	protocol.DescribeConfigs, protocol.AlterConfigs, protocol.SaslAuthenticate,
	protocol.CreatePartitions, protocol.DeleteGroups,
}

// ChainHandler dispatches to the first handler in hs willing to answer
// (a nil response+nil error pair is not a valid answer, so every branch
// must itself return a non-nil response or an error); NegotiationHandler
// is typically first in the chain so ApiVersions/SaslHandshake/
// SaslAuthenticate are answered automatically and the test only supplies
// handlers for the RPCs it cares about.
func ChainHandler(hs ...Handler) Handler {
	return func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
		for _, h := range hs {
			if resp, err := h(apiKey, version, req); resp != nil || err != nil {
				return resp, err
			}
		}
		return nil, nil
	}
}

// NegotiationHandler answers ApiVersions with every registered API at its
// local max version, SaslHandshake by accepting mechanism, and
// SaslAuthenticate by succeeding immediately with sessionLifetimeMs. It
// leaves every other API key unanswered (nil, nil) for a later handler in
// a ChainHandler to pick up.
func NegotiationHandler(mechanism string, sessionLifetimeMs int64) Handler {
	return func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
		switch apiKey {
		case protocol.ApiVersions:
			keys := make([]apiversions.ApiKeyResponse, len(allApiKeys))
			for i, k := range allApiKeys {
				keys[i] = apiversions.ApiKeyResponse{ApiKey: int16(k), MinVersion: k.MinVersion(), MaxVersion: k.MaxVersion()}
			}
			return &apiversions.Response{ApiKeys: keys}, nil
		case protocol.SaslHandshake:
			return &saslhandshake.Response{EnabledMechanisms: []string{mechanism}}, nil
		case protocol.SaslAuthenticate:
			return &saslauthenticate.Response{SessionLifetimeMs: sessionLifetimeMs}, nil
		default:
			return nil, nil
		}
	}
}
