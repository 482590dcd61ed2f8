package broker

import (
	"context"
	"testing"
	"time"

	"github.com/kafkawire/broker/brokertest"
	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/apiversions"
	"github.com/kafkawire/broker/sasl/plain"
)

// TestReauthenticationTiming covers scenario S1: with sessionLifetime=60000
// and reauthThreshold=10000, a call after 55s elapsed triggers a second
// SASL exchange; a call after 40s elapsed does not.
func TestReauthenticationTiming(t *testing.T) {
	conn := brokertest.New("broker1", 9092, true, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 60_000),
		metadataHandler(),
	))
	b := NewBroker(conn, 1, Config{
		SASL:                      plain.Mechanism{Username: "u", Password: "p"},
		ReauthenticationThreshold: 10 * time.Second,
	})

	ctx := context.Background()
	if _, err := b.Metadata(ctx, nil); err != nil {
		t.Fatalf("initial connect: %v", err)
	}
	if got := conn.SendCountFor(protocol.SaslAuthenticate); got != 1 {
		t.Fatalf("expected one SASL exchange after initial connect, got %d", got)
	}

	// Simulate 40s elapsed: below the reauth threshold, no new exchange.
	b.mu.Lock()
	b.authenticatedAt = nowMonotonic().Add(-40 * time.Second)
	b.mu.Unlock()

	if _, err := b.Metadata(ctx, nil); err != nil {
		t.Fatalf("call at 40s elapsed: %v", err)
	}
	if got := conn.SendCountFor(protocol.SaslAuthenticate); got != 1 {
		t.Fatalf("expected no reauth at 40s elapsed, sasl exchange count = %d", got)
	}

	// Simulate 55s elapsed: within the threshold of expiry, reauth fires.
	b.mu.Lock()
	b.authenticatedAt = nowMonotonic().Add(-55 * time.Second)
	b.mu.Unlock()

	if _, err := b.Metadata(ctx, nil); err != nil {
		t.Fatalf("call at 55s elapsed: %v", err)
	}
	if got := conn.SendCountFor(protocol.SaslAuthenticate); got != 2 {
		t.Fatalf("expected a second SASL exchange at 55s elapsed, got %d", got)
	}
}

// TestNegotiateVersionsProbesDescendingOnUnsupportedVersion covers scenario
// S3: a server that only accepts the lowest of the client's candidate
// ApiVersions requests must still be reached, with every higher candidate
// probed (and its UNSUPPORTED_VERSION swallowed) first, strictly
// descending.
func TestNegotiateVersionsProbesDescendingOnUnsupportedVersion(t *testing.T) {
	accepted := candidateVersions()[len(candidateVersions())-1] // lowest candidate
	var probed []int16
	conn := brokertest.New("broker1", 9092, false, func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
		if apiKey != protocol.ApiVersions {
			return nil, nil
		}
		probed = append(probed, version)
		if version != accepted {
			return nil, &Error{Kind: UnsupportedVersion, Message: "unsupported"}
		}
		return &apiversions.Response{ApiKeys: []apiversions.ApiKeyResponse{
			{ApiKey: int16(protocol.Metadata), MinVersion: protocol.Metadata.MinVersion(), MaxVersion: protocol.Metadata.MaxVersion()},
		}}, nil
	})

	versions, err := negotiateVersions(context.Background(), conn)
	if err != nil {
		t.Fatalf("negotiateVersions: %v", err)
	}
	if len(probed) != len(candidateVersions()) {
		t.Fatalf("expected every candidate down to the accepted one to be probed, probed %v", probed)
	}
	for i := 1; i < len(probed); i++ {
		if probed[i] >= probed[i-1] {
			t.Fatalf("expected strictly descending probe order, probed %v", probed)
		}
	}
	if last := probed[len(probed)-1]; last != accepted {
		t.Fatalf("expected the negotiator to land on v%d, landed on v%d (probed %v)", accepted, last, probed)
	}
	if _, ok := versions[protocol.Metadata]; !ok {
		t.Fatalf("expected the negotiated version table to carry Metadata's range")
	}
}
