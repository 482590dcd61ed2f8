package broker

import (
	"context"
	"sync"
	"testing"

	"github.com/kafkawire/broker/brokertest"
	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/metadata"
	"github.com/kafkawire/broker/sasl/plain"
)

func metadataHandler() brokertest.Handler {
	return func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
		if apiKey != protocol.Metadata {
			return nil, nil
		}
		return &metadata.Response{}, nil
	}
}

// TestConnectIsIdempotent covers property 1: once a broker is connected,
// further calls that only need isConnected() must not dial again.
func TestConnectIsIdempotent(t *testing.T) {
	conn := brokertest.New("broker1", 9092, false, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 0),
		metadataHandler(),
	))
	b := NewBroker(conn, 1, Config{})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := b.Metadata(ctx, nil); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	if conn.ConnectCount() != 1 {
		t.Fatalf("expected exactly one Connect call, got %d", conn.ConnectCount())
	}
}

// TestConnectIsSerialised covers property 2: concurrent callers racing to
// connect must still result in exactly one successful Connect call.
func TestConnectIsSerialised(t *testing.T) {
	conn := brokertest.New("broker1", 9092, false, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 0),
		metadataHandler(),
	))
	b := NewBroker(conn, 1, Config{})

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = b.Metadata(context.Background(), nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}
	if conn.ConnectCount() != 1 {
		t.Fatalf("expected exactly one Connect call under race, got %d", conn.ConnectCount())
	}
}

// TestNegotiateVersionsChoosesHighestSupported checks the version lookup
// built after negotiation: NegotiationHandler advertises each API at our own
// [min,max] range, so the version selected for Metadata must be our local
// max.
func TestNegotiateVersionsChoosesHighestSupported(t *testing.T) {
	conn := brokertest.New("broker1", 9092, false, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 0),
		metadataHandler(),
	))
	b := NewBroker(conn, 1, Config{})

	if _, err := b.Metadata(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	rf, err := b.lookupRequest(protocol.Metadata)
	if err != nil {
		t.Fatal(err)
	}
	want := protocol.Metadata.MaxVersion()
	if rf.apiVersion != want {
		t.Fatalf("negotiated version %d, want local max %d", rf.apiVersion, want)
	}
}

// TestConnectionClosedCascadesToDisconnect covers property 8: a
// ConnectionClosed error from Send must clear authenticated state and tear
// down the transport, so the next call re-enters connect.
func TestConnectionClosedCascadesToDisconnect(t *testing.T) {
	var failNext bool
	var mu sync.Mutex

	handler := brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 60_000),
		func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
			if apiKey != protocol.Metadata {
				return nil, nil
			}
			mu.Lock()
			shouldFail := failNext
			failNext = false
			mu.Unlock()
			if shouldFail {
				return nil, errConnectionClosed(nil)
			}
			return &metadata.Response{}, nil
		},
	)

	conn := brokertest.New("broker1", 9092, true, handler)
	b := NewBroker(conn, 1, Config{SASL: plain.Mechanism{Username: "u", Password: "p"}})

	ctx := context.Background()
	if _, err := b.Metadata(ctx, nil); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if conn.ConnectCount() != 1 {
		t.Fatalf("expected one connect after warmup, got %d", conn.ConnectCount())
	}

	mu.Lock()
	failNext = true
	mu.Unlock()

	if _, err := b.Metadata(ctx, nil); err == nil {
		t.Fatal("expected the connection-closed error to propagate")
	}
	if conn.DisconnectCount() != 1 {
		t.Fatalf("expected Disconnect to be called once after ConnectionClosed, got %d", conn.DisconnectCount())
	}

	if _, err := b.Metadata(ctx, nil); err != nil {
		t.Fatalf("call after cascade should reconnect and succeed: %v", err)
	}
	if conn.ConnectCount() != 2 {
		t.Fatalf("expected a second Connect call after the cascade, got %d", conn.ConnectCount())
	}
}
