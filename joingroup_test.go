package broker

import (
	"context"
	"testing"

	"github.com/kafkawire/broker/brokertest"
	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/joingroup"
)

// TestJoinGroupRetriesOnceOnMemberIDRequired covers property 9 and scenario
// S4: a server replying MEMBER_ID_REQUIRED once, then succeeding, must
// result in exactly two outbound JoinGroup requests and a successful call.
func TestJoinGroupRetriesOnceOnMemberIDRequired(t *testing.T) {
	var calls int
	conn := brokertest.New("broker1", 9092, false, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 0),
		func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
			if apiKey != protocol.JoinGroup {
				return nil, nil
			}
			calls++
			jr := req.(*joingroup.Request)
			if calls == 1 {
				if jr.MemberID != "" {
					t.Fatalf("first request should carry the empty member id, got %q", jr.MemberID)
				}
				return &joingroup.Response{ErrorCode: int16(MemberIdRequired), MemberID: "m-7"}, nil
			}
			if jr.MemberID != "m-7" {
				t.Fatalf("retry should carry the broker-supplied member id, got %q", jr.MemberID)
			}
			return &joingroup.Response{MemberID: "m-7", GenerationID: 1}, nil
		},
	))
	b := NewBroker(conn, 1, Config{})

	resp, err := b.JoinGroup(context.Background(), &joingroup.Request{GroupID: "g", MemberID: ""})
	if err != nil {
		t.Fatalf("expected success after one retry, got %v", err)
	}
	if resp.MemberID != "m-7" {
		t.Fatalf("expected member id m-7 in final response, got %q", resp.MemberID)
	}
	if calls != 2 {
		t.Fatalf("expected exactly two outbound requests, got %d", calls)
	}
}

// TestJoinGroupSurfacesSecondMemberIDRequired covers the second half of
// property 9: a server that replies MEMBER_ID_REQUIRED twice causes exactly
// two requests and surfaces the second error to the caller.
func TestJoinGroupSurfacesSecondMemberIDRequired(t *testing.T) {
	var calls int
	conn := brokertest.New("broker1", 9092, false, brokertest.ChainHandler(
		brokertest.NegotiationHandler("PLAIN", 0),
		func(apiKey protocol.ApiKey, version int16, req protocol.Message) (protocol.Message, error) {
			if apiKey != protocol.JoinGroup {
				return nil, nil
			}
			calls++
			return &joingroup.Response{ErrorCode: int16(MemberIdRequired), MemberID: "m-7"}, nil
		},
	))
	b := NewBroker(conn, 1, Config{})

	_, err := b.JoinGroup(context.Background(), &joingroup.Request{GroupID: "g"})
	if err == nil {
		t.Fatal("expected the second MEMBER_ID_REQUIRED to propagate as an error")
	}
	memberID, ok := AsMemberIDRequired(err)
	if !ok {
		t.Fatalf("expected a MemberIDRequired error, got %v", err)
	}
	if memberID != "m-7" {
		t.Fatalf("expected member id m-7, got %q", memberID)
	}
	if calls != 2 {
		t.Fatalf("expected exactly two outbound requests, got %d", calls)
	}
}
