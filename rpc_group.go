package broker

import (
	"context"

	"github.com/kafkawire/broker/protocol"
	"github.com/kafkawire/broker/protocol/deletegroups"
	"github.com/kafkawire/broker/protocol/describegroups"
	"github.com/kafkawire/broker/protocol/findcoordinator"
	"github.com/kafkawire/broker/protocol/heartbeat"
	"github.com/kafkawire/broker/protocol/joingroup"
	"github.com/kafkawire/broker/protocol/leavegroup"
	"github.com/kafkawire/broker/protocol/listgroups"
	"github.com/kafkawire/broker/protocol/syncgroup"
)

// GroupCoordinator locates the coordinator broker for a group or
// transactional id.
func (b *Broker) GroupCoordinator(ctx context.Context, key string, keyType int8) (*findcoordinator.Response, error) {
	req := &findcoordinator.Request{Key: key, KeyType: keyType}
	resp, err := b.send(ctx, protocol.FindCoordinator, req)
	if err != nil {
		return nil, err
	}
	return resp.(*findcoordinator.Response), nil
}

// JoinGroup joins a consumer group. If the coordinator replies
// MemberIdRequired, the request is retried exactly once with the
// broker-supplied member id substituted in; any further failure of that
// retry propagates unchanged.
func (b *Broker) JoinGroup(ctx context.Context, req *joingroup.Request) (*joingroup.Response, error) {
	resp, err := b.send(ctx, protocol.JoinGroup, req)
	if err != nil {
		return nil, err
	}
	jr := resp.(*joingroup.Response)
	if ErrorCode(jr.ErrorCode) != MemberIdRequired {
		return jr, nil
	}

	retry := *req
	retry.MemberID = jr.MemberID
	resp, err = b.send(ctx, protocol.JoinGroup, &retry)
	if err != nil {
		return nil, err
	}
	jr = resp.(*joingroup.Response)
	if ErrorCode(jr.ErrorCode) == MemberIdRequired {
		return nil, errMemberIDRequired(jr.MemberID)
	}
	return jr, nil
}

func (b *Broker) Heartbeat(ctx context.Context, req *heartbeat.Request) (*heartbeat.Response, error) {
	resp, err := b.send(ctx, protocol.Heartbeat, req)
	if err != nil {
		return nil, err
	}
	return resp.(*heartbeat.Response), nil
}

func (b *Broker) SyncGroup(ctx context.Context, req *syncgroup.Request) (*syncgroup.Response, error) {
	resp, err := b.send(ctx, protocol.SyncGroup, req)
	if err != nil {
		return nil, err
	}
	return resp.(*syncgroup.Response), nil
}

func (b *Broker) LeaveGroup(ctx context.Context, req *leavegroup.Request) (*leavegroup.Response, error) {
	resp, err := b.send(ctx, protocol.LeaveGroup, req)
	if err != nil {
		return nil, err
	}
	return resp.(*leavegroup.Response), nil
}

func (b *Broker) DescribeGroups(ctx context.Context, groupIDs []string) (*describegroups.Response, error) {
	req := &describegroups.Request{GroupIDs: groupIDs}
	resp, err := b.send(ctx, protocol.DescribeGroups, req)
	if err != nil {
		return nil, err
	}
	return resp.(*describegroups.Response), nil
}

func (b *Broker) ListGroups(ctx context.Context) (*listgroups.Response, error) {
	resp, err := b.send(ctx, protocol.ListGroups, &listgroups.Request{})
	if err != nil {
		return nil, err
	}
	return resp.(*listgroups.Response), nil
}

func (b *Broker) DeleteGroups(ctx context.Context, groupIDs []string) (*deletegroups.Response, error) {
	req := &deletegroups.Request{GroupIDs: groupIDs}
	resp, err := b.send(ctx, protocol.DeleteGroups, req)
	if err != nil {
		return nil, err
	}
	return resp.(*deletegroups.Response), nil
}
