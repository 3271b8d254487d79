package grpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	hstreamv1 "github.com/hstreamdb/hdelivery/api/hstream/v1"
	"github.com/hstreamdb/hdelivery/internal/metadata"
)

const defaultAckTimeoutSeconds = 60

func offsetFromProto(off *hstreamv1.SubscriptionOffset) metadata.Offset {
	if off == nil {
		return metadata.Offset{Kind: metadata.OffsetEarliest}
	}
	if rec := off.GetRecordOffset(); rec != nil {
		return metadata.Offset{
			Kind:       metadata.OffsetRecordID,
			BatchID:    rec.GetBatchId(),
			BatchIndex: rec.GetBatchIndex(),
		}
	}
	if off.GetSpecialOffset() == hstreamv1.SpecialOffset_LATEST {
		return metadata.Offset{Kind: metadata.OffsetLatest}
	}
	return metadata.Offset{Kind: metadata.OffsetEarliest}
}

func offsetToProto(off metadata.Offset) *hstreamv1.SubscriptionOffset {
	switch off.Kind {
	case metadata.OffsetRecordID:
		return &hstreamv1.SubscriptionOffset{
			Offset: &hstreamv1.SubscriptionOffset_RecordOffset{
				RecordOffset: &hstreamv1.RecordId{BatchId: off.BatchID, BatchIndex: off.BatchIndex},
			},
		}
	case metadata.OffsetLatest:
		return &hstreamv1.SubscriptionOffset{
			Offset: &hstreamv1.SubscriptionOffset_SpecialOffset{SpecialOffset: hstreamv1.SpecialOffset_LATEST},
		}
	default:
		return &hstreamv1.SubscriptionOffset{
			Offset: &hstreamv1.SubscriptionOffset_SpecialOffset{SpecialOffset: hstreamv1.SpecialOffset_EARLIEST},
		}
	}
}

func subscriptionToProto(sub metadata.Subscription) *hstreamv1.Subscription {
	return &hstreamv1.Subscription{
		SubscriptionId:    sub.ID,
		StreamName:        sub.StreamName,
		AckTimeoutSeconds: sub.AckTimeoutSeconds,
		Offset:            offsetToProto(sub.Offset),
	}
}

// CreateSubscription persists the subscription definition.
func (s *hstreamSvc) CreateSubscription(ctx context.Context, req *hstreamv1.Subscription) (*hstreamv1.Subscription, error) {
	if req.GetSubscriptionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "subscription id is required")
	}
	if req.GetStreamName() == "" {
		return nil, status.Error(codes.InvalidArgument, "stream name is required")
	}
	sub := metadata.Subscription{
		ID:                req.GetSubscriptionId(),
		StreamName:        req.GetStreamName(),
		AckTimeoutSeconds: req.GetAckTimeoutSeconds(),
		Offset:            offsetFromProto(req.GetOffset()),
	}
	if sub.AckTimeoutSeconds == 0 {
		sub.AckTimeoutSeconds = defaultAckTimeoutSeconds
	}
	if err := s.rt.Subscriptions().Create(ctx, sub); err != nil {
		return nil, statusFromError(err)
	}
	return subscriptionToProto(sub), nil
}

// DeleteSubscription removes the subscription; deletion is final.
func (s *hstreamSvc) DeleteSubscription(ctx context.Context, req *hstreamv1.DeleteSubscriptionRequest) (*emptypb.Empty, error) {
	if err := s.rt.Subscriptions().Delete(ctx, req.GetSubscriptionId()); err != nil {
		return nil, statusFromError(err)
	}
	return &emptypb.Empty{}, nil
}

// CheckSubscriptionExist reports whether the subscription is persisted.
func (s *hstreamSvc) CheckSubscriptionExist(ctx context.Context, req *hstreamv1.CheckSubscriptionExistRequest) (*hstreamv1.CheckSubscriptionExistResponse, error) {
	exists, err := s.rt.Subscriptions().Exists(req.GetSubscriptionId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &hstreamv1.CheckSubscriptionExistResponse{Exists: exists}, nil
}

// ListSubscriptions returns all persisted subscriptions.
func (s *hstreamSvc) ListSubscriptions(ctx context.Context, req *hstreamv1.ListSubscriptionsRequest) (*hstreamv1.ListSubscriptionsResponse, error) {
	subs, err := s.rt.Subscriptions().List()
	if err != nil {
		return nil, statusFromError(err)
	}
	out := &hstreamv1.ListSubscriptionsResponse{Subscriptions: make([]*hstreamv1.Subscription, 0, len(subs))}
	for _, sub := range subs {
		out.Subscriptions = append(out.Subscriptions, subscriptionToProto(sub))
	}
	return out, nil
}
