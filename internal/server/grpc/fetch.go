package grpcserver

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	hstreamv1 "github.com/hstreamdb/hdelivery/api/hstream/v1"
	"github.com/hstreamdb/hdelivery/internal/subscription"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// fetchSender adapts one StreamingFetch stream into a subscription
// sender. Dispatch and resend may push concurrently while gRPC server
// streams allow a single writer, so sends serialize on a mutex.
type fetchSender struct {
	mu     sync.Mutex
	stream hstreamv1.HStreamApi_StreamingFetchServer
}

func (s *fetchSender) Send(records []subscription.DeliveredRecord) error {
	out := &hstreamv1.StreamingFetchResponse{
		ReceivedRecords: make([]*hstreamv1.ReceivedRecord, 0, len(records)),
	}
	for _, rec := range records {
		out.ReceivedRecords = append(out.ReceivedRecords, &hstreamv1.ReceivedRecord{
			RecordId: &hstreamv1.RecordId{BatchId: rec.ID.BatchID, BatchIndex: rec.ID.BatchIndex},
			Record:   rec.Payload,
		})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream.Send(out)
}

func recordIDsFromProto(ids []*hstreamv1.RecordId) []subscription.RecordID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]subscription.RecordID, 0, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		out = append(out, subscription.RecordID{BatchID: id.GetBatchId(), BatchIndex: id.GetBatchIndex()})
	}
	return out
}

// StreamingFetch runs one consumer session: the first request registers
// the consumer on the subscription, every request folds in acks, and
// teardown detaches the consumer. The runtime is kept unless the
// subscription was deleted and this was its last consumer.
func (s *hstreamSvc) StreamingFetch(stream hstreamv1.HStreamApi_StreamingFetchServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	subID := first.GetSubscriptionId()
	consumer := first.GetConsumerName()
	if consumer == "" {
		consumer = "consumer-" + uuid.NewString()
	}

	rt, err := s.rt.Subscriptions().GetOrCreateRuntime(ctx, subID)
	if err != nil {
		return sessionStatus(err)
	}
	sender := &fetchSender{stream: stream}
	if err := rt.AttachConsumer(consumer, sender); err != nil {
		return sessionStatus(err)
	}
	defer s.rt.Subscriptions().Detach(subID, consumer)
	s.logger.Info("fetch.session.start",
		logpkg.Str("subscription", subID),
		logpkg.Str("consumer", consumer),
	)

	if err := s.handleAcks(ctx, subID, first.GetAckIds()); err != nil {
		return err
	}
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("fetch.session.close",
					logpkg.Str("subscription", subID),
					logpkg.Str("consumer", consumer),
				)
				return nil
			}
			return err
		}
		if err := s.handleAcks(ctx, subID, req.GetAckIds()); err != nil {
			return err
		}
	}
}

func (s *hstreamSvc) handleAcks(ctx context.Context, subID string, ids []*hstreamv1.RecordId) error {
	acks := recordIDsFromProto(ids)
	if len(acks) == 0 {
		return nil
	}
	if err := s.rt.Subscriptions().AckBatch(ctx, subID, acks); err != nil {
		return sessionStatus(err)
	}
	return nil
}
