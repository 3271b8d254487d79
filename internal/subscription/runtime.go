package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/hstreamdb/hdelivery/internal/logstore"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

const (
	defaultDispatchRecords = 1000
	defaultDispatchTick    = time.Second
)

// Runtime is the in-memory delivery state of one active subscription. All
// state mutations serialize on a single mutex; the mutex is never held
// across storage reads, checkpoint writes, or consumer sends. A runtime
// with no consumers is retained so the acked window and batch map survive
// reconnection; only subscription deletion tears it down.
type Runtime struct {
	id         string
	streamName string
	ackTimeout time.Duration
	log        *logstore.Log
	reader     *logstore.CheckpointedReader
	logger     logpkg.Logger

	batchRecords int
	tick         time.Duration
	// schedule arms a resend timer carrying only record ids; the timer
	// re-resolves this runtime through the registry when it fires.
	schedule func(ids []RecordID, delay time.Duration)

	mu         sync.Mutex
	lowerBound RecordID // next id expected; everything below is checkpointed
	upperBound RecordID // highest id ever dispatched; diagnostics only
	acked      *AckedRanges
	batches    *BatchNumMap
	senders    map[string]Sender
	signals    []chan struct{}
	valid      bool
}

// runtimeConfig carries everything needed to build a Runtime.
type runtimeConfig struct {
	id           string
	streamName   string
	ackTimeout   time.Duration
	log          *logstore.Log
	reader       *logstore.CheckpointedReader
	logger       logpkg.Logger
	start        RecordID
	batchRecords int
	tick         time.Duration
	schedule     func(ids []RecordID, delay time.Duration)
}

func newRuntime(cfg runtimeConfig) *Runtime {
	if cfg.batchRecords <= 0 {
		cfg.batchRecords = defaultDispatchRecords
	}
	if cfg.tick <= 0 {
		cfg.tick = defaultDispatchTick
	}
	if cfg.logger == nil {
		cfg.logger = logpkg.Discard()
	}
	if cfg.schedule == nil {
		cfg.schedule = func([]RecordID, time.Duration) {}
	}
	return &Runtime{
		id:           cfg.id,
		streamName:   cfg.streamName,
		ackTimeout:   cfg.ackTimeout,
		log:          cfg.log,
		reader:       cfg.reader,
		logger:       cfg.logger,
		batchRecords: cfg.batchRecords,
		tick:         cfg.tick,
		schedule:     cfg.schedule,
		lowerBound:   cfg.start,
		acked:        NewAckedRanges(),
		batches:      NewBatchNumMap(),
		senders:      map[string]Sender{},
		valid:        true,
	}
}

// ID returns the subscription id.
func (r *Runtime) ID() string { return r.id }

// StreamName returns the stream this subscription reads.
func (r *Runtime) StreamName() string { return r.streamName }

// Valid reports whether the runtime has not been deleted.
func (r *Runtime) Valid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valid
}

// NumConsumers returns the number of attached consumers.
func (r *Runtime) NumConsumers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.senders)
}

// WindowLowerBound returns the next id expected by the window.
func (r *Runtime) WindowLowerBound() RecordID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lowerBound
}

func (r *Runtime) wakeAllLocked() {
	for _, ch := range r.signals {
		close(ch)
	}
	r.signals = nil
}

// AttachConsumer registers a sender under the consumer name and wakes any
// dispatch or resend work parked on "a consumer exists".
func (r *Runtime) AttachConsumer(name string, s Sender) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.valid {
		return ErrSubscriptionRemoved
	}
	if _, ok := r.senders[name]; ok {
		return ErrConsumerExists
	}
	r.senders[name] = s
	r.wakeAllLocked()
	r.logger.Debug("subscription.consumer.attach",
		logpkg.Str("subscription", r.id),
		logpkg.Str("consumer", name),
		logpkg.Int("consumers", len(r.senders)),
	)
	return nil
}

// DetachConsumer removes the sender if present; the runtime is otherwise
// left intact. Idempotent.
func (r *Runtime) DetachConsumer(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.senders[name]; !ok {
		return
	}
	delete(r.senders, name)
	r.logger.Debug("subscription.consumer.detach",
		logpkg.Str("subscription", r.id),
		logpkg.Str("consumer", name),
		logpkg.Int("consumers", len(r.senders)),
	)
}

// MarkDeleted invalidates the runtime: senders are dropped, parked work
// is woken so it can observe the flag, and every later operation
// short-circuits.
func (r *Runtime) MarkDeleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.valid {
		return
	}
	r.valid = false
	r.senders = map[string]Sender{}
	r.wakeAllLocked()
	r.logger.Info("subscription.runtime.deleted", logpkg.Str("subscription", r.id))
}

// AckBatch folds the acked ids into the range set, advances the window as
// far as the contiguous acked prefix reaches, and writes one checkpoint
// per advancement. Duplicate acks and acks below the window are ignored.
func (r *Runtime) AckBatch(ctx context.Context, ids []RecordID) error {
	r.mu.Lock()
	if !r.valid {
		r.mu.Unlock()
		return ErrSubscriptionRemoved
	}
	r.logger.Debug("subscription.acks.before",
		logpkg.Str("subscription", r.id),
		logpkg.Int("n", len(ids)),
		logpkg.Str("ranges", r.acked.String()),
	)
	for _, id := range ids {
		r.acked.Insert(id, r.lowerBound, r.batches)
	}
	var checkpoints []RecordID
	for {
		newLower, checkpoint, ok := r.acked.AdvanceWindow(r.lowerBound, r.batches)
		if !ok {
			break
		}
		r.lowerBound = newLower
		checkpoints = append(checkpoints, checkpoint)
	}
	if len(checkpoints) > 0 {
		r.batches.PruneBelow(r.lowerBound.BatchID)
	}
	r.logger.Debug("subscription.acks.after",
		logpkg.Str("subscription", r.id),
		logpkg.Str("window", r.lowerBound.String()),
		logpkg.Str("ranges", r.acked.String()),
	)
	r.mu.Unlock()

	// Checkpoint writes happen outside the lock. CommitCheckpoint ignores
	// lower LSNs, so concurrent ack folds keep checkpoints non-decreasing.
	for _, cp := range checkpoints {
		if err := r.reader.Checkpoint(ctx, cp.BatchID); err != nil {
			return err
		}
	}
	return nil
}

// dispatchLoop runs until the runtime is deleted.
func (r *Runtime) dispatchLoop() {
	for r.dispatchOnce() {
	}
}

// dispatchOnce performs one dispatch iteration: wait for a consumer, read
// a slice of the log, record batch sizes and gaps, fan the records out,
// and arm the resend timer. Returns false once the runtime is deleted.
func (r *Runtime) dispatchOnce() bool {
	r.mu.Lock()
	for len(r.senders) == 0 {
		if !r.valid {
			r.mu.Unlock()
			return false
		}
		ch := make(chan struct{})
		r.signals = append(r.signals, ch)
		r.mu.Unlock()
		<-ch
		r.mu.Lock()
	}
	if !r.valid {
		r.mu.Unlock()
		return false
	}
	r.mu.Unlock()

	// The dispatch loop is the reader's only user; reads stay outside the
	// state lock.
	res, err := r.reader.Read(r.batchRecords)
	if err != nil {
		r.logger.Error("subscription.reader.fatal",
			logpkg.Str("subscription", r.id),
			logpkg.Err(err),
		)
		r.MarkDeleted()
		return false
	}

	r.mu.Lock()
	if !r.valid {
		r.mu.Unlock()
		return false
	}
	if res.Gap != nil {
		r.acked.InsertGap(res.Gap.Lo, res.Gap.Hi, r.lowerBound, r.batches)
		r.logger.Debug("subscription.reader.gap",
			logpkg.Str("subscription", r.id),
			logpkg.Uint64("lo", res.Gap.Lo),
			logpkg.Uint64("hi", res.Gap.Hi),
		)
	}
	var records []DeliveredRecord
	for _, b := range res.Batches {
		if len(b.Records) == 0 {
			continue
		}
		r.batches.Observe(b.LSN, uint32(len(b.Records)))
		for i, payload := range b.Records {
			id := RecordID{BatchID: b.LSN, BatchIndex: uint32(i)}
			if id.Less(r.lowerBound) {
				continue
			}
			records = append(records, DeliveredRecord{ID: id, Payload: payload})
		}
	}
	if len(records) > 0 {
		r.upperBound = maxRecordID(r.upperBound, records[len(records)-1].ID)
	}
	senders := make(map[string]Sender, len(r.senders))
	for name, s := range r.senders {
		senders[name] = s
	}
	valid := r.valid
	r.mu.Unlock()

	if len(records) == 0 {
		// Nothing deliverable; park until the next append or tick.
		r.log.WaitForAppend(r.tick)
		return true
	}
	if !valid {
		return false
	}

	failed := distribute(records, senders)
	if len(failed) > 0 {
		r.mu.Lock()
		for _, name := range failed {
			delete(r.senders, name)
		}
		r.mu.Unlock()
		for _, name := range failed {
			r.logger.Warn("subscription.consumer.send_failed",
				logpkg.Str("subscription", r.id),
				logpkg.Str("consumer", name),
			)
		}
	}

	ids := make([]RecordID, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	r.schedule(ids, r.ackTimeout)
	r.logger.Debug("subscription.dispatch",
		logpkg.Str("subscription", r.id),
		logpkg.Int("n", len(records)),
		logpkg.Str("first", ids[0].String()),
		logpkg.Str("last", ids[len(ids)-1].String()),
	)
	return true
}
