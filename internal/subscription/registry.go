package subscription

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hstreamdb/hdelivery/internal/logstore"
	"github.com/hstreamdb/hdelivery/internal/metadata"
	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// Options tunes the registry's runtimes.
type Options struct {
	// DispatchRecords bounds the records read per dispatch iteration;
	// batches are read whole, so one iteration can exceed it by part of a
	// batch.
	DispatchRecords int
	// DispatchTick paces an idle dispatch loop.
	DispatchTick time.Duration
	// AckTimeoutUnit scales Subscription.AckTimeoutSeconds; it defaults to
	// a second and exists so tests can compress time.
	AckTimeoutUnit time.Duration
}

// Registry owns every subscription runtime of the process. Creation,
// lookup, and deletion serialize on the registry lock; the lock is never
// held across runtime-level operations.
type Registry struct {
	db     *pebblestore.DB
	meta   *metadata.Store
	logs   *logstore.Opener
	logger logpkg.Logger
	opts   Options

	mu       sync.Mutex
	runtimes map[string]*Runtime
}

// NewRegistry builds a Registry over the shared KV. All log access goes
// through the shared opener so runtimes observe appends made elsewhere in
// the process.
func NewRegistry(db *pebblestore.DB, meta *metadata.Store, logs *logstore.Opener, logger logpkg.Logger, opts Options) *Registry {
	if logger == nil {
		logger = logpkg.Discard()
	}
	if opts.AckTimeoutUnit <= 0 {
		opts.AckTimeoutUnit = time.Second
	}
	return &Registry{
		db:       db,
		meta:     meta,
		logs:     logs,
		logger:   logger.With(logpkg.Component("subscriptions")),
		opts:     opts,
		runtimes: map[string]*Runtime{},
	}
}

// Create persists a new subscription. It does not materialize a runtime.
func (g *Registry) Create(ctx context.Context, sub metadata.Subscription) error {
	exists, err := logstore.LogExists(g.db, sub.StreamName)
	if err != nil {
		return err
	}
	if !exists {
		return ErrStreamNotFound
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	persisted, err := g.meta.Exists(sub.ID)
	if err != nil {
		return err
	}
	if persisted {
		return ErrSubscriptionExists
	}
	if err := g.meta.Put(sub); err != nil {
		return err
	}
	g.logger.Info("subscription.created",
		logpkg.Str("subscription", sub.ID),
		logpkg.Str("stream", sub.StreamName),
		logpkg.Uint32("ack_timeout_s", sub.AckTimeoutSeconds),
	)
	return nil
}

// Exists reports whether a subscription is persisted.
func (g *Registry) Exists(id string) (bool, error) {
	return g.meta.Exists(id)
}

// List returns all persisted subscriptions.
func (g *Registry) List() ([]metadata.Subscription, error) {
	return g.meta.List()
}

// Lookup returns the live runtime for id, nil when none is materialized.
func (g *Registry) Lookup(id string) *Runtime {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.runtimes[id]
}

// Delete removes the subscription: metadata first so new attaches fail,
// then the runtime. A runtime that still has consumers is marked deleted
// in place; the last detach reaps it.
func (g *Registry) Delete(ctx context.Context, id string) error {
	g.mu.Lock()
	persisted, err := g.meta.Exists(id)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	rt := g.runtimes[id]
	if !persisted && rt == nil {
		g.mu.Unlock()
		return ErrSubscriptionNotFound
	}
	var sub metadata.Subscription
	if persisted {
		sub, err = g.meta.Get(id)
		if err != nil {
			g.mu.Unlock()
			return err
		}
		if err := g.meta.Delete(id); err != nil {
			g.mu.Unlock()
			return err
		}
	}
	reap := rt != nil && rt.NumConsumers() == 0
	if reap {
		delete(g.runtimes, id)
	}
	g.mu.Unlock()

	if rt != nil {
		rt.MarkDeleted()
	}
	if persisted {
		// The subscription is final; drop its durable checkpoint too.
		if log, err := g.logs.Open(sub.StreamName); err == nil {
			_ = log.DeleteCheckpoint(id)
		}
	}
	g.logger.Info("subscription.deleted", logpkg.Str("subscription", id))
	return nil
}

// GetOrCreateRuntime returns the live runtime for id, materializing one
// from persisted metadata when absent.
func (g *Registry) GetOrCreateRuntime(ctx context.Context, id string) (*Runtime, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rt, ok := g.runtimes[id]; ok {
		return rt, nil
	}
	sub, err := g.meta.Get(id)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	log, err := g.logs.Open(sub.StreamName)
	if err != nil {
		return nil, err
	}
	start := resolveStartOffset(sub.Offset, log)
	reader, err := logstore.OpenCheckpointedReader(log, sub.ID, start.BatchID)
	if err != nil {
		return nil, err
	}
	// A restored checkpoint supersedes the configured offset.
	if reader.Pos() > start.BatchID {
		start = RecordID{BatchID: reader.Pos()}
	}
	rt := newRuntime(runtimeConfig{
		id:           sub.ID,
		streamName:   sub.StreamName,
		ackTimeout:   time.Duration(sub.AckTimeoutSeconds) * g.opts.AckTimeoutUnit,
		log:          log,
		reader:       reader,
		logger:       g.logger,
		start:        start,
		batchRecords: g.opts.DispatchRecords,
		tick:         g.opts.DispatchTick,
	})
	rt.schedule = func(ids []RecordID, delay time.Duration) {
		g.scheduleResend(id, ids, delay)
	}
	g.runtimes[id] = rt
	go rt.dispatchLoop()
	g.logger.Info("subscription.runtime.start",
		logpkg.Str("subscription", sub.ID),
		logpkg.Str("stream", sub.StreamName),
		logpkg.Str("start", start.String()),
	)
	return rt, nil
}

// AckBatch routes acks to the runtime, re-resolving through the registry
// so a session never outlives a deletion race.
func (g *Registry) AckBatch(ctx context.Context, id string, ids []RecordID) error {
	rt := g.Lookup(id)
	if rt == nil {
		return ErrSubscriptionRemoved
	}
	return rt.AckBatch(ctx, ids)
}

// Detach removes a consumer from the subscription's runtime and reaps the
// runtime once it is both deleted and empty.
func (g *Registry) Detach(id, consumer string) {
	rt := g.Lookup(id)
	if rt == nil {
		return
	}
	rt.DetachConsumer(consumer)
	if !rt.Valid() && rt.NumConsumers() == 0 {
		g.mu.Lock()
		if g.runtimes[id] == rt {
			delete(g.runtimes, id)
		}
		g.mu.Unlock()
	}
}

// scheduleResend arms a timer that carries only (subscription id, record
// ids) and re-resolves the runtime on fire, so it survives deletion.
func (g *Registry) scheduleResend(id string, ids []RecordID, delay time.Duration) {
	if len(ids) == 0 {
		return
	}
	time.AfterFunc(delay, func() {
		rt := g.Lookup(id)
		if rt == nil {
			return
		}
		if rt.resendOnce(ids) {
			g.scheduleResend(id, ids, delay)
		}
	})
}

// Close marks every runtime deleted so dispatch loops and timers drain.
func (g *Registry) Close() {
	g.mu.Lock()
	runtimes := make([]*Runtime, 0, len(g.runtimes))
	for _, rt := range g.runtimes {
		runtimes = append(runtimes, rt)
	}
	g.runtimes = map[string]*Runtime{}
	g.mu.Unlock()
	for _, rt := range runtimes {
		rt.MarkDeleted()
	}
}
