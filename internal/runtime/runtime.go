package runtime

import (
	"context"
	"errors"
	"time"

	cfgpkg "github.com/hstreamdb/hdelivery/internal/config"
	"github.com/hstreamdb/hdelivery/internal/logstore"
	"github.com/hstreamdb/hdelivery/internal/metadata"
	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
	"github.com/hstreamdb/hdelivery/internal/subscription"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
	Logger        logpkg.Logger
}

// Runtime wires storage, metadata, logs, and the subscription registry for
// a single-node instance.
type Runtime struct {
	db     *pebblestore.DB
	config cfgpkg.Config
	logs   *logstore.Opener
	meta   *metadata.Store
	subs   *subscription.Registry
}

// Open initializes the underlying storage and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	db, err := pebblestore.Open(pebblestore.Options{DataDir: opts.DataDir, Fsync: opts.Fsync, FsyncInterval: opts.FsyncInterval})
	if err != nil {
		return nil, err
	}
	logs := logstore.NewOpener(db)
	meta := metadata.NewStore(db)
	subs := subscription.NewRegistry(db, meta, logs, opts.Logger, subscription.Options{
		DispatchRecords: opts.Config.DispatchBatchRecords,
		DispatchTick:    time.Duration(opts.Config.DispatchTickMs) * time.Millisecond,
	})
	return &Runtime{db: db, config: opts.Config, logs: logs, meta: meta, subs: subs}, nil
}

// Close tears down subscriptions before closing storage.
func (r *Runtime) Close() error {
	if r.subs != nil {
		r.subs.Close()
	}
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple storage health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// DB exposes the underlying KV for internal components.
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Logs returns the shared per-stream log opener.
func (r *Runtime) Logs() *logstore.Opener { return r.logs }

// Metadata returns the subscription metadata store.
func (r *Runtime) Metadata() *metadata.Store { return r.meta }

// Subscriptions returns the process-wide subscription registry.
func (r *Runtime) Subscriptions() *subscription.Registry { return r.subs }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
