package logstore

import (
	"context"
	"sync"

	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

// Opener hands out one shared Log per stream. Appenders and readers must
// go through the same instance so the in-memory tail and append
// notifications stay coherent across the process.
type Opener struct {
	db *pebblestore.DB

	mu   sync.Mutex
	logs map[string]*Log
}

// NewOpener builds an Opener over db.
func NewOpener(db *pebblestore.DB) *Opener {
	return &Opener{db: db, logs: map[string]*Log{}}
}

// Open returns the shared Log for a stream, creating the handle on first
// use.
func (o *Opener) Open(stream string) (*Log, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if l, ok := o.logs[stream]; ok {
		return l, nil
	}
	l, err := OpenLog(o.db, stream)
	if err != nil {
		return nil, err
	}
	o.logs[stream] = l
	return l, nil
}

// Create ensures the stream's log metadata exists and returns its shared
// handle.
func (o *Opener) Create(ctx context.Context, stream string) (*Log, error) {
	if err := CreateLog(ctx, o.db, stream); err != nil {
		return nil, err
	}
	return o.Open(stream)
}

// Forget drops the cached handle, typically after the stream is deleted.
func (o *Opener) Forget(stream string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.logs, stream)
}
