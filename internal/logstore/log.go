package logstore

import (
	"context"
	"encoding/binary"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

// LSNMax is the highest addressable log sequence number.
const LSNMax = ^uint64(0)

// ErrBatchNotFound is returned when a batch LSN is absent from the log.
var ErrBatchNotFound = errors.New("logstore: batch not found")

// Log provides append and positional read operations for one stream.
// Every Append assigns a single LSN shared by all records of the call.
type Log struct {
	db     *pebblestore.DB
	stream string

	mu       sync.Mutex
	lastLSN  uint64
	firstLSN uint64 // lowest retained LSN; entries below are trimmed
	notifyCh chan struct{}
}

// OpenLog initializes a Log and restores LSN bounds from metadata if present.
func OpenLog(db *pebblestore.DB, stream string) (*Log, error) {
	l := &Log{db: db, stream: stream, firstLSN: 1, notifyCh: make(chan struct{})}
	meta, err := db.Get(KeyLogMeta(stream))
	if err == nil && len(meta) >= 16 {
		l.lastLSN = binary.BigEndian.Uint64(meta[0:8])
		l.firstLSN = binary.BigEndian.Uint64(meta[8:16])
	}
	return l, nil
}

// Stream returns the stream name this log belongs to.
func (l *Log) Stream() string { return l.stream }

func (l *Log) writeMetaLocked(b *pebble.Batch) error {
	var meta [16]byte
	binary.BigEndian.PutUint64(meta[0:8], l.lastLSN)
	binary.BigEndian.PutUint64(meta[8:16], l.firstLSN)
	return b.Set(KeyLogMeta(l.stream), meta[:], nil)
}

// Append writes the records as one atomic batch under a single new LSN.
func (l *Log) Append(ctx context.Context, records [][]byte) (uint64, error) {
	if len(records) == 0 {
		return 0, errors.New("logstore: empty append")
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.db.NewBatch()
	defer b.Close()

	l.lastLSN++
	lsn := l.lastLSN
	if err := b.Set(KeyLogEntry(l.stream, lsn), EncodeBatch(records), nil); err != nil {
		return 0, err
	}
	if err := l.writeMetaLocked(b); err != nil {
		return 0, err
	}
	if err := l.db.CommitBatch(ctx, b); err != nil {
		l.lastLSN--
		return 0, err
	}
	// notify waiters
	close(l.notifyCh)
	l.notifyCh = make(chan struct{})
	return lsn, nil
}

// TailLSN returns the highest assigned LSN, 0 when the log is empty.
func (l *Log) TailLSN() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastLSN
}

// FirstLSN returns the lowest retained LSN.
func (l *Log) FirstLSN() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.firstLSN
}

// WaitForAppend blocks until either a new append occurs or timeout elapses.
// It returns true if woken by an append, false on timeout.
func (l *Log) WaitForAppend(timeout time.Duration) bool {
	l.mu.Lock()
	ch := l.notifyCh
	l.mu.Unlock()
	if timeout <= 0 {
		<-ch
		return true
	}
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// ReadBatch loads the records stored under one LSN.
func (l *Log) ReadBatch(lsn uint64) ([][]byte, error) {
	val, err := l.db.Get(KeyLogEntry(l.stream, lsn))
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	records, ok := DecodeBatch(val)
	if !ok {
		return nil, errors.New("logstore: corrupt batch entry")
	}
	return records, nil
}

// Trim deletes all batches with LSN <= upto and advances the retained lower
// bound. Readers positioned below the new bound observe a gap.
func (l *Log) Trim(ctx context.Context, upto uint64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if upto < l.firstLSN {
		return 0, nil
	}

	low := KeyLogEntry(l.stream, 0)
	hi := KeyLogEntry(l.stream, upto)
	iter, err := l.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	b := l.db.NewBatch()
	defer b.Close()
	deleted := 0
	for ok := iter.First(); ok; ok = iter.Next() {
		if err := b.Delete(iter.Key(), nil); err != nil {
			return 0, err
		}
		deleted++
	}
	l.firstLSN = upto + 1
	if err := l.writeMetaLocked(b); err != nil {
		return 0, err
	}
	if err := l.db.CommitBatch(ctx, b); err != nil {
		return 0, err
	}
	return deleted, nil
}

// DeleteLog removes all entries, metadata, and checkpoints of a stream.
func DeleteLog(ctx context.Context, db *pebblestore.DB, stream string) error {
	b := db.NewBatch()
	defer b.Close()

	low := KeyLogEntry(stream, 0)
	hi := KeyLogEntry(stream, LSNMax)
	iter, err := db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return err
	}
	for ok := iter.First(); ok; ok = iter.Next() {
		if err := b.Delete(iter.Key(), nil); err != nil {
			iter.Close()
			return err
		}
	}
	if err := iter.Close(); err != nil {
		return err
	}

	ckptLow := KeyCheckpointPrefix(stream)
	ckptHi := append(append([]byte{}, ckptLow...), 0xFF)
	citer, err := db.NewIter(&pebble.IterOptions{LowerBound: ckptLow, UpperBound: ckptHi})
	if err != nil {
		return err
	}
	for ok := citer.First(); ok; ok = citer.Next() {
		if err := b.Delete(citer.Key(), nil); err != nil {
			citer.Close()
			return err
		}
	}
	if err := citer.Close(); err != nil {
		return err
	}

	if err := b.Delete(KeyLogMeta(stream), nil); err != nil {
		return err
	}
	return db.CommitBatch(ctx, b)
}

// LogExists reports whether a stream has log metadata.
func LogExists(db *pebblestore.DB, stream string) (bool, error) {
	return db.Has(KeyLogMeta(stream))
}

// ListLogs enumerates stream names that have log metadata.
func ListLogs(db *pebblestore.DB) ([]string, error) {
	hi := append(append([]byte{}, logPrefix...), 0xFF)
	iter, err := db.NewIter(&pebble.IterOptions{LowerBound: logPrefix, UpperBound: hi})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []string
	for ok := iter.First(); ok; ok = iter.Next() {
		k := iter.Key()
		if len(k) <= len(logPrefix)+len(metaSuffix) || string(k[len(k)-len(metaSuffix):]) != string(metaSuffix) {
			continue
		}
		name := string(k[len(logPrefix) : len(k)-len(metaSuffix)])
		// Entry keys can end in the meta suffix bytes by accident; stream
		// names never contain a separator.
		if strings.ContainsRune(name, rune(sep)) {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// CreateLog writes initial metadata for a stream so it lists as existing
// before its first append. Creating an existing stream is a no-op; the
// recorded LSN bounds are preserved.
func CreateLog(ctx context.Context, db *pebblestore.DB, stream string) error {
	exists, err := db.Has(KeyLogMeta(stream))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	var meta [16]byte
	binary.BigEndian.PutUint64(meta[8:16], 1)
	return db.Set(KeyLogMeta(stream), meta[:])
}
