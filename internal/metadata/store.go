package metadata

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

// ErrNotFound is returned when a subscription record does not exist.
var ErrNotFound = errors.New("metadata: subscription not found")

const subscriptionPrefix = "subscriptions/"

// OffsetKind selects how a subscription's start position is resolved.
type OffsetKind string

const (
	OffsetEarliest OffsetKind = "earliest"
	OffsetLatest   OffsetKind = "latest"
	OffsetRecordID OffsetKind = "recordId"
)

// Offset is a subscription's configured start position.
type Offset struct {
	Kind       OffsetKind `json:"kind"`
	BatchID    uint64     `json:"batchId,omitempty"`
	BatchIndex uint32     `json:"batchIndex,omitempty"`
}

// Subscription is the immutable persisted configuration of one
// subscription. Deletion is final.
type Subscription struct {
	ID                string `json:"id"`
	StreamName        string `json:"streamName"`
	AckTimeoutSeconds uint32 `json:"ackTimeoutSeconds"`
	Offset            Offset `json:"offset"`
}

// Store persists subscription records on the shared KV.
type Store struct {
	db *pebblestore.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *pebblestore.DB) *Store {
	return &Store{db: db}
}

func subscriptionKey(id string) []byte {
	return []byte(subscriptionPrefix + id)
}

// Exists reports whether a subscription record is persisted.
func (s *Store) Exists(id string) (bool, error) {
	return s.db.Has(subscriptionKey(id))
}

// Get loads a subscription record.
func (s *Store) Get(id string) (Subscription, error) {
	val, err := s.db.Get(subscriptionKey(id))
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	var sub Subscription
	if err := decodeSubscription(val, &sub); err != nil {
		return Subscription{}, fmt.Errorf("metadata: decode %s: %w", id, err)
	}
	return sub, nil
}

// Put writes a subscription record.
func (s *Store) Put(sub Subscription) error {
	val, err := encodeSubscription(sub)
	if err != nil {
		return fmt.Errorf("metadata: encode %s: %w", sub.ID, err)
	}
	return s.db.Set(subscriptionKey(sub.ID), val)
}

// Delete removes a subscription record. Deleting an absent record is a
// no-op.
func (s *Store) Delete(id string) error {
	return s.db.Delete(subscriptionKey(id))
}

// List enumerates all persisted subscriptions.
func (s *Store) List() ([]Subscription, error) {
	low := []byte(subscriptionPrefix)
	hi := append(append([]byte{}, low...), 0xFF)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: hi})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Subscription
	for ok := iter.First(); ok; ok = iter.Next() {
		var sub Subscription
		if err := decodeSubscription(iter.Value(), &sub); err != nil {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}
