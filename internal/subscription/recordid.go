package subscription

import (
	"fmt"
	"math"

	"github.com/tidwall/btree"
)

// RecordID identifies one record: the LSN of its batch plus the record's
// index within the batch. RecordIDs are ordered lexicographically.
type RecordID struct {
	BatchID    uint64
	BatchIndex uint32
}

// Less reports whether r orders strictly before other.
func (r RecordID) Less(other RecordID) bool {
	if r.BatchID != other.BatchID {
		return r.BatchID < other.BatchID
	}
	return r.BatchIndex < other.BatchIndex
}

// String renders the id as "batchId-batchIndex".
func (r RecordID) String() string {
	return fmt.Sprintf("%d-%d", r.BatchID, r.BatchIndex)
}

func maxRecordID(a, b RecordID) RecordID {
	if a.Less(b) {
		return b
	}
	return a
}

// BatchNumMap tracks how many records each observed batch carries, in
// batch order. It is populated at dispatch time and consulted for every
// successor/predecessor computation; it only shrinks by explicit pruning
// below the window lower bound.
type BatchNumMap struct {
	counts btree.Map[uint64, uint32]
}

// NewBatchNumMap returns an empty map.
func NewBatchNumMap() *BatchNumMap {
	return &BatchNumMap{}
}

// Observe records the size of a batch.
func (m *BatchNumMap) Observe(batchID uint64, count uint32) {
	m.counts.Set(batchID, count)
}

// Count returns the number of records in a batch, if observed.
func (m *BatchNumMap) Count(batchID uint64) (uint32, bool) {
	return m.counts.Get(batchID)
}

// Len returns the number of observed batches.
func (m *BatchNumMap) Len() int {
	return m.counts.Len()
}

// Successor returns the id immediately after id in delivery order. Within
// a batch it advances the index; at a batch boundary it advances to the
// next observed batch. When no later batch has been observed yet it falls
// back to (batchId+1, 0); the log assigns dense LSNs, so the id of the
// next real batch is never skipped.
func (m *BatchNumMap) Successor(id RecordID) RecordID {
	if count, ok := m.counts.Get(id.BatchID); ok && id.BatchIndex+1 < count {
		return RecordID{BatchID: id.BatchID, BatchIndex: id.BatchIndex + 1}
	}
	next := RecordID{BatchID: id.BatchID + 1}
	m.counts.Ascend(id.BatchID+1, func(batchID uint64, _ uint32) bool {
		next = RecordID{BatchID: batchID}
		return false
	})
	return next
}

// Predecessor returns the id immediately before id in delivery order.
// Crossing a batch boundary yields the last record of the nearest observed
// lower batch. With no lower batch observed it yields (batchId-1,
// MaxUint32), the same end position a synthetic gap range carries, so
// ranges on either side of a gap merge canonically.
func (m *BatchNumMap) Predecessor(id RecordID) RecordID {
	if id.BatchIndex > 0 {
		return RecordID{BatchID: id.BatchID, BatchIndex: id.BatchIndex - 1}
	}
	if id.BatchID == 0 {
		return id
	}
	pred := RecordID{BatchID: id.BatchID - 1, BatchIndex: math.MaxUint32}
	m.counts.Descend(id.BatchID-1, func(batchID uint64, count uint32) bool {
		if count > 0 {
			pred = RecordID{BatchID: batchID, BatchIndex: count - 1}
		} else {
			pred = RecordID{BatchID: batchID}
		}
		return false
	})
	return pred
}

// PruneBelow drops entries for batches strictly below batchID. Entries at
// or above the window lower bound are never pruned.
func (m *BatchNumMap) PruneBelow(batchID uint64) {
	var stale []uint64
	m.counts.Ascend(0, func(b uint64, _ uint32) bool {
		if b >= batchID {
			return false
		}
		stale = append(stale, b)
		return true
	})
	for _, b := range stale {
		m.counts.Delete(b)
	}
}
