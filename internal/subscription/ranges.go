package subscription

import (
	"math"
	"strings"

	"github.com/tidwall/btree"
)

// RecordIDRange is an inclusive range of acked record ids. A range covers
// every id between Start and End in delivery order.
type RecordIDRange struct {
	Start RecordID
	End   RecordID
}

// AckedRanges is the canonical sparse set of acked record ids above the
// window lower bound: an ordered collection of pairwise disjoint,
// pairwise non-adjacent inclusive ranges keyed by their start id.
type AckedRanges struct {
	tr *btree.BTreeG[RecordIDRange]
}

// NewAckedRanges returns an empty set.
func NewAckedRanges() *AckedRanges {
	return &AckedRanges{
		tr: btree.NewBTreeG(func(a, b RecordIDRange) bool { return a.Start.Less(b.Start) }),
	}
}

// Len returns the number of ranges.
func (a *AckedRanges) Len() int { return a.tr.Len() }

// floor returns the greatest range with Start <= id.
func (a *AckedRanges) floor(id RecordID) (RecordIDRange, bool) {
	var out RecordIDRange
	found := false
	a.tr.Descend(RecordIDRange{Start: id}, func(item RecordIDRange) bool {
		out = item
		found = true
		return false
	})
	return out, found
}

// Covers reports whether id is inside some acked range.
func (a *AckedRanges) Covers(id RecordID) bool {
	r, ok := a.floor(id)
	return ok && !r.End.Less(id)
}

// Insert adds a single acked id. It returns false when the id is below
// the window lower bound or already covered; both are idempotent no-ops.
func (a *AckedRanges) Insert(id RecordID, lowerBound RecordID, batches *BatchNumMap) bool {
	if id.Less(lowerBound) {
		return false
	}
	if a.Covers(id) {
		return false
	}
	a.insertRange(RecordIDRange{Start: id, End: id}, batches)
	return true
}

// InsertGap records a storage gap [lo, hi] (whole batches with no data) as
// a synthetic fully-acked range from (lo, 0) through (hi, MaxUint32).
func (a *AckedRanges) InsertGap(lo, hi uint64, lowerBound RecordID, batches *BatchNumMap) bool {
	if hi < lo {
		return false
	}
	r := RecordIDRange{
		Start: RecordID{BatchID: lo},
		End:   RecordID{BatchID: hi, BatchIndex: math.MaxUint32},
	}
	if r.End.Less(lowerBound) {
		return false
	}
	if r.Start.Less(lowerBound) {
		r.Start = lowerBound
	}
	a.insertRange(r, batches)
	return true
}

// insertRange folds r into the set, merging every range it overlaps or is
// adjacent to. Adjacency is decided through the batch map's
// successor/predecessor order.
func (a *AckedRanges) insertRange(r RecordIDRange, batches *BatchNumMap) {
	// Merge with the closest range on the left when it reaches r's
	// predecessor (adjacent) or into r itself (overlap).
	if pred, ok := a.floor(r.Start); ok {
		if !pred.End.Less(batches.Predecessor(r.Start)) {
			a.tr.Delete(pred)
			r.Start = pred.Start
			r.End = maxRecordID(r.End, pred.End)
		}
	}
	// Merge every range on the right starting at or before successor(End).
	for {
		var succ RecordIDRange
		found := false
		a.tr.Ascend(RecordIDRange{Start: r.Start}, func(item RecordIDRange) bool {
			succ = item
			found = true
			return false
		})
		if !found {
			break
		}
		boundary := batches.Successor(r.End)
		if boundary.Less(succ.Start) {
			break
		}
		a.tr.Delete(succ)
		r.End = maxRecordID(r.End, succ.End)
	}
	a.tr.Set(r)
}

// AdvanceWindow removes the minimum range when it starts exactly at the
// window lower bound. It returns the new lower bound (the successor of the
// removed range's end) and the id to checkpoint at. Callers apply it
// repeatedly until it reports false.
func (a *AckedRanges) AdvanceWindow(lowerBound RecordID, batches *BatchNumMap) (newLower RecordID, checkpoint RecordID, ok bool) {
	min, found := a.tr.Min()
	if !found || min.Start != lowerBound {
		return RecordID{}, RecordID{}, false
	}
	a.tr.Delete(min)
	return batches.Successor(min.End), min.End, true
}

// Ranges returns the ranges in ascending order. Intended for diagnostics
// and tests.
func (a *AckedRanges) Ranges() []RecordIDRange {
	out := make([]RecordIDRange, 0, a.tr.Len())
	a.tr.Scan(func(item RecordIDRange) bool {
		out = append(out, item)
		return true
	})
	return out
}

// String renders the set as "[s..e][s..e]".
func (a *AckedRanges) String() string {
	var sb strings.Builder
	for _, r := range a.Ranges() {
		sb.WriteString("[")
		sb.WriteString(r.Start.String())
		sb.WriteString("..")
		sb.WriteString(r.End.String())
		sb.WriteString("]")
	}
	return sb.String()
}
