package subscription

import (
	"github.com/hstreamdb/hdelivery/internal/logstore"
	"github.com/hstreamdb/hdelivery/internal/metadata"
)

// resolveStartOffset maps a subscription's configured offset onto a
// concrete record id against the current state of the log.
func resolveStartOffset(offset metadata.Offset, log *logstore.Log) RecordID {
	switch offset.Kind {
	case metadata.OffsetLatest:
		return RecordID{BatchID: log.TailLSN() + 1}
	case metadata.OffsetRecordID:
		return RecordID{BatchID: offset.BatchID, BatchIndex: offset.BatchIndex}
	default:
		// earliest
		return RecordID{BatchID: 1}
	}
}
