package logstore

import (
	"encoding/binary"
)

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - log/{stream}/m                  meta: lastLSN(8) | firstLSN(8)
// - log/{stream}/e/{lsn_be8}        batch entry
// - ckpt/{stream}/{subscription}    checkpoint: LSN(8)

var (
	sep        = byte('/')
	logPrefix  = []byte("log/")
	ckptPrefix = []byte("ckpt/")
	metaSuffix = []byte("/m")
	entrySeg   = []byte("/e/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// KeyLogMeta builds the per-stream metadata key.
func KeyLogMeta(stream string) []byte {
	k := make([]byte, 0, len(stream)+8)
	k = append(k, logPrefix...)
	k = append(k, stream...)
	k = append(k, metaSuffix...)
	return k
}

// KeyLogEntry builds the batch entry key with a big-endian LSN for ordering.
func KeyLogEntry(stream string, lsn uint64) []byte {
	k := make([]byte, 0, len(stream)+16)
	k = append(k, logPrefix...)
	k = append(k, stream...)
	k = append(k, entrySeg...)
	k = appendBE8(k, lsn)
	return k
}

// KeyCheckpoint builds the durable checkpoint key for a subscription.
func KeyCheckpoint(stream, subscription string) []byte {
	k := make([]byte, 0, len(stream)+len(subscription)+8)
	k = append(k, ckptPrefix...)
	k = append(k, stream...)
	k = append(k, sep)
	k = append(k, subscription...)
	return k
}

// KeyCheckpointPrefix returns a range prefix covering all checkpoints of a
// stream.
func KeyCheckpointPrefix(stream string) []byte {
	k := make([]byte, 0, len(stream)+8)
	k = append(k, ckptPrefix...)
	k = append(k, stream...)
	k = append(k, sep)
	return k
}
