package logstore

import (
	"encoding/binary"
	"hash/crc32"
)

// Batch entry encoding:
// varint count | count * (varint len | payload) | crc32c(payloads)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// EncodeBatch serializes the records of one append batch.
func EncodeBatch(records [][]byte) []byte {
	size := 10 + 4
	for _, r := range records {
		size += 10 + len(r)
	}
	out := make([]byte, 0, size)
	var tmp [10]byte
	n := binary.PutUvarint(tmp[:], uint64(len(records)))
	out = append(out, tmp[:n]...)

	crc := uint32(0)
	for _, r := range records {
		n = binary.PutUvarint(tmp[:], uint64(len(r)))
		out = append(out, tmp[:n]...)
		out = append(out, r...)
		crc = crc32.Update(crc, castagnoli, r)
	}
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	out = append(out, crcb[:]...)
	return out
}

// DecodeBatch parses a batch entry, verifying the checksum.
func DecodeBatch(b []byte) ([][]byte, bool) {
	if len(b) < 1+4 {
		return nil, false
	}
	body := b[:len(b)-4]
	expect := binary.BigEndian.Uint32(b[len(b)-4:])

	count, n := binary.Uvarint(body)
	if n <= 0 {
		return nil, false
	}
	body = body[n:]
	records := make([][]byte, 0, count)
	crc := uint32(0)
	for i := uint64(0); i < count; i++ {
		rlen, n := binary.Uvarint(body)
		if n <= 0 || uint64(len(body)-n) < rlen {
			return nil, false
		}
		rec := body[n : n+int(rlen)]
		records = append(records, append([]byte(nil), rec...))
		crc = crc32.Update(crc, castagnoli, rec)
		body = body[n+int(rlen):]
	}
	if len(body) != 0 || crc != expect {
		return nil, false
	}
	return records, true
}
