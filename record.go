package bsgs

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// record layout (little-endian, fixed per query):
// 0..IndexWidth            : sequenceID
// IndexWidth..RecordSize   : fieldValue

// compareFieldValue compares the fieldValue suffix of two records as unsigned
// little-endian integers. The sequenceID prefix is ignored, so records sort by
// coordinate while keeping their origin index.
func compareFieldValue(a, b []byte, indexWidth int) int {
	a, b = a[indexWidth:], b[indexWidth:]
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// swapRecord exchanges two equally sized records in place.
func swapRecord(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// putUintLE writes v into dst as a len(dst)-byte little-endian integer.
func putUintLE(dst []byte, v uint64) error {
	if len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, v)
		clear(dst[8:])
		return nil
	}
	if v>>(8*uint(len(dst))) != 0 {
		return fmt.Errorf("%w: %d does not fit %d bytes", ErrRecordOverflow, v, len(dst))
	}
	for i := range dst {
		dst[i] = byte(v >> (8 * uint(i)))
	}
	return nil
}

// uintLE reads a little-endian integer of up to 8 significant bytes.
func uintLE(src []byte) uint64 {
	if len(src) >= 8 {
		return binary.LittleEndian.Uint64(src)
	}
	var v uint64
	for i := len(src) - 1; i >= 0; i-- {
		v = v<<8 | uint64(src[i])
	}
	return v
}

// putBigLE writes a non-negative v into dst as a little-endian integer.
// scratch must be len(dst) bytes; it receives the big-endian form first.
func putBigLE(dst []byte, v *big.Int, scratch []byte) error {
	if v.Sign() < 0 || v.BitLen() > 8*len(dst) {
		return fmt.Errorf("%w: %s does not fit %d bytes", ErrRecordOverflow, v, len(dst))
	}
	v.FillBytes(scratch)
	last := len(dst) - 1
	for i := range dst {
		dst[i] = scratch[last-i]
	}
	return nil
}

// bigLE decodes a little-endian unsigned integer of any width.
func bigLE(src []byte) *big.Int {
	be := make([]byte, len(src))
	last := len(src) - 1
	for i := range src {
		be[i] = src[last-i]
	}
	return new(big.Int).SetBytes(be)
}
