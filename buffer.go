package bsgs

import (
	"fmt"
	"math/big"
	"os"
	"sync"
)

// RecordBuffer is a contiguous region of fixed-width records shared by all
// workers of one query. Workers never hold the whole buffer: each receives a
// view over its own partition, so concurrent writers never overlap.
//
// A RecordBuffer returned by newRecordBuffer owns its region and must be
// released with Close. Views share the region and do not own it.
type RecordBuffer struct {
	layout Layout
	data   []byte // records of this buffer or view
	count  int    // number of records in data

	mmap     []byte   // whole mapping (nil for heap buffers and views)
	file     *os.File // spill file (nil unless SpillDir is used)
	filePath string
	owner    bool

	scratch *sync.Pool // big-endian scratch for putBigLE, ItemWidth bytes
}

func newScratchPool(width int) *sync.Pool {
	return &sync.Pool{New: func() any {
		b := make([]byte, width)
		return &b
	}}
}

// getScratch mengambil buffer dari pool; ukurannya selalu ItemWidth byte.
func (b *RecordBuffer) getScratch() *[]byte {
	return b.scratch.Get().(*[]byte)
}

// returnScratch mengembalikan buffer ke pool. Hanya buffer dengan ukuran
// tepat yang dimasukkan kembali.
func (b *RecordBuffer) returnScratch(s *[]byte) {
	if len(*s) == b.layout.ItemWidth {
		b.scratch.Put(s)
	}
}

// Layout returns the record geometry of the buffer.
func (b *RecordBuffer) Layout() Layout { return b.layout }

// Len returns the number of records in the buffer or view.
func (b *RecordBuffer) Len() int { return b.count }

// Bytes exposes the raw record bytes of the buffer or view.
func (b *RecordBuffer) Bytes() []byte { return b.data }

// Record returns the byte span of record i. The span aliases the buffer.
func (b *RecordBuffer) Record(i int) []byte {
	rs := b.layout.RecordSize()
	off := i * rs
	return b.data[off : off+rs : off+rs]
}

// SequenceID decodes the sequenceID prefix of record i.
func (b *RecordBuffer) SequenceID(i int) uint64 {
	return uintLE(b.Record(i)[:b.layout.IndexWidth])
}

// FieldValue decodes the fieldValue suffix of record i.
func (b *RecordBuffer) FieldValue(i int) *big.Int {
	return bigLE(b.Record(i)[b.layout.IndexWidth:])
}

// Put writes record i.
func (b *RecordBuffer) Put(i int, seq uint64, value *big.Int) error {
	s := b.getScratch()
	defer b.returnScratch(s)
	return b.put(b.Record(i), seq, value, *s)
}

func (b *RecordBuffer) put(rec []byte, seq uint64, value *big.Int, scratch []byte) error {
	if err := putUintLE(rec[:b.layout.IndexWidth], seq); err != nil {
		return err
	}
	return putBigLE(rec[b.layout.IndexWidth:], value, scratch)
}

// view returns the records [lo, hi) as a non-owning buffer over the same
// region.
func (b *RecordBuffer) view(lo, hi int) *RecordBuffer {
	if lo < 0 || hi > b.count || lo > hi {
		panic(fmt.Sprintf("bsgs: view [%d,%d) out of range (len %d)", lo, hi, b.count))
	}
	rs := b.layout.RecordSize()
	return &RecordBuffer{
		layout:  b.layout,
		data:    b.data[lo*rs : hi*rs : hi*rs],
		count:   hi - lo,
		scratch: b.scratch,
	}
}
