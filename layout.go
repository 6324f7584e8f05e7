package bsgs

import (
	"fmt"
	"math"
	"math/big"
)

// Layout describes the fixed record geometry of one query. It is computed once
// from (n, p) and shared by both buffers.
type Layout struct {
	Count      int // jumlah record per buffer (n)
	IndexWidth int // byte untuk sequenceID = ⌈bits(n)/8⌉+1
	ItemWidth  int // byte untuk fieldValue = ⌈bits(p)/8⌉+1
}

// widthFor returns ⌈bits/8⌉+1.
func widthFor(bits int) int {
	return (bits+7)/8 + 1
}

// NewLayout derives the record layout for a search bound n over a field of
// characteristic p.
func NewLayout(n int, p *big.Int) (Layout, error) {
	if n <= 0 {
		return Layout{}, fmt.Errorf("layout: record count must be positive, got %d", n)
	}
	if p == nil || p.Sign() <= 0 {
		return Layout{}, fmt.Errorf("layout: characteristic must be positive")
	}
	l := Layout{
		Count:      n,
		IndexWidth: widthFor(big.NewInt(int64(n)).BitLen()),
		ItemWidth:  widthFor(p.BitLen()),
	}
	if l.Count > math.MaxInt/l.RecordSize() {
		return Layout{}, &AllocationError{Bytes: -1, cause: fmt.Errorf("%d records of %d bytes overflow int", n, l.RecordSize())}
	}
	return l, nil
}

// RecordSize is the width of one record in bytes.
func (l Layout) RecordSize() int { return l.IndexWidth + l.ItemWidth }

// Bytes is the size of one buffer holding Count records.
func (l Layout) Bytes() int { return l.Count * l.RecordSize() }
