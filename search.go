package bsgs

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Candidate asserts that baby step L and giant step R reached group elements
// with equal coordinates.
type Candidate struct {
	L, R uint64
}

// search merge-scans every (L-partition, R-partition) pair of two buffers
// whose partitions are individually sorted, and returns one Candidate per
// pair that has a match. Order of the result is unspecified.
//
// By default the W scans of one L-partition run concurrently and the next
// L-partition starts after they finish. With flat set all W² scans share one
// group limited to W goroutines.
func search(ctx context.Context, L, R *RecordBuffer, parts []partition, flat bool, stats *Stats) ([]Candidate, error) {
	if L.Layout() != R.Layout() {
		return nil, fmt.Errorf("search: layout mismatch %+v != %+v", L.Layout(), R.Layout())
	}
	L.advise(accessSequential)
	R.advise(accessSequential)

	out := make(chan Candidate, len(parts))
	done := make(chan struct{})
	var found []Candidate
	go func() {
		defer close(done)
		for c := range out {
			found = append(found, c)
		}
	}()

	scan := func(eg *errgroup.Group, ctx context.Context, pl, pr partition) {
		if pl.len() == 0 || pr.len() == 0 {
			return
		}
		lv, rv := L.view(pl.lo, pl.hi), R.view(pr.lo, pr.hi)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var c counters
			cand, ok := scanPair(lv, rv, &c)
			stats.addScan(c, ok)
			if ok {
				out <- cand
			}
			return nil
		})
	}

	var err error
	if flat {
		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(len(parts))
		for _, pl := range parts {
			for _, pr := range parts {
				scan(eg, ectx, pl, pr)
			}
		}
		err = eg.Wait()
	} else {
		for _, pl := range parts {
			eg, ectx := errgroup.WithContext(ctx)
			for _, pr := range parts {
				scan(eg, ectx, pl, pr)
			}
			if err = eg.Wait(); err != nil {
				break
			}
		}
	}
	close(out)
	<-done
	return found, err
}

// scanPair runs a two-pointer scan over two sorted partitions, advancing the
// cursor at the smaller fieldValue, and stops at the first equal pair or when
// either side is exhausted.
func scanPair(lv, rv *RecordBuffer, c *counters) (Candidate, bool) {
	iw := lv.layout.IndexWidth
	i, j := 0, 0
	for i < lv.Len() && j < rv.Len() {
		c.comparisons++
		switch compareFieldValue(lv.Record(i), rv.Record(j), iw) {
		case -1:
			i++
		case 1:
			j++
		default:
			return Candidate{L: lv.SequenceID(i), R: rv.SequenceID(j)}, true
		}
	}
	return Candidate{}, false
}
