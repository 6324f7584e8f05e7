package bsgs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// sortPartitions quicksorts every partition of buf by fieldValue, one worker
// per partition. Partitions are not merged: each is non-decreasing on its own
// and the buffer as a whole is not globally ordered.
func sortPartitions(ctx context.Context, buf *RecordBuffer, parts []partition, stats *Stats) error {
	buf.advise(accessRandom)

	eg, ctx := errgroup.WithContext(ctx)
	for _, part := range parts {
		if part.len() < 2 {
			continue
		}
		v := buf.view(part.lo, part.hi)
		eg.Go(func() error {
			var c counters
			err := quicksort(ctx, v, &c)
			stats.add(c)
			return err
		})
	}
	return eg.Wait()
}

// span is an inclusive record range awaiting partitioning.
type span struct{ lo, hi int }

// quicksort sorts b in place with a last-element pivot. It keeps an explicit
// stack and always continues with the smaller side, so the stack holds
// O(log n) spans.
func quicksort(ctx context.Context, b *RecordBuffer, c *counters) error {
	if b.Len() < 2 {
		return nil
	}
	stack := make([]span, 0, 64)
	stack = append(stack, span{0, b.Len() - 1})
	work := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		work += s.hi - s.lo + 1
		if work >= cancelCheckInterval {
			work = 0
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		pi := lomuto(b, s.lo, s.hi, c)
		left, right := span{s.lo, pi - 1}, span{pi + 1, s.hi}
		if left.hi-left.lo < right.hi-right.lo {
			left, right = right, left
		}
		// larger first, smaller on top
		if left.lo < left.hi {
			stack = append(stack, left)
		}
		if right.lo < right.hi {
			stack = append(stack, right)
		}
	}
	return nil
}

// lomuto partitions [lo, hi] around the record at hi and returns the pivot's
// final index.
func lomuto(b *RecordBuffer, lo, hi int, c *counters) int {
	iw := b.layout.IndexWidth
	pivot := b.Record(hi)
	i := lo
	for j := lo; j < hi; j++ {
		rj := b.Record(j)
		c.comparisons++
		if compareFieldValue(rj, pivot, iw) <= 0 {
			if i != j {
				swapRecord(b.Record(i), rj)
				c.swaps++
			}
			i++
		}
	}
	if i != hi {
		swapRecord(b.Record(i), pivot)
		c.swaps++
	}
	return i
}
