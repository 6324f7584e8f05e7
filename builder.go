package bsgs

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many records a worker processes between context
// checks.
const cancelCheckInterval = 1 << 10

// build fills the baby-step buffer L with {i, coordinate(i·X)} and the
// giant-step buffer R with {i, coordinate(Y − i·n·X)} for i in [0, n).
//
// Each partition gets one worker. A worker pays one scalar multiplication per
// buffer for its first element and one group addition per further element.
func build[P any](ctx context.Context, g Group[P], L, R *RecordBuffer, x, y P, parts []partition) error {
	if L.Len() != R.Len() {
		return fmt.Errorf("build: buffer length mismatch %d != %d", L.Len(), R.Len())
	}
	n := big.NewInt(int64(L.Len()))
	order := g.Order(x)
	// -n·X as a non-negative multiple
	giantStep := g.ScalarMult(x, new(big.Int).Mod(new(big.Int).Neg(n), order))

	L.advise(accessSequential)
	R.advise(accessSequential)

	eg, ctx := errgroup.WithContext(ctx)
	for _, part := range parts {
		if part.len() == 0 {
			continue
		}
		lv, rv := L.view(part.lo, part.hi), R.view(part.lo, part.hi)
		lo := part.lo
		eg.Go(func() error {
			return buildPartition(ctx, g, lv, rv, x, y, giantStep, lo)
		})
	}
	return eg.Wait()
}

func buildPartition[P any](ctx context.Context, g Group[P], lv, rv *RecordBuffer, x, y, giantStep P, lo int) error {
	first := big.NewInt(int64(lo))
	baby := g.ScalarMult(x, first)
	giant := g.Add(y, g.ScalarMult(giantStep, first))

	s := lv.getScratch()
	defer lv.returnScratch(s)

	for i := 0; i < lv.Len(); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		seq := uint64(lo + i)
		if err := lv.put(lv.Record(i), seq, g.Coordinate(baby), *s); err != nil {
			return fmt.Errorf("baby step %d: %w", seq, err)
		}
		if err := rv.put(rv.Record(i), seq, g.Coordinate(giant), *s); err != nil {
			return fmt.Errorf("giant step %d: %w", seq, err)
		}
		baby = g.Add(baby, x)
		giant = g.Add(giant, giantStep)
	}
	return nil
}
