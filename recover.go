package bsgs

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"
)

// Recover finds k with Y = k·X using a parallel baby-step/giant-step search.
//
// n = ⌊√order(X)⌋+1 unless opts.SearchBound overrides it. Two buffers of n
// records are built, sorted per partition, and cross-searched; every returned
// k has been verified against X·k = Y and lies in [0, order(X)).
//
// Errors: ConfigurationError (fewer than two workers), InvalidFieldError
// (non-prime characteristic), AllocationError, NoCollisionError, or the
// context's error if ctx is done before the search completes.
func Recover[P any](ctx context.Context, g Group[P], x, y P, opts Options) (*big.Int, error) {
	log := opts.Logger
	if log == nil {
		log = NoopLogger()
	}
	log = log.WithWorkers(opts.Workers)

	if opts.Workers < 2 {
		return nil, &ConfigurationError{Workers: opts.Workers}
	}
	if opts.SearchBound < 0 {
		return nil, fmt.Errorf("%w: negative search bound %d", ErrConfiguration, opts.SearchBound)
	}
	order := g.Order(x)
	if order.Sign() <= 0 {
		return nil, fmt.Errorf("%w: group order must be positive, got %s", ErrConfiguration, order)
	}
	p := g.Characteristic()
	if !isPrime(p) {
		return nil, &InvalidFieldError{Characteristic: p}
	}

	n := opts.SearchBound
	if n == 0 {
		bound := new(big.Int).Sqrt(order)
		bound.Add(bound, big.NewInt(1))
		if !bound.IsInt64() || bound.Int64() > math.MaxInt {
			return nil, &AllocationError{Bytes: -1, cause: fmt.Errorf("search bound %s exceeds addressable memory", bound)}
		}
		n = int(bound.Int64())
	}

	lay, err := NewLayout(n, p)
	if err != nil {
		return nil, err
	}
	log.LogLayout(ctx, opts.Progress, lay, p.String())

	L, err := newRecordBuffer(lay, opts, "L")
	if err != nil {
		return nil, err
	}
	defer closeBuffer(ctx, log, L)
	R, err := newRecordBuffer(lay, opts, "R")
	if err != nil {
		return nil, err
	}
	defer closeBuffer(ctx, log, R)

	parts := partitions(n, opts.Workers)

	start := time.Now()
	err = build(ctx, g, L, R, x, y, parts)
	log.LogPhase(ctx, opts.Progress, "build", start, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	for _, b := range []struct {
		name string
		buf  *RecordBuffer
	}{{"sort L", L}, {"sort R", R}} {
		start = time.Now()
		err = sortPartitions(ctx, b.buf, parts, opts.Stats)
		log.LogPhase(ctx, opts.Progress, b.name, start, err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.name, err)
		}
	}

	start = time.Now()
	cands, err := search(ctx, L, R, parts, opts.FlatSearch, opts.Stats)
	log.LogPhase(ctx, opts.Progress, "search", start, err)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	k, rejected := verify(g, x, y, cands, n, order)
	opts.Stats.addRejected(rejected)
	if k == nil {
		err = &NoCollisionError{Bound: n, Candidates: rejected}
	}
	log.LogRecover(ctx, len(cands), err)
	return k, err
}

// verify turns candidates into scalar hypotheses. Only the coordinate is
// stored, so a match means l·X = ±(Y − r·n·X): k₁ = l + r·n covers the plus
// sign and k₂ = r·n − l the minus sign. It returns the first verified k
// reduced mod order and the number of candidates rejected before it.
func verify[P any](g Group[P], x, y P, cands []Candidate, n int, order *big.Int) (*big.Int, int) {
	bn := big.NewInt(int64(n))
	for i, c := range cands {
		l := new(big.Int).SetUint64(c.L)
		rn := new(big.Int).SetUint64(c.R)
		rn.Mul(rn, bn)

		k := new(big.Int).Add(l, rn)
		if g.Equal(g.ScalarMult(x, k), y) {
			return k.Mod(k, order), i
		}
		k.Sub(rn, l)
		k.Mod(k, order)
		if g.Equal(g.ScalarMult(x, k), y) {
			return k, i
		}
	}
	return nil, len(cands)
}

func closeBuffer(ctx context.Context, log *Logger, b *RecordBuffer) {
	if err := b.Close(); err != nil {
		log.WarnContext(ctx, "release record buffer", "error", err)
	}
}
