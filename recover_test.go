package bsgs

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(workers int) Options {
	opts := DefaultOptions()
	opts.Workers = workers
	return opts
}

func TestRecoverToyGroup(t *testing.T) {
	g := NewCyclicGroup(1000)
	x := g.Element(1)
	y := g.ScalarMult(x, big.NewInt(137))

	k, err := Recover(context.Background(), g, x, y, testOptions(4))
	require.NoError(t, err)
	assert.Equal(t, int64(137), k.Int64())
}

func TestRecoverCyclicAllScalars(t *testing.T) {
	g := NewCyclicGroup(1000)
	x := g.Element(7)
	for _, w := range []int{2, 3, 4, 8} {
		for want := int64(0); want < 1000; want += 37 {
			y := g.ScalarMult(x, big.NewInt(want))
			k, err := Recover(context.Background(), g, x, y, testOptions(w))
			require.NoError(t, err, "w=%d k=%d", w, want)
			assert.Equal(t, want, k.Int64(), "w=%d", w)
		}
	}
}

func TestRecoverCurve(t *testing.T) {
	c, g := testCurve()
	scalars := []int64{0, 1, 2, 88, 89, 1234, 3999, 4444, 5000, 7888}
	for _, w := range []int{2, 3, 4, 8} {
		for _, want := range scalars {
			y := c.ScalarMult(g, big.NewInt(want))
			k, err := Recover(context.Background(), c, g, y, testOptions(w))
			require.NoError(t, err, "w=%d k=%d", w, want)
			assert.True(t, c.Equal(c.ScalarMult(g, k), y))
			assert.Equal(t, want, k.Int64(), "w=%d", w)
		}
	}
}

func TestRecoverBackingStoresAndSchedules(t *testing.T) {
	c, g := testCurve()
	y := c.ScalarMult(g, big.NewInt(2024))

	for name, base := range backingStores(t) {
		for _, flat := range []bool{false, true} {
			opts := testOptions(3)
			opts.UseMmap = base.UseMmap
			opts.SpillDir = base.SpillDir
			opts.FlatSearch = flat

			k, err := Recover(context.Background(), c, g, y, opts)
			require.NoError(t, err, "%s flat=%v", name, flat)
			assert.Equal(t, int64(2024), k.Int64())
		}
	}
}

func TestRecoverUndersizedBound(t *testing.T) {
	g := NewCyclicGroup(1000)
	x := g.Element(1)
	y := g.ScalarMult(x, big.NewInt(137))

	opts := testOptions(4)
	opts.SearchBound = 5
	k, err := Recover(context.Background(), g, x, y, opts)
	assert.Nil(t, k)
	require.ErrorIs(t, err, ErrNoCollision)
	var nc *NoCollisionError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 5, nc.Bound)

	c, pt := testCurve()
	opts.SearchBound = 5
	k, err = Recover(context.Background(), c, pt, c.ScalarMult(pt, big.NewInt(5000)), opts)
	assert.Nil(t, k)
	assert.ErrorIs(t, err, ErrNoCollision)
}

func TestRecoverSingleWorker(t *testing.T) {
	dir := t.TempDir()
	c, g := testCurve()
	opts := testOptions(1)
	opts.SpillDir = dir

	_, err := Recover(context.Background(), c, g, g, opts)
	require.ErrorIs(t, err, ErrConfiguration)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Workers)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no buffer may be allocated")
}

// compositeField reports a non-prime characteristic.
type compositeField struct{ *CyclicGroup }

func (compositeField) Characteristic() *big.Int { return big.NewInt(1000) }

func TestRecoverInvalidField(t *testing.T) {
	g := compositeField{NewCyclicGroup(1000)}
	_, err := Recover(context.Background(), g, big.NewInt(1), big.NewInt(137), testOptions(2))
	require.ErrorIs(t, err, ErrInvalidField)
	var fe *InvalidFieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, int64(1000), fe.Characteristic.Int64())
}

func TestRecoverNegativeBound(t *testing.T) {
	g := NewCyclicGroup(1000)
	opts := testOptions(2)
	opts.SearchBound = -1
	_, err := Recover(context.Background(), g, g.Element(1), g.Element(2), opts)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestRecoverCancelled(t *testing.T) {
	c, g := testCurve()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	k, err := Recover(ctx, c, g, c.ScalarMult(g, big.NewInt(77)), testOptions(2))
	assert.Nil(t, k)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecoverStatsAndProgress(t *testing.T) {
	c, g := testCurve()
	var logs bytes.Buffer
	var stats Stats

	opts := testOptions(4)
	opts.Progress = true
	opts.Logger = NewTextLogger(&logs, slog.LevelInfo)
	opts.Stats = &stats

	k, err := Recover(context.Background(), c, g, c.ScalarMult(g, big.NewInt(4321)), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(4321), k.Int64())

	snap := stats.Snapshot()
	assert.Equal(t, uint64(16), snap.Scans)
	assert.NotZero(t, snap.Candidates)
	assert.NotZero(t, snap.Comparisons)
	assert.Less(t, snap.Rejected, snap.Candidates)

	out := logs.String()
	assert.Contains(t, out, "search layout")
	assert.Contains(t, out, "phase=build")
	assert.Contains(t, out, "phase=\"sort L\"")
	assert.Contains(t, out, "phase=search")

	stats.Reset()
	assert.Equal(t, StatsSnapshot{}, stats.Snapshot())
}

func TestRecoverProgressDoesNotChangeResult(t *testing.T) {
	g := NewCyclicGroup(1000)
	x := g.Element(3)
	y := g.ScalarMult(x, big.NewInt(611))

	quiet, err := Recover(context.Background(), g, x, y, testOptions(4))
	require.NoError(t, err)

	opts := testOptions(4)
	opts.Progress = true
	opts.Logger = NoopLogger()
	loud, err := Recover(context.Background(), g, x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, quiet.Cmp(loud))
}
