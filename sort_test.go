package bsgs

import (
	"context"
	"math/big"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillBuffer(t *testing.T, b *RecordBuffer, values []int64) {
	t.Helper()
	require.Equal(t, len(values), b.Len())
	for i, v := range values {
		require.NoError(t, b.Put(i, uint64(i), big.NewInt(v)))
	}
}

func fieldValues(b *RecordBuffer, lo, hi int) []int64 {
	out := make([]int64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, b.FieldValue(i).Int64())
	}
	return out
}

func assertPartitionsSorted(t *testing.T, b *RecordBuffer, parts []partition) {
	t.Helper()
	for _, p := range parts {
		vals := fieldValues(b, p.lo, p.hi)
		assert.True(t, sort.SliceIsSorted(vals, func(i, j int) bool { return vals[i] < vals[j] }),
			"partition [%d,%d) not sorted: %v", p.lo, p.hi, vals)
	}
}

func TestSortPartitionsSortsEachPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, w := range []int{2, 3, 4, 8} {
		b := newTestBuffer(t, 200, Options{UseMmap: true})
		values := make([]int64, 200)
		for i := range values {
			values[i] = rng.Int63n(7919)
		}
		fillBuffer(t, b, values)

		parts := partitions(200, w)
		require.NoError(t, sortPartitions(context.Background(), b, parts, nil))
		assertPartitionsSorted(t, b, parts)

		// every partition keeps its own records, each still tagged with its origin
		for _, p := range parts {
			for i := p.lo; i < p.hi; i++ {
				seq := int(b.SequenceID(i))
				assert.GreaterOrEqual(t, seq, p.lo)
				assert.Less(t, seq, p.hi)
				assert.Equal(t, values[seq], b.FieldValue(i).Int64())
			}
		}
	}
}

func TestSortPartitionsIsNotGlobal(t *testing.T) {
	b := newTestBuffer(t, 8, Options{})
	fillBuffer(t, b, []int64{80, 70, 60, 50, 40, 30, 20, 10})

	parts := partitions(8, 2)
	require.NoError(t, sortPartitions(context.Background(), b, parts, nil))

	assert.Equal(t, []int64{50, 60, 70, 80, 10, 20, 30, 40}, fieldValues(b, 0, 8))
}

func TestQuicksortDuplicatesAndEdges(t *testing.T) {
	cases := map[string][]int64{
		"single":    {5},
		"pair":      {9, 3},
		"equal":     {4, 4, 4, 4, 4, 4},
		"sorted":    {1, 2, 3, 4, 5, 6, 7},
		"reversed":  {7, 6, 5, 4, 3, 2, 1},
		"sawtooth":  {3, 1, 2, 3, 1, 2, 3, 1, 2, 0},
		"wide-zero": {0, 7918, 0, 7918, 256, 255},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			b := newTestBuffer(t, len(values), Options{})
			fillBuffer(t, b, values)

			var c counters
			require.NoError(t, quicksort(context.Background(), b, &c))

			want := append([]int64(nil), values...)
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			assert.Equal(t, want, fieldValues(b, 0, b.Len()))
		})
	}
}

func TestSortPartitionsCountsWork(t *testing.T) {
	b := newTestBuffer(t, 6, Options{})
	fillBuffer(t, b, []int64{3, 2, 1, 6, 5, 4})

	var stats Stats
	require.NoError(t, sortPartitions(context.Background(), b, partitions(6, 2), &stats))
	snap := stats.Snapshot()
	assert.NotZero(t, snap.Comparisons)
	assert.NotZero(t, snap.Swaps)
	assert.Zero(t, snap.Scans)
}

func TestSortPartitionsCancelled(t *testing.T) {
	b := newTestBuffer(t, 4096, Options{})
	values := make([]int64, 4096)
	for i := range values {
		values[i] = int64(len(values) - i)
	}
	fillBuffer(t, b, values)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sortPartitions(ctx, b, partitions(4096, 2), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
