package bsgs

import "sync/atomic"

// Stats mengumpulkan penghitung kerja dari satu atau lebih panggilan Recover.
// Aman dipakai bersama antar goroutine; worker menambahkan hitungannya sekali
// saat selesai.
type Stats struct {
	comparisons uint64
	swaps       uint64
	scans       uint64
	candidates  uint64
	rejected    uint64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Comparisons uint64 // compareFieldValue calls (sort + search)
	Swaps       uint64 // swapRecord calls
	Scans       uint64 // partition-pair scans run
	Candidates  uint64 // collisions emitted by the searcher
	Rejected    uint64 // candidates that failed verification
}

// counters is a worker-local tally flushed into Stats once.
type counters struct {
	comparisons uint64
	swaps       uint64
}

func (s *Stats) add(c counters) {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.comparisons, c.comparisons)
	atomic.AddUint64(&s.swaps, c.swaps)
}

func (s *Stats) addScan(c counters, found bool) {
	if s == nil {
		return
	}
	s.add(c)
	atomic.AddUint64(&s.scans, 1)
	if found {
		atomic.AddUint64(&s.candidates, 1)
	}
}

func (s *Stats) addRejected(n int) {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.rejected, uint64(n))
}

// Snapshot mengambil snapshot statistik tanpa lock.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}
	return StatsSnapshot{
		Comparisons: atomic.LoadUint64(&s.comparisons),
		Swaps:       atomic.LoadUint64(&s.swaps),
		Scans:       atomic.LoadUint64(&s.scans),
		Candidates:  atomic.LoadUint64(&s.candidates),
		Rejected:    atomic.LoadUint64(&s.rejected),
	}
}

// Reset mengatur ulang semua penghitung.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.comparisons, 0)
	atomic.StoreUint64(&s.swaps, 0)
	atomic.StoreUint64(&s.scans, 0)
	atomic.StoreUint64(&s.candidates, 0)
	atomic.StoreUint64(&s.rejected, 0)
}
