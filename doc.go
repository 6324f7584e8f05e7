// Package bsgs recovers discrete logarithms k with Y = k·X over prime-field
// groups using a parallel baby-step/giant-step collision search over
// fixed-width binary records.
//
// Baby steps i·X and giant steps Y − i·n·X are written as {sequenceID,
// coordinate} records into two shared buffers. Each buffer is cut into one
// partition per worker and every partition is sorted on its own; instead of
// merging, every (baby, giant) partition pair is merge-scanned for an equal
// coordinate. Matches are verified against X·k = Y before being returned.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	layout.go      – record geometry for one query
//	record.go      – little-endian codecs, compare & swap primitives
//	buffer.go      – record buffer, views & scratch pool
//	alloc.go       – heap / anonymous mmap / spill-file allocation
//	flush_close.go – paging hints & release
//	partition.go   – static partition map
//	builder.go     – baby/giant step generation
//	sort.go        – per-partition quicksort
//	search.go      – cross-partition merge search
//	recover.go     – orchestration & verification
//	group.go       – Group contract consumed by the solver
//	curve.go       – short Weierstrass curves over F_p
//	cyclic.go      – additive cyclic groups (Z/MZ)
//	stats.go       – lightweight work counters
//	logger.go      – slog-based phase logging
//	errors.go      – error kinds
package bsgs
