package bsgs

// partition is a contiguous record range [lo, hi) owned by one worker for the
// duration of a phase.
type partition struct {
	lo, hi int
}

func (p partition) len() int { return p.hi - p.lo }

// partitions tiles [0, n) into w contiguous ranges of n/w records; the last
// range absorbs the remainder. Leading ranges are empty when n < w.
func partitions(n, w int) []partition {
	per := n / w
	parts := make([]partition, w)
	for i := range parts {
		parts[i] = partition{lo: i * per, hi: (i + 1) * per}
	}
	parts[w-1].hi = n
	return parts
}
