package bsgs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// newRecordBuffer allocates a zero-initialised buffer of lay.Count records.
//
// Dengan UseMmap, region dipetakan MAP_SHARED: anonim bila SpillDir kosong,
// atau di-backing oleh file sementara di SpillDir. File sementara dihapus saat
// Close. Tanpa UseMmap, buffer adalah slice heap biasa.
func newRecordBuffer(lay Layout, opts Options, name string) (b *RecordBuffer, err error) {
	size := lay.Bytes()
	b = &RecordBuffer{
		layout:  lay,
		count:   lay.Count,
		owner:   true,
		scratch: newScratchPool(lay.ItemWidth),
	}

	if !opts.UseMmap {
		defer func() {
			// makeslice panics on sizes the runtime cannot represent
			if r := recover(); r != nil {
				b, err = nil, &AllocationError{Bytes: size, cause: fmt.Errorf("%v", r)}
			}
		}()
		b.data = make([]byte, size)
		return b, nil
	}

	if opts.SpillDir == "" {
		m, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_SHARED)
		if err != nil {
			return nil, &AllocationError{Bytes: size, cause: fmt.Errorf("mmap anonymous %s: %w", name, err)}
		}
		b.mmap, b.data = m, m
		return b, nil
	}

	if err := os.MkdirAll(opts.SpillDir, 0o755); err != nil {
		return nil, &AllocationError{Bytes: size, cause: fmt.Errorf("create spill dir: %w", err)}
	}
	f, err := os.CreateTemp(opts.SpillDir, "bsgs-"+name+"-*.rec")
	if err != nil {
		return nil, &AllocationError{Bytes: size, cause: fmt.Errorf("create spill file %s: %w", name, err)}
	}
	cleanup := func() {
		f.Close()
		os.Remove(f.Name())
	}
	if err := f.Truncate(int64(size)); err != nil {
		cleanup()
		return nil, &AllocationError{Bytes: size, cause: fmt.Errorf("truncate spill file %s: %w", name, err)}
	}
	m, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		cleanup()
		return nil, &AllocationError{Bytes: size, cause: fmt.Errorf("mmap spill file %s: %w", name, err)}
	}
	b.mmap, b.data = m, m
	b.file, b.filePath = f, f.Name()
	return b, nil
}
