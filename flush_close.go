package bsgs

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// accessPattern is a paging hint for mapped buffers.
type accessPattern int

const (
	accessSequential accessPattern = iota
	accessRandom
)

// advise passes a paging hint to the kernel. Heap buffers, views and failures
// are ignored; the hint never affects results.
func (b *RecordBuffer) advise(p accessPattern) {
	if b.mmap == nil {
		return
	}
	switch p {
	case accessSequential:
		_ = unix.Madvise(b.mmap, unix.MADV_SEQUENTIAL)
	case accessRandom:
		_ = unix.Madvise(b.mmap, unix.MADV_RANDOM)
	}
}

// Close melepaskan semua sumber daya (mmap & file sementara) milik buffer.
// Close pada view tidak melakukan apa-apa. Aman dipanggil lebih dari sekali.
func (b *RecordBuffer) Close() error {
	if b == nil || !b.owner {
		return nil
	}
	var errs []error
	if b.mmap != nil {
		if err := unix.Munmap(b.mmap); err != nil {
			errs = append(errs, fmt.Errorf("unmap buffer: %w", err))
		}
		b.mmap = nil
	}
	if b.file != nil {
		if err := b.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close spill file: %w", err))
		}
		if err := os.Remove(b.filePath); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("remove spill file: %w", err))
		}
		b.file = nil
	}
	b.data = nil
	b.count = 0
	b.owner = false
	return errors.Join(errs...)
}
