package bsgs

import "runtime"

// Options menyediakan opsi konfigurasi untuk Recover.
//
//   - Workers:     jumlah worker per fase (minimal 2)
//   - UseMmap:     simpan buffer record di region mmap bersama
//   - SpillDir:    direktori untuk file backing mmap ("" = anonymous mapping)
//   - SearchBound: override n (0 = ⌊√order⌋+1)
//   - FlatSearch:  jalankan W² scan dalam satu batch
//   - Progress:    log tiap fase pada level Info (tidak mempengaruhi hasil)
//
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	Workers     int     // Jumlah worker; <2 ditolak dengan ConfigurationError
	UseMmap     bool    // Gunakan mmap MAP_SHARED; false = slice heap biasa
	SpillDir    string  // Bila diisi (dan UseMmap), buffer di-backing oleh file sementara
	SearchBound int     // Ukuran baby/giant step; 0 = otomatis dari order(X)
	FlatSearch  bool    // true = W² scan sekaligus dengan limit W goroutine
	Progress    bool    // Log fase pada level Info
	Logger      *Logger // nil = NoopLogger()
	Stats       *Stats  // nil = statistik tidak dikumpulkan
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan Recover.
func DefaultOptions() Options {
	w := runtime.GOMAXPROCS(0)
	if w < 2 {
		w = 2
	}
	return Options{
		Workers: w,
		UseMmap: true,
	}
}
