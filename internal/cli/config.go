package cli

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"runtime"
	"strings"
)

// Config is the parsed command line of the bsgs tool.
type Config struct {
	P, A, B  *big.Int // curve y² = x³ + A·x + B over F_P
	Gx, Gy   *big.Int // base point X
	Order    *big.Int // order of X
	Qx, Qy   *big.Int // target Y = k·X
	Workers  int
	Bound    int    // 0 => ⌊√order⌋+1
	SpillDir string // "" => anonymous mapping
	NoMmap   bool
	Flat     bool
	Progress bool
	JSON     bool
	LogLevel slog.Level
}

func ParseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("bsgs", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		pStr     = fs.String("p", "", "field prime p (decimal or 0x-hex, required)")
		aStr     = fs.String("A", "0", "curve parameter A")
		bStr     = fs.String("B", "0", "curve parameter B")
		gxStr    = fs.String("gx", "", "base point x (required)")
		gyStr    = fs.String("gy", "", "base point y (required)")
		orderStr = fs.String("order", "", "order of the base point (required)")
		qxStr    = fs.String("qx", "", "target point x (required)")
		qyStr    = fs.String("qy", "", "target point y (required)")
		workers  = fs.Int("workers", 0, "number of workers, at least 2 (default GOMAXPROCS)")
		bound    = fs.Int("bound", 0, "baby/giant step count n (default ⌊√order⌋+1)")
		spillDir = fs.String("spill-dir", "", "back record buffers with files in this directory")
		noMmap   = fs.Bool("no-mmap", false, "keep record buffers on the Go heap")
		flat     = fs.Bool("flat", false, "run all partition-pair scans in one batch")
		progress = fs.Bool("progress", false, "log each phase")
		jsonOut  = fs.Bool("json", false, "emit JSON instead of text")
		logLevel = fs.String("log-level", "warn", "log level: debug|info|warn|error")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Workers:  *workers,
		Bound:    *bound,
		SpillDir: *spillDir,
		NoMmap:   *noMmap,
		Flat:     *flat,
		Progress: *progress,
		JSON:     *jsonOut,
	}

	required := []struct {
		name string
		raw  string
		dst  **big.Int
	}{
		{"p", *pStr, &cfg.P},
		{"A", *aStr, &cfg.A},
		{"B", *bStr, &cfg.B},
		{"gx", *gxStr, &cfg.Gx},
		{"gy", *gyStr, &cfg.Gy},
		{"order", *orderStr, &cfg.Order},
		{"qx", *qxStr, &cfg.Qx},
		{"qy", *qyStr, &cfg.Qy},
	}
	for _, f := range required {
		if strings.TrimSpace(f.raw) == "" {
			return nil, fmt.Errorf("missing required --%s", f.name)
		}
		z, err := parseBig(f.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer for --%s: %w", f.name, err)
		}
		*f.dst = z
	}
	if cfg.P.Cmp(big.NewInt(3)) <= 0 {
		return nil, errors.New("--p must be > 3")
	}
	if cfg.Order.Sign() <= 0 {
		return nil, errors.New("--order must be positive")
	}
	if cfg.Bound < 0 {
		return nil, errors.New("--bound must not be negative")
	}

	if cfg.Workers <= 0 {
		cfg.Workers = max(runtime.GOMAXPROCS(0), 2)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return cfg, nil
}

// parseBig accepts decimal or 0x-prefixed hex.
func parseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		b, err := hex.DecodeString(digits)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(b), nil
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("cannot parse integer: %q", s)
	}
	return z, nil
}
