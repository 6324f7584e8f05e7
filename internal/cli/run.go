package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	bsgs "github.com/luhtfiimanal/go-bsgs"
)

// Result is the JSON form of a successful run.
type Result struct {
	K           string `json:"k"`
	Workers     int    `json:"workers"`
	Elapsed     string `json:"elapsed"`
	Comparisons uint64 `json:"comparisons"`
	Swaps       uint64 `json:"swaps"`
	Scans       uint64 `json:"scans"`
	Candidates  uint64 `json:"candidates"`
}

// Run recovers k for the curve and points in cfg and writes it to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	curve := &bsgs.Curve{P: cfg.P, A: cfg.A, B: cfg.B, N: cfg.Order}
	x := curve.NewPoint(cfg.Gx, cfg.Gy)
	y := curve.NewPoint(cfg.Qx, cfg.Qy)
	if !curve.OnCurve(x) {
		return fmt.Errorf("base point (%s, %s) is not on the curve", cfg.Gx, cfg.Gy)
	}
	if !curve.OnCurve(y) {
		return fmt.Errorf("target point (%s, %s) is not on the curve", cfg.Qx, cfg.Qy)
	}

	var stats bsgs.Stats
	opts := bsgs.DefaultOptions()
	opts.Workers = cfg.Workers
	opts.UseMmap = !cfg.NoMmap
	opts.SpillDir = cfg.SpillDir
	opts.SearchBound = cfg.Bound
	opts.FlatSearch = cfg.Flat
	opts.Progress = cfg.Progress
	opts.Logger = bsgs.NewTextLogger(os.Stderr, cfg.LogLevel)
	opts.Stats = &stats

	start := time.Now()
	k, err := bsgs.Recover(ctx, curve, x, y, opts)
	if err != nil {
		return err
	}
	return writeResult(out, cfg, k, time.Since(start), stats.Snapshot())
}

func writeResult(out io.Writer, cfg *Config, k *big.Int, elapsed time.Duration, snap bsgs.StatsSnapshot) error {
	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(Result{
			K:           k.String(),
			Workers:     cfg.Workers,
			Elapsed:     elapsed.String(),
			Comparisons: snap.Comparisons,
			Swaps:       snap.Swaps,
			Scans:       snap.Scans,
			Candidates:  snap.Candidates,
		})
	}
	_, err := fmt.Fprintf(out, "k = %s\nworkers: %d, elapsed: %v\ncomparisons: %s, swaps: %s, scans: %s, candidates: %s\n",
		k, cfg.Workers, elapsed.Round(time.Millisecond),
		humanize.Comma(int64(snap.Comparisons)), humanize.Comma(int64(snap.Swaps)),
		humanize.Comma(int64(snap.Scans)), humanize.Comma(int64(snap.Candidates)))
	return err
}
