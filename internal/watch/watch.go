// Package watch polls a snapshot root on an interval and reports changed
// files through a callback. It is a thin driver over the snapshot builder,
// the diff engine and status-filtered traversal; cancellation is by
// context, never by process-global signal state.
package watch

import (
	"context"
	"time"

	"snapdiff/internal/compare"
	"snapdiff/internal/tree"
)

// DefaultInterval is used when a non-positive interval is given.
const DefaultInterval = 2 * time.Second

// Config describes one watched root.
type Config struct {
	// Path is the snapshot root.
	Path string
	// Include is the file whitelist, as for tree.Build.
	Include []string
	// Interval between polls; DefaultInterval when non-positive.
	Interval time.Duration
	// Statuses selects which file statuses OnChange receives.
	Statuses tree.StatusSet
	// OnChange is invoked synchronously for each matching file, with the
	// path of its containing directory.
	OnChange tree.VisitFunc
}

// Run builds an initial snapshot of cfg.Path and then watches it until ctx
// is cancelled, returning ctx.Err(). A snapshot build failure stops the
// loop and is returned; there is no retry.
func Run(ctx context.Context, cfg Config) error {
	snap, err := tree.Build(cfg.Path, cfg.Include)
	if err != nil {
		return err
	}
	return Watch(ctx, snap, cfg.Interval, cfg.Statuses, cfg.OnChange)
}

// Watch polls from an existing baseline snapshot. On every tick it rebuilds
// a snapshot of snap.Path with snap.Include, diffs it against the previous
// one, drives fn over files matching statuses, and adopts the new snapshot
// as the next baseline.
func Watch(ctx context.Context, snap *tree.Snapshot, interval time.Duration, statuses tree.StatusSet, fn tree.VisitFunc) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := snap
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			next, err := tree.Build(prev.Path, prev.Include)
			if err != nil {
				return err
			}
			result := compare.Compare(prev.Root, next.Root)
			tree.ForEach(result, next.Path, statuses, fn)
			prev = next
		}
	}
}
