package stats

import (
	"golang.org/x/sync/errgroup"

	"github.com/pokerhud/pokernow-stats/internal/parser"
)

// Process scans every hand and reduces the records into one Aggregate.
//
// Hands share no state, so with workers > 1 they are sharded across a
// goroutine pool where each worker folds its shard into a private aggregate;
// the partials are merged at the end. The merge is purely additive, so the
// result is identical for any worker count.
func Process(hands [][]string, workers int) *Aggregate {
	if workers <= 1 || len(hands) < 2 {
		agg := NewAggregate()
		for _, hand := range hands {
			agg.AddHand(parser.ScanHand(hand))
		}
		return agg
	}
	if workers > len(hands) {
		workers = len(hands)
	}

	partials := make([]*Aggregate, workers)
	shard := (len(hands) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * shard
		end := min(start+shard, len(hands))
		if start >= end {
			break
		}
		g.Go(func() error {
			agg := NewAggregate()
			for _, hand := range hands[start:end] {
				agg.AddHand(parser.ScanHand(hand))
			}
			partials[w] = agg
			return nil
		})
	}
	// Workers cannot fail; Wait only fences the goroutines.
	_ = g.Wait()

	out := NewAggregate()
	for _, partial := range partials {
		if partial != nil {
			out.Merge(partial)
		}
	}
	return out
}
