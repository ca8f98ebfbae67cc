package catalog

import (
	"log/slog"
	"slices"

	"github.com/alitto/pond/v2"
	"go.uber.org/atomic"

	"github.com/cardstock/catalog-common/collnum"
)

// minParallel is the slice length below which SortParallel degrades to the
// serial sort; splitting smaller inputs costs more than it saves.
const minParallel = 4096

// parallelChunk is the run length each worker sorts before the merge rounds.
const parallelChunk = 2048

// Sort sorts cards in place by collector-number key. The sort is stable, so
// cards with fully identical keys keep their relative input order, and the
// output permutation is the same for every input order.
func Sort(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		return int(collnum.Compare(a.Key(), b.Key()))
	})
}

// SortParallel sorts cards in place using a divide-and-conquer merge sort on
// the given worker pool. The result is byte-identical to Sort: stable, and
// the same permutation for every input order. Small inputs are sorted
// serially.
//
// The only error source is the pool itself (a stopped pool rejects tasks);
// the comparator cannot fail.
func SortParallel(pool pond.Pool, cards []Card) error {
	if len(cards) < minParallel {
		Sort(cards)

		return nil
	}

	var comparisons atomic.Int64

	cmp := func(a, b Card) int {
		comparisons.Inc()

		return int(collnum.Compare(a.Key(), b.Key()))
	}

	// Run boundaries: bounds[i] .. bounds[i+1] is one sorted run.
	bounds := make([]int, 0, len(cards)/parallelChunk+2)
	for lo := 0; lo < len(cards); lo += parallelChunk {
		bounds = append(bounds, lo)
	}

	bounds = append(bounds, len(cards))

	group := pool.NewGroup()

	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]

		group.Submit(func() {
			slices.SortStableFunc(cards[lo:hi], cmp)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// Merge adjacent runs pairwise until one run remains. Runs are contiguous
	// ranges of the original slice and merges prefer the left run on ties,
	// which preserves stability end to end.
	buf := make([]Card, len(cards))

	for len(bounds) > 2 {
		next := make([]int, 0, len(bounds)/2+2)
		next = append(next, 0)

		round := pool.NewGroup()

		i := 0
		for ; i+2 < len(bounds); i += 2 {
			lo, mid, hi := bounds[i], bounds[i+1], bounds[i+2]

			round.Submit(func() {
				mergeRuns(cards, buf, lo, mid, hi, cmp)
			})

			next = append(next, hi)
		}

		// An odd run count leaves the last run for the next round.
		if i+1 < len(bounds) {
			next = append(next, bounds[len(bounds)-1])
		}

		if err := round.Wait(); err != nil {
			return err
		}

		bounds = next
	}

	slog.Debug("Parallel catalog sort finished",
		"cards", len(cards), "comparisons", comparisons.Load())

	return nil
}

// mergeRuns merges the sorted runs cards[lo:mid] and cards[mid:hi] back into
// cards, using buf[lo:hi] as scratch space. Ties go to the left run.
func mergeRuns(cards, buf []Card, lo, mid, hi int, cmp func(a, b Card) int) {
	copy(buf[lo:hi], cards[lo:hi])

	i, j, k := lo, mid, lo

	for i < mid && j < hi {
		if cmp(buf[i], buf[j]) <= 0 {
			cards[k] = buf[i]
			i++
		} else {
			cards[k] = buf[j]
			j++
		}

		k++
	}

	for i < mid {
		cards[k] = buf[i]
		i++
		k++
	}

	for j < hi {
		cards[k] = buf[j]
		j++
		k++
	}
}
