package catalog

import (
	"github.com/cardstock/catalog-common/hashing"
)

// DuplicateKeys groups cards that share a collector-number key. A sorted
// catalog resolves every pair of distinct keys, so duplicates are the only
// cards whose relative order depends on a stable sort; this surfaces them.
//
// Groups come back in first-seen input order, each group in input order.
// Cards with unique keys are omitted.
func DuplicateKeys(cards []Card) ([][]Card, error) {
	// Digest-keyed grouping with an equality check on collision, so two keys
	// that happen to share a digest never merge.
	buckets := make(map[uint64][]Card)
	order := make([]uint64, 0, len(cards))

	for _, card := range cards {
		digest, err := hashing.XXH3(card.Key())
		if err != nil {
			return nil, err
		}

		if _, seen := buckets[digest]; !seen {
			order = append(order, digest)
		}

		buckets[digest] = append(buckets[digest], card)
	}

	var groups [][]Card

	for _, digest := range order {
		bucket := buckets[digest]

		for len(bucket) > 0 {
			head := bucket[0]
			same := []Card{head}
			rest := make([]Card, 0, len(bucket)-1)

			for _, card := range bucket[1:] {
				if card.Key().Equals(head.Key()) {
					same = append(same, card)
				} else {
					rest = append(rest, card)
				}
			}

			if len(same) > 1 {
				groups = append(groups, same)
			}

			bucket = rest
		}
	}

	return groups, nil
}
