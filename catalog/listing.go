package catalog

import (
	"log/slog"
	"slices"

	"facette.io/natsort"
)

// Listing is a deterministic view of a card collection: cards grouped by set
// code, set codes in natural order ("SET2" before "SET10"), and the cards of
// each set in collector-number order. Two listings built from permutations of
// the same cards render identically.
type Listing struct {
	codes []string
	sets  map[string][]Card
}

// NewListing groups and orders the given cards. The input slice is not
// modified; the listing holds its own copies.
func NewListing(cards []Card) *Listing {
	sets := make(map[string][]Card)

	for _, card := range cards {
		sets[card.SetCode] = append(sets[card.SetCode], card)
	}

	codes := make([]string, 0, len(sets))
	for code := range sets {
		codes = append(codes, code)
	}

	natsort.Sort(codes)

	for _, code := range codes {
		Sort(sets[code])
	}

	slog.Debug("Built catalog listing", "sets", len(codes), "cards", len(cards))

	return &Listing{codes: codes, sets: sets}
}

// SetCodes returns the set codes in natural order.
func (l *Listing) SetCodes() []string {
	return slices.Clone(l.codes)
}

// Cards returns the cards of one set in collector-number order, or nil if the
// set is not present.
func (l *Listing) Cards(setCode string) []Card {
	return slices.Clone(l.sets[setCode])
}

// Len returns the total number of cards in the listing.
func (l *Listing) Len() int {
	total := 0
	for _, cards := range l.sets {
		total += len(cards)
	}

	return total
}
