package catalog

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstock/catalog-common/optional"
)

// randomCards builds a deterministic mix of pure, padded, prefixed, suffixed,
// and sided collector numbers. IDs are unique so permutations are detectable.
func randomCards(n int, seed uint64) []Card {
	rng := rand.New(rand.NewPCG(seed, seed))

	prefixes := []string{"", "", "", "ap", "gn", "ml"}

	cards := make([]Card, 0, n)

	for range n {
		number := strconv.Itoa(rng.IntN(500))
		if rng.IntN(4) == 0 {
			number = "0" + number
		}

		number = prefixes[rng.IntN(len(prefixes))] + number

		if rng.IntN(5) == 0 {
			number += string(rune('a' + rng.IntN(3)))
		}

		side := optional.None[string]()
		if rng.IntN(6) == 0 {
			side = optional.Some(string(rune('a' + rng.IntN(2))))
		}

		cards = append(cards, Card{
			ID:      uuid.New(),
			Name:    "Card " + number,
			SetCode: "TST",
			Number:  number,
			Side:    side,
		})
	}

	return cards
}

func TestSort_ReferenceOrdering(t *testing.T) {
	t.Parallel()

	numbers := []string{"20", "10a", "1", "ap0a", "00", "2", "0", ""}

	cards := make([]Card, 0, len(numbers))
	for _, number := range numbers {
		cards = append(cards, Card{ID: uuid.New(), Number: number})
	}

	Sort(cards)

	got := make([]string, 0, len(cards))
	for _, card := range cards {
		got = append(got, card.Number)
	}

	assert.Equal(t, []string{"0", "00", "ap0a", "1", "2", "10a", "20", ""}, got)
}

func TestSort_Stable(t *testing.T) {
	t.Parallel()

	first := Card{ID: uuid.New(), Name: "first printing", Number: "10"}
	second := Card{ID: uuid.New(), Name: "second printing", Number: "10"}

	cards := []Card{
		{ID: uuid.New(), Number: "20"},
		first,
		{ID: uuid.New(), Number: "1"},
		second,
	}

	Sort(cards)

	assert.Equal(t, first.ID, cards[1].ID)
	assert.Equal(t, second.ID, cards[2].ID)
}

func TestSort_PermutationInvariance(t *testing.T) {
	t.Parallel()

	// Sideless corpus: without sides, two distinct numbers never compare
	// Equal, so the output key sequence is unique for every input order.
	sideless := func() []Card {
		cards := randomCards(200, 11)
		for i := range cards {
			cards[i].Side = optional.None[string]()
		}

		return cards
	}

	want := sideless()
	Sort(want)

	rng := rand.New(rand.NewPCG(3, 3))

	for range 300 {
		got := sideless()
		rng.Shuffle(len(got), func(i, j int) {
			got[i], got[j] = got[j], got[i]
		})

		Sort(got)

		require.Equal(t, keysOf(want), keysOf(got))
	}
}

func TestSortParallel(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slogt.New(t))
	t.Cleanup(func() { slog.SetDefault(prev) })

	pool := pond.NewPool(4)
	defer pool.StopAndWait()

	serial := randomCards(10000, 42)
	parallel := append([]Card(nil), serial...)

	Sort(serial)
	require.NoError(t, SortParallel(pool, parallel))

	assert.Equal(t, serial, parallel)
}

func TestSortParallel_SmallInput(t *testing.T) {
	t.Parallel()

	pool := pond.NewPool(2)
	defer pool.StopAndWait()

	serial := randomCards(100, 5)
	parallel := append([]Card(nil), serial...)

	Sort(serial)
	require.NoError(t, SortParallel(pool, parallel))

	assert.Equal(t, serial, parallel)
}

func keysOf(cards []Card) []string {
	keys := make([]string, 0, len(cards))
	for _, card := range cards {
		keys = append(keys, card.Key().String())
	}

	return keys
}
