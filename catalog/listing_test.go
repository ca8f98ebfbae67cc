package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{ID: uuid.New(), SetCode: "SET10", Number: "2"},
		{ID: uuid.New(), SetCode: "SET2", Number: "10"},
		{ID: uuid.New(), SetCode: "SET1", Number: "1"},
		{ID: uuid.New(), SetCode: "SET2", Number: "2"},
		{ID: uuid.New(), SetCode: "SET2", Number: "★"},
	}

	listing := NewListing(cards)

	// Natural order, not lexical: SET2 before SET10.
	assert.Equal(t, []string{"SET1", "SET2", "SET10"}, listing.SetCodes())
	assert.Equal(t, len(cards), listing.Len())

	set2 := listing.Cards("SET2")
	require.Len(t, set2, 3)
	assert.Equal(t, "2", set2[0].Number)
	assert.Equal(t, "10", set2[1].Number)
	assert.Equal(t, "★", set2[2].Number)
}

func TestNewListing_InputUntouched(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{ID: uuid.New(), SetCode: "A", Number: "2"},
		{ID: uuid.New(), SetCode: "A", Number: "1"},
	}

	NewListing(cards)

	assert.Equal(t, "2", cards[0].Number)
	assert.Equal(t, "1", cards[1].Number)
}

func TestListing_CardsReturnsCopy(t *testing.T) {
	t.Parallel()

	listing := NewListing([]Card{
		{ID: uuid.New(), SetCode: "A", Number: "1"},
		{ID: uuid.New(), SetCode: "A", Number: "2"},
	})

	got := listing.Cards("A")
	got[0].Number = "mutated"

	assert.Equal(t, "1", listing.Cards("A")[0].Number)
}

func TestListing_UnknownSet(t *testing.T) {
	t.Parallel()

	listing := NewListing(nil)

	assert.Nil(t, listing.Cards("NOPE"))
	assert.Empty(t, listing.SetCodes())
	assert.Zero(t, listing.Len())
}
