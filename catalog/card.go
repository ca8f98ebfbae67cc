// Package catalog provides the catalog-side consumers of the collector-number
// order: a minimal card value type, deterministic serial and parallel sorts,
// duplicate-key detection, and per-set listings.
package catalog

import (
	"github.com/google/uuid"

	"github.com/cardstock/catalog-common/collnum"
	"github.com/cardstock/catalog-common/optional"
)

// Card is a catalog entry reduced to the fields ordering cares about plus
// enough identity to be useful in listings. The full card data model (cost,
// legality, prices) lives with the loader, not here.
type Card struct {
	// ID is the catalog-wide identity of this printing.
	ID uuid.UUID

	// Name is the display name.
	Name string

	// SetCode names the set this printing belongs to.
	SetCode string

	// Number is the printed collector number within the set.
	Number string

	// Side distinguishes the faces of a multi-faced card.
	Side optional.Value[string]
}

// Key returns the collector-number key this card sorts by.
func (c Card) Key() collnum.Key {
	return collnum.Key{Number: c.Number, Side: c.Side}
}
