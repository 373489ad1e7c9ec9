package search

import (
	"testing"

	"hantrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableOrderKeyDeterministic(t *testing.T) {
	// Determinism is the contract, not any particular permutation.
	for _, id := range []string{"poi-1", "poi-2", "gyeongbokgung", ""} {
		assert.Equal(t, StableOrderKey(id), StableOrderKey(id), id)
	}
	assert.NotEqual(t, StableOrderKey("poi-1"), StableOrderKey("poi-2"))
}

func TestStableOrderIsStableAcrossCalls(t *testing.T) {
	pois := []models.POI{{ID: "c"}, {ID: "a"}, {ID: "b"}, {ID: "d"}}

	first := StableOrder(pois)
	second := StableOrder(pois)
	require.Equal(t, first, second)

	// Input order does not matter either.
	shuffled := []models.POI{{ID: "d"}, {ID: "b"}, {ID: "a"}, {ID: "c"}}
	third := StableOrder(shuffled)
	assert.Equal(t, first, third)

	// The input slice is left untouched.
	assert.Equal(t, "c", pois[0].ID)
}
