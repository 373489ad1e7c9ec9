package search

import (
	"hash/fnv"
	"sort"

	"hantrip/models"
)

// StableOrderKey maps a POI id onto a stable pseudo-shuffle key (FNV-1a).
// This is an arbitrary but deterministic ordering, not a randomness source:
// the same id always lands in the same place, so the companion list never
// re-shuffles between renders.
func StableOrderKey(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}

// StableOrder returns the POIs in stable pseudo-shuffled order, ties broken
// by id.
func StableOrder(pois []models.POI) []models.POI {
	out := make([]models.POI, len(pois))
	copy(out, pois)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := StableOrderKey(out[i].ID), StableOrderKey(out[j].ID)
		if ki != kj {
			return ki < kj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
