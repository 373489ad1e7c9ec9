package poiRepo

import "hantrip/models"

// POIRepository defines read access to the POI collection. POIs are authored
// by external data scripts; the application never writes them.
type POIRepository interface {
	// GetByID returns the POI, or (nil, nil) when no document matches.
	GetByID(id string) (*models.POI, error)
	// GetByIDs returns the POIs for the given ids, preserving the input order
	// and silently skipping ids that resolve to nothing.
	GetByIDs(ids []string) ([]models.POI, error)
	GetAll() ([]models.POI, error)
}
