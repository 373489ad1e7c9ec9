package packageRepo

import "hantrip/models"

// PackageRepository defines read access to the travel-package collection.
type PackageRepository interface {
	// GetByID returns the package, or (nil, nil) when no document matches.
	GetByID(id string) (*models.TravelPackage, error)
	GetAll() ([]models.TravelPackage, error)
	GetByCategory(category string) ([]models.TravelPackage, error)
}
