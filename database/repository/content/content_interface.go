package contentRepo

import "hantrip/models"

// KContentRepository defines read access to the K-content collection.
type KContentRepository interface {
	GetAll() ([]models.KContent, error)
	// GetBySubName matches either locale of the sub-name.
	GetBySubName(subName string) ([]models.KContent, error)
	GetByPOI(poiID string) ([]models.KContent, error)
	GetByCategory(category models.Category) ([]models.KContent, error)
	// SubNames returns the distinct sub-name values (English side), used for
	// sitemap generation.
	SubNames() ([]string, error)
}
