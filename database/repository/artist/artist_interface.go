package artistRepo

import "hantrip/models"

// ArtistRepository defines read access to the K-pop artist collection.
type ArtistRepository interface {
	GetAll() ([]models.Artist, error)
	GetBySubName(subName string) ([]models.Artist, error)
}
