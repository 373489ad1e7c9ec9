package poiRepo

import (
	"context"
	"fmt"
	"time"

	"hantrip/database"
	"hantrip/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPOIRepo implements POIRepository using MongoDB.
type MongoPOIRepo struct {
	coll *mongo.Collection
}

// NewMongoPOIRepo creates a new instance of POIRepository using MongoDB.
func NewMongoPOIRepo() POIRepository {
	coll := database.Collection("pois")
	repo := &MongoPOIRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPOIRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a POI by its unique ID. Absence is not an error.
func (r *MongoPOIRepo) GetByID(id string) (*models.POI, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var poi models.POI
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&poi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch POI with id %s: %w", id, err)
	}
	return &poi, nil
}

// GetByIDs retrieves POIs for the given ids in input order.
func (r *MongoPOIRepo) GetByIDs(ids []string) ([]models.POI, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve POIs: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.POI, len(ids))
	for cursor.Next(ctx) {
		var p models.POI
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode POI: %w", err)
		}
		byID[p.ID] = p
	}

	pois := make([]models.POI, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			pois = append(pois, p)
		}
	}
	return pois, nil
}

// GetAll retrieves all POIs.
func (r *MongoPOIRepo) GetAll() ([]models.POI, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve POIs: %w", err)
	}
	defer cursor.Close(ctx)

	var pois []models.POI
	for cursor.Next(ctx) {
		var p models.POI
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode POI: %w", err)
		}
		pois = append(pois, p)
	}
	return pois, nil
}
