package contentRepo

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

// MongoKContentRepo implements KContentRepository using MongoDB.
type MongoKContentRepo struct {
	coll *mongo.Collection
}

// NewMongoKContentRepo creates a new instance of KContentRepository using MongoDB.
func NewMongoKContentRepo() KContentRepository {
	coll := database.Collection("kcontents")
	repo := &MongoKContentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoKContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "poiId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoKContentRepo) find(filter bson.M) ([]models.KContent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contents: %w", err)
	}
	defer cursor.Close(ctx)

	var contents []models.KContent
	for cursor.Next(ctx) {
		var c models.KContent
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// GetAll retrieves all K-content records.
func (r *MongoKContentRepo) GetAll() ([]models.KContent, error) {
	return r.find(bson.M{})
}

// GetBySubName retrieves contents whose sub-name matches in either locale.
// Legacy documents store the sub-name as a bare string, so all three shapes
// are queried.
func (r *MongoKContentRepo) GetBySubName(subName string) ([]models.KContent, error) {
	return r.find(bson.M{"$or": []bson.M{
		{"subName": subName},
		{"subName.subName_en": subName},
		{"subName.subName_ko": subName},
		{"subName.en": subName},
		{"subName.ko": subName},
	}})
}

// GetByPOI retrieves contents linked to the given POI.
func (r *MongoKContentRepo) GetByPOI(poiID string) ([]models.KContent, error) {
	return r.find(bson.M{"poiId": poiID})
}

// GetByCategory retrieves contents in the given category.
func (r *MongoKContentRepo) GetByCategory(category models.Category) ([]models.KContent, error) {
	return r.find(bson.M{"category": category})
}

// SubNames returns the distinct English sub-name values.
func (r *MongoKContentRepo) SubNames() ([]string, error) {
	contents, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(contents))
	var names []string
	for _, c := range contents {
		name := c.SubName.EN
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
