package artistRepo

import (
	"context"
	"fmt"
	"time"

	"hantrip/database"
	"hantrip/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoArtistRepo implements ArtistRepository using MongoDB.
type MongoArtistRepo struct {
	coll *mongo.Collection
}

// NewMongoArtistRepo creates a new instance of ArtistRepository using MongoDB.
func NewMongoArtistRepo() ArtistRepository {
	return &MongoArtistRepo{coll: database.Collection("artists")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoArtistRepo) find(filter bson.M) ([]models.Artist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	for cursor.Next(ctx) {
		var a models.Artist
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// GetAll retrieves all artists.
func (r *MongoArtistRepo) GetAll() ([]models.Artist, error) {
	return r.find(bson.M{})
}

// GetBySubName retrieves artists tied to the given content sub-name.
func (r *MongoArtistRepo) GetBySubName(subName string) ([]models.Artist, error) {
	return r.find(bson.M{"subName": subName})
}
