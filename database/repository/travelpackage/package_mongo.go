package packageRepo

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

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a new instance of PackageRepository using MongoDB.
func NewMongoPackageRepo() PackageRepository {
	coll := database.Collection("packages")
	repo := &MongoPackageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPackageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a package by its unique ID. Absence is not an error.
func (r *MongoPackageRepo) GetByID(id string) (*models.TravelPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.TravelPackage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) find(filter bson.M) ([]models.TravelPackage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.TravelPackage
	for cursor.Next(ctx) {
		var p models.TravelPackage
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

// GetAll retrieves all packages.
func (r *MongoPackageRepo) GetAll() ([]models.TravelPackage, error) {
	return r.find(bson.M{})
}

// GetByCategory retrieves packages in the given category.
func (r *MongoPackageRepo) GetByCategory(category string) ([]models.TravelPackage, error) {
	return r.find(bson.M{"category": category})
}
