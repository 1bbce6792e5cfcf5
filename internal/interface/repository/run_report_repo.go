package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"flightgroup-service/internal/domain/entity"
	"flightgroup-service/internal/domain/repository"
)

// MongoRunReportRepository implements RunReportRepository
type MongoRunReportRepository struct {
	collection *mongo.Collection
}

// NewMongoRunReportRepository creates a new run report repository
func NewMongoRunReportRepository(db *mongo.Database) repository.RunReportRepository {
	collection := db.Collection("run_reports")

	// Index on startedAt for time-range queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"startedAt": 1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoRunReportRepository{
		collection: collection,
	}
}

// Save archives one run report
func (r *MongoRunReportRepository) Save(ctx context.Context, report *entity.RunReport) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}
