package diagnostics

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DiagnosticMongoRepository struct {
	Collection *mongo.Collection
}

func NewDiagnosticMongoRepository(db *mongo.Client, dbName string) contracts.DiagnosticRepository {
	return &DiagnosticMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDiagnostics),
	}
}

func (r *DiagnosticMongoRepository) CreateDiagnostic(ctx context.Context, diagnostic *models.Diagnostic) (string, error) {
	result, err := r.Collection.InsertOne(ctx, diagnostic)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DiagnosticMongoRepository) FindByID(ctx context.Context, diagnosticID string) (*models.Diagnostic, error) {
	objectID, err := primitive.ObjectIDFromHex(diagnosticID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var diagnostic models.Diagnostic
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&diagnostic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &diagnostic, nil
}

func (r *DiagnosticMongoRepository) FindAll(ctx context.Context) ([]models.Diagnostic, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var diagnostics []models.Diagnostic
	if err := cursor.All(ctx, &diagnostics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return diagnostics, nil
}

func (r *DiagnosticMongoRepository) UpdateDiagnostic(ctx context.Context, diagnostic *models.Diagnostic) error {
	objectID, err := primitive.ObjectIDFromHex(diagnostic.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	diagnostic.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":       diagnostic.Name,
		"address":    diagnostic.Address,
		"city":       diagnostic.City,
		"testIds":    diagnostic.TestIDs,
		"packageIds": diagnostic.PackageIDs,
		"xrayIds":    diagnostic.XrayIDs,
		"updatedAt":  diagnostic.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDiagnosticNotFound(fmt.Errorf("diagnostic %s", diagnostic.ID))
	}
	return nil
}

func (r *DiagnosticMongoRepository) DeleteByID(ctx context.Context, diagnosticID string) error {
	objectID, err := primitive.ObjectIDFromHex(diagnosticID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDiagnosticNotFound(fmt.Errorf("diagnostic %s", diagnosticID))
	}
	return nil
}
