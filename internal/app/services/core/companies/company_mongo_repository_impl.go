package companies

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

type CompanyMongoRepository struct {
	Collection *mongo.Collection
}

func NewCompanyMongoRepository(db *mongo.Client, dbName string) contracts.CompanyRepository {
	return &CompanyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCompanies),
	}
}

func (r *CompanyMongoRepository) CreateCompany(ctx context.Context, company *models.Company) (string, error) {
	result, err := r.Collection.InsertOne(ctx, company)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CompanyMongoRepository) FindByID(ctx context.Context, companyID string) (*models.Company, error) {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var company models.Company
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &company, nil
}

func (r *CompanyMongoRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return companies, nil
}

func (r *CompanyMongoRepository) UpdateCompany(ctx context.Context, company *models.Company) error {
	objectID, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	company.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      company.Name,
		"address":   company.Address,
		"city":      company.City,
		"gstin":     company.GSTIN,
		"updatedAt": company.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrCompanyNotFound(fmt.Errorf("company %s", company.ID))
	}
	return nil
}

func (r *CompanyMongoRepository) DeleteByID(ctx context.Context, companyID string) error {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrCompanyNotFound(fmt.Errorf("company %s", companyID))
	}
	return nil
}
