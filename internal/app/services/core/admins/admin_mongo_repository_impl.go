package admins

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

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	result, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AdminMongoRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	objectID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var admin models.Admin
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}

func (r *AdminMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}

func (r *AdminMongoRepository) UpdateAdmin(ctx context.Context, admin *models.Admin) error {
	objectID, err := primitive.ObjectIDFromHex(admin.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	admin.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      admin.Name,
		"role":      admin.Role,
		"updatedAt": admin.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAdminNotFound(fmt.Errorf("admin %s", admin.ID))
	}
	return nil
}

func (r *AdminMongoRepository) DeleteByID(ctx context.Context, adminID string) error {
	objectID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAdminNotFound(fmt.Errorf("admin %s", adminID))
	}
	return nil
}
