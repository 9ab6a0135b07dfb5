package staffs

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) contracts.StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaffs),
	}
}

func (r *StaffMongoRepository) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	result, err := r.Collection.InsertOne(ctx, staff)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var staff models.Staff
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staff, nil
}

func (r *StaffMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staff, nil
}

func (r *StaffMongoRepository) FindByCompany(ctx context.Context, companyID string) ([]models.Staff, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var staffs []models.Staff
	if err := cursor.All(ctx, &staffs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return staffs, nil
}

func (r *StaffMongoRepository) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	objectID, err := primitive.ObjectIDFromHex(staff.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":        staff.Name,
		"phone":       staff.Phone,
		"designation": staff.Designation,
		"updatedAt":   time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *StaffMongoRepository) DeleteByID(ctx context.Context, staffID string) error {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// CreditWallet bumps the total balance and all three earmarks and appends
// the ledger entry in one update, so balance and earmarks cannot drift.
func (r *StaffMongoRepository) CreditWallet(ctx context.Context, staffID string, entry models.WalletLog) (*models.Staff, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$inc": bson.M{
			"walletBalance":           entry.Amount,
			constvars.EarmarkTests:    entry.ForTests,
			constvars.EarmarkDoctors:  entry.ForDoctors,
			constvars.EarmarkPackages: entry.ForPackages,
		},
		"$push": bson.M{"walletLogs": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	var staff models.Staff
	err = r.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrStaffNotFound(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &staff, nil
}

// DebitWallet decrements the named earmark and the total balance, filtered
// on the earmark holding at least the debit amount. A concurrent debit that
// would overdraw the earmark simply fails to match.
func (r *StaffMongoRepository) DebitWallet(ctx context.Context, staffID, earmark string, amount float64, entry models.WalletLog) (*models.Staff, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	switch earmark {
	case constvars.EarmarkTests, constvars.EarmarkDoctors, constvars.EarmarkPackages:
	default:
		return nil, exceptions.ErrWalletInvalidEarmark(fmt.Errorf("earmark %q", earmark))
	}

	filter := bson.M{
		"_id":   objectID,
		earmark: bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{
			"walletBalance": -amount,
			earmark:         -amount,
		},
		"$push": bson.M{"walletLogs": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	var staff models.Staff
	err = r.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			existing, findErr := r.FindByID(ctx, staffID)
			if findErr == nil && existing == nil {
				return nil, exceptions.ErrStaffNotFound(err)
			}
			return nil, exceptions.ErrWalletInsufficientFunds(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &staff, nil
}
