package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	objectID, err := primitive.ObjectIDFromHex(booking.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	booking.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"testIds":        booking.TestIDs,
		"totalPrice":     booking.TotalPrice,
		"discount":       booking.Discount,
		"payableAmount":  booking.PayableAmount,
		"pricing":        booking.Pricing,
		"status":         booking.Status,
		"paymentStatus":  booking.PaymentStatus,
		"paymentDetails": booking.PaymentDetails,
		"updatedAt":      booking.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBookingNotFound(fmt.Errorf("booking %s", booking.ID))
	}
	return nil
}

func (r *BookingMongoRepository) DeleteByID(ctx context.Context, bookingID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrBookingNotFound(fmt.Errorf("booking %s", bookingID))
	}
	return nil
}

func (r *BookingMongoRepository) LatestBookingID(ctx context.Context, bookingType string) (string, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"type": bookingType}, findOptions).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", exceptions.ErrMongoDBFindDocument(err)
	}
	return booking.BookingID, nil
}
