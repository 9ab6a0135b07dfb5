package slots

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SlotMongoRepository mutates the slot arrays embedded in doctor and
// diagnostic documents. All booking-state flips go through a single
// filtered update so two concurrent bookings cannot both win the same
// slot.
type SlotMongoRepository struct {
	Doctors     *mongo.Collection
	Diagnostics *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	database := db.Database(dbName)
	return &SlotMongoRepository{
		Doctors:     database.Collection(constvars.MongoCollectionDoctors),
		Diagnostics: database.Collection(constvars.MongoCollectionDiagnostics),
	}
}

func (r *SlotMongoRepository) resolve(resourceType, slotType string) (*mongo.Collection, string, error) {
	switch resourceType {
	case constvars.BookingTypeDoctor:
		switch slotType {
		case constvars.SlotTypeOnline:
			return r.Doctors, "onlineSlots", nil
		case constvars.SlotTypeOffline:
			return r.Doctors, "offlineSlots", nil
		}
	case constvars.BookingTypeDiagnostic:
		switch slotType {
		case constvars.SlotTypeHome:
			return r.Diagnostics, "homeSlots", nil
		case constvars.SlotTypeCenter:
			return r.Diagnostics, "centerSlots", nil
		}
	}
	return nil, "", exceptions.ErrSlotInvalidType(fmt.Errorf("slot type %q for resource %q", slotType, resourceType))
}

func (r *SlotMongoRepository) AddSlot(ctx context.Context, resourceType, resourceID, slotType string, slot models.Slot) error {
	collection, field, err := r.resolve(resourceType, slotType)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(resourceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	// Only push when no slot with the same tuple exists yet, in any
	// booking state.
	filter := bson.M{
		"_id": objectID,
		field: bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"day":      slot.Day,
			"date":     slot.Date,
			"timeSlot": slot.TimeSlot,
		}}},
	}
	update := bson.M{"$push": bson.M{field: slot}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.ModifiedCount == 0 {
		exists, err := r.resourceExists(ctx, collection, objectID)
		if err != nil {
			return err
		}
		if !exists {
			return r.notFoundError(resourceType, resourceID)
		}
		return exceptions.ErrSlotDuplicate(fmt.Errorf("slot %s %s %s already exists", slot.Day, slot.Date, slot.TimeSlot))
	}
	return nil
}

// MarkBooked flips an open slot to booked. The filter requires the slot to
// still be open, so losing a race surfaces as ModifiedCount 0.
func (r *SlotMongoRepository) MarkBooked(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error {
	return r.setBooked(ctx, resourceType, resourceID, slotType, day, date, timeSlot, true)
}

// Release flips a booked slot back to open, for cancellation and for
// settlement compensation.
func (r *SlotMongoRepository) Release(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error {
	return r.setBooked(ctx, resourceType, resourceID, slotType, day, date, timeSlot, false)
}

func (r *SlotMongoRepository) setBooked(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string, booked bool) error {
	collection, field, err := r.resolve(resourceType, slotType)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(resourceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id": objectID,
		field: bson.M{"$elemMatch": bson.M{
			"day":      day,
			"date":     date,
			"timeSlot": timeSlot,
			"isBooked": !booked,
		}},
	}
	update := bson.M{"$set": bson.M{field + ".$.isBooked": booked}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.ModifiedCount == 0 {
		return r.explainMissedFlip(ctx, collection, objectID, resourceType, resourceID, field, day, date, timeSlot, booked)
	}
	return nil
}

// explainMissedFlip distinguishes a missing tuple from one already in the
// target state, so callers see 404 vs 409.
func (r *SlotMongoRepository) explainMissedFlip(ctx context.Context, collection *mongo.Collection, objectID primitive.ObjectID, resourceType, resourceID, field, day, date, timeSlot string, booked bool) error {
	slots, err := r.readSlots(ctx, collection, objectID, resourceType, resourceID, field)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot.SameTuple(day, date, timeSlot) {
			if booked {
				return exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s %s %s", day, date, timeSlot))
			}
			return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s not booked", day, date, timeSlot))
		}
	}
	return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s", day, date, timeSlot))
}

func (r *SlotMongoRepository) RemoveSlot(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error {
	collection, field, err := r.resolve(resourceType, slotType)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(resourceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$pull": bson.M{field: bson.M{
		"day":      day,
		"date":     date,
		"timeSlot": timeSlot,
	}}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return r.notFoundError(resourceType, resourceID)
	}
	if result.ModifiedCount == 0 {
		return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s", day, date, timeSlot))
	}
	return nil
}

func (r *SlotMongoRepository) UpdateSlot(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string, newSlot models.Slot) error {
	collection, field, err := r.resolve(resourceType, slotType)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(resourceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id": objectID,
		field: bson.M{"$elemMatch": bson.M{
			"day":      day,
			"date":     date,
			"timeSlot": timeSlot,
		}},
	}
	update := bson.M{"$set": bson.M{
		field + ".$.day":      newSlot.Day,
		field + ".$.date":     newSlot.Date,
		field + ".$.timeSlot": newSlot.TimeSlot,
		field + ".$.isBooked": newSlot.IsBooked,
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s", day, date, timeSlot))
	}
	return nil
}

func (r *SlotMongoRepository) ListSlots(ctx context.Context, resourceType, resourceID, slotType string) ([]models.Slot, error) {
	collection, field, err := r.resolve(resourceType, slotType)
	if err != nil {
		return nil, err
	}
	objectID, err := primitive.ObjectIDFromHex(resourceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.readSlots(ctx, collection, objectID, resourceType, resourceID, field)
}

func (r *SlotMongoRepository) readSlots(ctx context.Context, collection *mongo.Collection, objectID primitive.ObjectID, resourceType, resourceID, field string) ([]models.Slot, error) {
	var document struct {
		Slots []models.Slot `bson:"slots"`
	}
	projection := bson.M{"slots": "$" + field}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": objectID}}},
		bson.D{{Key: "$project", Value: projection}},
	}
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		return nil, r.notFoundError(resourceType, resourceID)
	}
	if err := cursor.Decode(&document); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return document.Slots, nil
}

func (r *SlotMongoRepository) resourceExists(ctx context.Context, collection *mongo.Collection, objectID primitive.ObjectID) (bool, error) {
	count, err := collection.CountDocuments(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *SlotMongoRepository) notFoundError(resourceType, resourceID string) error {
	if resourceType == constvars.BookingTypeDoctor {
		return exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s", resourceID))
	}
	return exceptions.ErrDiagnosticNotFound(fmt.Errorf("diagnostic %s", resourceID))
}
