package hra

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

type HraMongoRepository struct {
	Questionnaires *mongo.Collection
	Responses      *mongo.Collection
}

func NewHraMongoRepository(db *mongo.Client, dbName string) contracts.HraRepository {
	database := db.Database(dbName)
	return &HraMongoRepository{
		Questionnaires: database.Collection(constvars.MongoCollectionHraQuestionnaires),
		Responses:      database.Collection(constvars.MongoCollectionHraResponses),
	}
}

func (r *HraMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.HraQuestionnaire) (string, error) {
	result, err := r.Questionnaires.InsertOne(ctx, questionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HraMongoRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.HraQuestionnaire, error) {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var questionnaire models.HraQuestionnaire
	err = r.Questionnaires.FindOne(ctx, bson.M{"_id": objectID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *HraMongoRepository) FindAllQuestionnaires(ctx context.Context) ([]models.HraQuestionnaire, error) {
	cursor, err := r.Questionnaires.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var questionnaires []models.HraQuestionnaire
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, nil
}

func (r *HraMongoRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.HraQuestionnaire) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaire.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	questionnaire.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":     questionnaire.Title,
		"questions": questionnaire.Questions,
		"updatedAt": questionnaire.UpdatedAt,
	}}
	result, err := r.Questionnaires.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s", questionnaire.ID))
	}
	return nil
}

func (r *HraMongoRepository) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Questionnaires.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s", questionnaireID))
	}
	return nil
}

func (r *HraMongoRepository) CreateResponse(ctx context.Context, response *models.HraResponse) (string, error) {
	result, err := r.Responses.InsertOne(ctx, response)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
