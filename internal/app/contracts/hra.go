package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type HraRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.HraQuestionnaire) (string, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.HraQuestionnaire, error)
	FindAllQuestionnaires(ctx context.Context) ([]models.HraQuestionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *models.HraQuestionnaire) error
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
	CreateResponse(ctx context.Context, response *models.HraResponse) (string, error)
}

type HraUsecase interface {
	Create(ctx context.Context, request *requests.CreateHraQuestionnaire) (*models.HraQuestionnaire, error)
	FindByID(ctx context.Context, questionnaireID string) (*models.HraQuestionnaire, error)
	FindAll(ctx context.Context) ([]models.HraQuestionnaire, error)
	Delete(ctx context.Context, questionnaireID string) error
	SubmitResponse(ctx context.Context, questionnaireID string, request *requests.SubmitHraResponse) (*responses.HraResult, error)
}
