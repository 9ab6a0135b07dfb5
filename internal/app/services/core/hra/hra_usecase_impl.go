package hra

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"
)

type hraUsecase struct {
	HraRepository   contracts.HraRepository
	StaffRepository contracts.StaffRepository
	Log             *zap.Logger
}

var (
	hraUsecaseInstance contracts.HraUsecase
	onceHraUsecase     sync.Once
)

func NewHraUsecase(hraRepository contracts.HraRepository, staffRepository contracts.StaffRepository, logger *zap.Logger) contracts.HraUsecase {
	onceHraUsecase.Do(func() {
		hraUsecaseInstance = &hraUsecase{
			HraRepository:   hraRepository,
			StaffRepository: staffRepository,
			Log:             logger,
		}
	})
	return hraUsecaseInstance
}

func (uc *hraUsecase) Create(ctx context.Context, request *requests.CreateHraQuestionnaire) (*models.HraQuestionnaire, error) {
	now := time.Now()
	questionnaire := &models.HraQuestionnaire{
		Title:     request.Title,
		Questions: make([]models.HraQuestion, 0, len(request.Questions)),
	}
	for _, question := range request.Questions {
		options := make([]models.HraOption, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, models.HraOption{Text: option.Text, Score: option.Score})
		}
		questionnaire.Questions = append(questionnaire.Questions, models.HraQuestion{
			Text:    question.Text,
			Options: options,
		})
	}
	questionnaire.CreatedAt = now
	questionnaire.UpdatedAt = now

	questionnaireID, err := uc.HraRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID
	return questionnaire, nil
}

func (uc *hraUsecase) FindByID(ctx context.Context, questionnaireID string) (*models.HraQuestionnaire, error) {
	questionnaire, err := uc.HraRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s", questionnaireID))
	}
	return questionnaire, nil
}

func (uc *hraUsecase) FindAll(ctx context.Context) ([]models.HraQuestionnaire, error) {
	return uc.HraRepository.FindAllQuestionnaires(ctx)
}

func (uc *hraUsecase) Delete(ctx context.Context, questionnaireID string) error {
	return uc.HraRepository.DeleteQuestionnaireByID(ctx, questionnaireID)
}

// SubmitResponse scores one answer per question and bands the total
// against the questionnaire's maximum.
func (uc *hraUsecase) SubmitResponse(ctx context.Context, questionnaireID string, request *requests.SubmitHraResponse) (*responses.HraResult, error) {
	questionnaire, err := uc.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.StaffRepository.FindByID(ctx, request.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s", request.StaffID))
	}

	if len(request.Answers) != len(questionnaire.Questions) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("%d answers for %d questions", len(request.Answers), len(questionnaire.Questions)))
	}

	score := 0
	for i, answer := range request.Answers {
		options := questionnaire.Questions[i].Options
		if answer < 0 || answer >= len(options) {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("answer %d out of range for question %d", answer, i))
		}
		score += options[answer].Score
	}

	maxScore := questionnaire.MaxScore()
	response := &models.HraResponse{
		QuestionnaireID: questionnaire.ID,
		StaffID:         request.StaffID,
		Answers:         request.Answers,
		Score:           score,
		RiskLevel:       bandRiskLevel(score, maxScore),
		SubmittedAt:     time.Now(),
	}
	responseID, err := uc.HraRepository.CreateResponse(ctx, response)
	if err != nil {
		return nil, err
	}

	return &responses.HraResult{
		ResponseID: responseID,
		Score:      score,
		MaxScore:   maxScore,
		RiskLevel:  response.RiskLevel,
	}, nil
}

// bandRiskLevel splits the score range into thirds.
func bandRiskLevel(score, maxScore int) string {
	if maxScore <= 0 {
		return RiskLevelLow
	}
	ratio := float64(score) / float64(maxScore)
	switch {
	case ratio < 1.0/3.0:
		return RiskLevelLow
	case ratio < 2.0/3.0:
		return RiskLevelModerate
	default:
		return RiskLevelHigh
	}
}
