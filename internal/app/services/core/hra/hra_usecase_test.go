package hra

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeHraRepository struct {
	contracts.HraRepository
	questionnaire *models.HraQuestionnaire
	responses     []*models.HraResponse
}

func (f *fakeHraRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.HraQuestionnaire, error) {
	if f.questionnaire != nil && f.questionnaire.ID == questionnaireID {
		return f.questionnaire, nil
	}
	return nil, nil
}

func (f *fakeHraRepository) CreateResponse(ctx context.Context, response *models.HraResponse) (string, error) {
	f.responses = append(f.responses, response)
	return "64b000000000000000000r01", nil
}

type fakeStaffRepository struct {
	contracts.StaffRepository
	staff *models.Staff
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	if f.staff != nil && f.staff.ID == staffID {
		return f.staff, nil
	}
	return nil, nil
}

func scoredQuestionnaire() *models.HraQuestionnaire {
	// max achievable score: 3 + 3 + 3 = 9
	return &models.HraQuestionnaire{
		ID:    "64b000000000000000000q01",
		Title: "Lifestyle Assessment",
		Questions: []models.HraQuestion{
			{Text: "Exercise per week", Options: []models.HraOption{
				{Text: "Daily", Score: 0},
				{Text: "Sometimes", Score: 1},
				{Text: "Never", Score: 3},
			}},
			{Text: "Smoking", Options: []models.HraOption{
				{Text: "No", Score: 0},
				{Text: "Yes", Score: 3},
			}},
			{Text: "Sleep", Options: []models.HraOption{
				{Text: "8 hours", Score: 0},
				{Text: "6 hours", Score: 1},
				{Text: "Less", Score: 3},
			}},
		},
	}
}

func newHraUsecaseUnderTest() (*hraUsecase, *fakeHraRepository) {
	repo := &fakeHraRepository{questionnaire: scoredQuestionnaire()}
	staffs := &fakeStaffRepository{staff: &models.Staff{ID: "64b000000000000000000s01"}}
	return &hraUsecase{HraRepository: repo, StaffRepository: staffs, Log: zap.NewNop()}, repo
}

func TestSubmitResponse_ScoresAndBands(t *testing.T) {
	uc, repo := newHraUsecaseUnderTest()

	result, err := uc.SubmitResponse(context.Background(), "64b000000000000000000q01", &requests.SubmitHraResponse{
		StaffID: "64b000000000000000000s01",
		Answers: []int{2, 1, 0},
	})

	assert.NoError(t, err)
	assert.Equal(t, "64b000000000000000000r01", result.ResponseID)
	assert.Equal(t, 6, result.Score)
	assert.Equal(t, 9, result.MaxScore)
	assert.Equal(t, RiskLevelHigh, result.RiskLevel)

	assert.Len(t, repo.responses, 1)
	assert.Equal(t, []int{2, 1, 0}, repo.responses[0].Answers)
	assert.Equal(t, RiskLevelHigh, repo.responses[0].RiskLevel)
}

func TestSubmitResponse_AnswerCountMismatch(t *testing.T) {
	uc, repo := newHraUsecaseUnderTest()

	result, err := uc.SubmitResponse(context.Background(), "64b000000000000000000q01", &requests.SubmitHraResponse{
		StaffID: "64b000000000000000000s01",
		Answers: []int{0, 1},
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Empty(t, repo.responses)
}

func TestSubmitResponse_AnswerIndexOutOfRange(t *testing.T) {
	uc, repo := newHraUsecaseUnderTest()

	result, err := uc.SubmitResponse(context.Background(), "64b000000000000000000q01", &requests.SubmitHraResponse{
		StaffID: "64b000000000000000000s01",
		Answers: []int{0, 5, 0},
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Empty(t, repo.responses)
}

func TestSubmitResponse_UnknownQuestionnaire(t *testing.T) {
	uc, _ := newHraUsecaseUnderTest()

	result, err := uc.SubmitResponse(context.Background(), "missing", &requests.SubmitHraResponse{
		StaffID: "64b000000000000000000s01",
		Answers: []int{0, 0, 0},
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestBandRiskLevel(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		maxScore int
		want     string
	}{
		{"zero of nine", 0, 9, RiskLevelLow},
		{"just under one third", 2, 9, RiskLevelLow},
		{"exactly one third", 3, 9, RiskLevelModerate},
		{"just under two thirds", 5, 9, RiskLevelModerate},
		{"exactly two thirds", 6, 9, RiskLevelHigh},
		{"full score", 9, 9, RiskLevelHigh},
		{"empty questionnaire", 0, 0, RiskLevelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bandRiskLevel(tt.score, tt.maxScore))
		})
	}
}
