package wallets

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStaffRepository struct {
	contracts.StaffRepository
	staff   *models.Staff
	credits []models.WalletLog
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	if f.staff != nil && f.staff.ID == staffID {
		return f.staff, nil
	}
	return nil, nil
}

func (f *fakeStaffRepository) CreditWallet(ctx context.Context, staffID string, entry models.WalletLog) (*models.Staff, error) {
	f.staff.ForTests += entry.ForTests
	f.staff.ForDoctors += entry.ForDoctors
	f.staff.ForPackages += entry.ForPackages
	f.staff.WalletBalance += entry.Amount
	f.staff.WalletLogs = append(f.staff.WalletLogs, entry)
	f.credits = append(f.credits, entry)
	return f.staff, nil
}

func newWalletUsecaseUnderTest(staff *models.Staff) (*walletUsecase, *fakeStaffRepository) {
	repo := &fakeStaffRepository{staff: staff}
	return &walletUsecase{StaffRepository: repo, Log: zap.NewNop()}, repo
}

func TestTopUp_CreditsAllEarmarksInOneEntry(t *testing.T) {
	uc, repo := newWalletUsecaseUnderTest(&models.Staff{
		ID:            "64b000000000000000000s01",
		WalletBalance: 50,
		ForTests:      50,
	})

	result, err := uc.TopUp(context.Background(), "64b000000000000000000s01", &requests.TopUpWallet{
		ForTests:    100,
		ForDoctors:  200,
		ForPackages: 300,
		From:        "Acme Corp",
	})

	assert.NoError(t, err)
	assert.InDelta(t, 650.0, result.WalletBalance, 1e-9)
	assert.InDelta(t, 150.0, result.ForTests, 1e-9)
	assert.InDelta(t, 200.0, result.ForDoctors, 1e-9)
	assert.InDelta(t, 300.0, result.ForPackages, 1e-9)

	assert.Len(t, repo.credits, 1)
	assert.Equal(t, constvars.WalletDirectionCredit, repo.credits[0].Direction)
	assert.InDelta(t, 600.0, repo.credits[0].Amount, 1e-9)
	assert.Equal(t, "Acme Corp", repo.credits[0].Counterparty)

	assert.Equal(t, "Acme Corp", result.Entry.Counterparty)
	assert.Equal(t, "just now", result.Entry.TimeAgo)
}

func TestTopUp_RejectsNonPositiveSum(t *testing.T) {
	uc, repo := newWalletUsecaseUnderTest(&models.Staff{ID: "64b000000000000000000s01"})

	for name, request := range map[string]*requests.TopUpWallet{
		"all zero": {From: "Acme Corp"},
		"negative": {ForTests: -10, From: "Acme Corp"},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := uc.TopUp(context.Background(), "64b000000000000000000s01", request)

			assert.Nil(t, result)
			customErr, ok := err.(*exceptions.CustomError)
			assert.True(t, ok)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
			assert.Empty(t, repo.credits)
		})
	}
}

func TestTopUp_UnknownStaff(t *testing.T) {
	uc, _ := newWalletUsecaseUnderTest(&models.Staff{ID: "64b000000000000000000s01"})

	result, err := uc.TopUp(context.Background(), "64b000000000000000000s99", &requests.TopUpWallet{
		ForTests: 100,
		From:     "Acme Corp",
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestGetBalance_ReturnsLogsNewestFirst(t *testing.T) {
	now := time.Now()
	uc, _ := newWalletUsecaseUnderTest(&models.Staff{
		ID:            "64b000000000000000000s01",
		WalletBalance: 500,
		ForTests:      500,
		WalletLogs: []models.WalletLog{
			{Direction: constvars.WalletDirectionCredit, Amount: 1000, Counterparty: "Acme Corp", CreatedAt: now.Add(-48 * time.Hour)},
			{Direction: constvars.WalletDirectionDebit, Amount: 500, Counterparty: "CityScan Labs", CreatedAt: now.Add(-2 * time.Hour)},
		},
	})

	balance, err := uc.GetBalance(context.Background(), "64b000000000000000000s01")

	assert.NoError(t, err)
	assert.InDelta(t, 500.0, balance.WalletBalance, 1e-9)
	assert.Len(t, balance.Logs, 2)
	assert.Equal(t, "CityScan Labs", balance.Logs[0].Counterparty)
	assert.Equal(t, "Acme Corp", balance.Logs[1].Counterparty)
	assert.Equal(t, "2 hours ago", balance.Logs[0].TimeAgo)
	assert.Equal(t, "2 days ago", balance.Logs[1].TimeAgo)
}

func TestGetBalance_UnknownStaff(t *testing.T) {
	uc, _ := newWalletUsecaseUnderTest(&models.Staff{ID: "64b000000000000000000s01"})

	balance, err := uc.GetBalance(context.Background(), "missing")

	assert.Nil(t, balance)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
