package wallets

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type walletUsecase struct {
	StaffRepository contracts.StaffRepository
	Log             *zap.Logger
}

var (
	walletUsecaseInstance contracts.WalletUsecase
	onceWalletUsecase     sync.Once
)

func NewWalletUsecase(staffRepository contracts.StaffRepository, logger *zap.Logger) contracts.WalletUsecase {
	onceWalletUsecase.Do(func() {
		walletUsecaseInstance = &walletUsecase{
			StaffRepository: staffRepository,
			Log:             logger,
		}
	})
	return walletUsecaseInstance
}

// TopUp credits all three earmarks in one ledger entry. The sum of the
// three amounts must be positive.
func (uc *walletUsecase) TopUp(ctx context.Context, staffID string, request *requests.TopUpWallet) (*responses.TopUpWallet, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("walletUsecase.TopUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffID),
		zap.Float64(constvars.LoggingAmountKey, request.Sum()),
	)

	if request.Sum() <= 0 {
		return nil, exceptions.ErrWalletInvalidTopUpAmount(fmt.Errorf("sum %.2f", request.Sum()))
	}

	staff, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s", staffID))
	}

	entry := models.WalletLog{
		Direction:    constvars.WalletDirectionCredit,
		ForTests:     request.ForTests,
		ForDoctors:   request.ForDoctors,
		ForPackages:  request.ForPackages,
		Amount:       request.Sum(),
		Counterparty: request.From,
		CreatedAt:    time.Now(),
	}

	updated, err := uc.StaffRepository.CreditWallet(ctx, staffID, entry)
	if err != nil {
		uc.Log.Error("walletUsecase.TopUp error crediting wallet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.TopUpWallet{
		StaffID:       updated.ID,
		WalletBalance: updated.WalletBalance,
		ForTests:      updated.ForTests,
		ForDoctors:    updated.ForDoctors,
		ForPackages:   updated.ForPackages,
		Entry:         buildLogResponse(entry, time.Now()),
	}, nil
}

// GetBalance reads the wallet with its full ledger, newest entries first,
// each annotated with a coarse "time ago" string.
func (uc *walletUsecase) GetBalance(ctx context.Context, staffID string) (*responses.WalletBalance, error) {
	staff, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s", staffID))
	}

	if !staff.Reconciled() {
		uc.Log.Warn("walletUsecase.GetBalance wallet not reconciled",
			zap.String(constvars.LoggingStaffIDKey, staffID),
			zap.Float64("wallet_balance", staff.WalletBalance),
			zap.Float64(constvars.EarmarkTests, staff.ForTests),
			zap.Float64(constvars.EarmarkDoctors, staff.ForDoctors),
			zap.Float64(constvars.EarmarkPackages, staff.ForPackages),
		)
	}

	now := time.Now()
	logs := make([]models.WalletLog, len(staff.WalletLogs))
	copy(logs, staff.WalletLogs)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	logResponses := make([]responses.WalletLog, 0, len(logs))
	for _, entry := range logs {
		logResponses = append(logResponses, buildLogResponse(entry, now))
	}

	return &responses.WalletBalance{
		StaffID:       staff.ID,
		WalletBalance: staff.WalletBalance,
		ForTests:      staff.ForTests,
		ForDoctors:    staff.ForDoctors,
		ForPackages:   staff.ForPackages,
		Logs:          logResponses,
	}, nil
}

func buildLogResponse(entry models.WalletLog, now time.Time) responses.WalletLog {
	return responses.WalletLog{
		Direction:    entry.Direction,
		ForTests:     entry.ForTests,
		ForDoctors:   entry.ForDoctors,
		ForPackages:  entry.ForPackages,
		Amount:       entry.Amount,
		Counterparty: entry.Counterparty,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
		TimeAgo:      utils.TimeAgo(entry.CreatedAt, now),
	}
}
