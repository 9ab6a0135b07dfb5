package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type StaffRepository interface {
	CreateStaff(ctx context.Context, staff *models.Staff) (string, error)
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	FindByCompany(ctx context.Context, companyID string) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteByID(ctx context.Context, staffID string) error

	// CreditWallet applies the log entry's earmark amounts and total with a
	// single $inc/$push update, keeping balance and earmarks in step.
	CreditWallet(ctx context.Context, staffID string, entry models.WalletLog) (*models.Staff, error)
	// DebitWallet decrements the named earmark and the total balance,
	// guarded so the earmark cannot go below zero.
	DebitWallet(ctx context.Context, staffID, earmark string, amount float64, entry models.WalletLog) (*models.Staff, error)
}

type StaffUsecase interface {
	Create(ctx context.Context, request *requests.CreateStaff) (*models.Staff, error)
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
	FindByCompany(ctx context.Context, companyID string) ([]models.Staff, error)
	Update(ctx context.Context, staffID string, request *requests.UpdateStaff) (*models.Staff, error)
	Delete(ctx context.Context, staffID string) error
}
