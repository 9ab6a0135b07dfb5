package staffs

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type staffUsecase struct {
	StaffRepository   contracts.StaffRepository
	CompanyRepository contracts.CompanyRepository
	Log               *zap.Logger
}

var (
	staffUsecaseInstance contracts.StaffUsecase
	onceStaffUsecase     sync.Once
)

func NewStaffUsecase(
	staffRepository contracts.StaffRepository,
	companyRepository contracts.CompanyRepository,
	logger *zap.Logger,
) contracts.StaffUsecase {
	onceStaffUsecase.Do(func() {
		staffUsecaseInstance = &staffUsecase{
			StaffRepository:   staffRepository,
			CompanyRepository: companyRepository,
			Log:               logger,
		}
	})
	return staffUsecaseInstance
}

// Create onboards a staff member with a zeroed wallet. The wallet only ever
// changes through top-up and settlement debits afterwards.
func (uc *staffUsecase) Create(ctx context.Context, request *requests.CreateStaff) (*models.Staff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	company, err := uc.CompanyRepository.FindByID(ctx, request.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrCompanyNotFound(fmt.Errorf("company %s", request.CompanyID))
	}

	existing, err := uc.StaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", request.Email))
	}

	now := time.Now()
	staff := &models.Staff{
		CompanyID:   request.CompanyID,
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		Designation: request.Designation,
		WalletLogs:  []models.WalletLog{},
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	staffID, err := uc.StaffRepository.CreateStaff(ctx, staff)
	if err != nil {
		uc.Log.Error("staffUsecase.Create error inserting staff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	staff.ID = staffID
	return staff, nil
}

func (uc *staffUsecase) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	staff, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s", staffID))
	}
	return staff, nil
}

func (uc *staffUsecase) FindByCompany(ctx context.Context, companyID string) ([]models.Staff, error) {
	return uc.StaffRepository.FindByCompany(ctx, companyID)
}

func (uc *staffUsecase) Update(ctx context.Context, staffID string, request *requests.UpdateStaff) (*models.Staff, error) {
	staff, err := uc.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		staff.Name = request.Name
	}
	if request.Phone != "" {
		staff.Phone = request.Phone
	}
	if request.Designation != "" {
		staff.Designation = request.Designation
	}

	if err := uc.StaffRepository.UpdateStaff(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (uc *staffUsecase) Delete(ctx context.Context, staffID string) error {
	if _, err := uc.FindByID(ctx, staffID); err != nil {
		return err
	}
	return uc.StaffRepository.DeleteByID(ctx, staffID)
}
