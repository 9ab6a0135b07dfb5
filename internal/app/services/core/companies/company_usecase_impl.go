package companies

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type companyUsecase struct {
	CompanyRepository contracts.CompanyRepository
	Log               *zap.Logger
}

var (
	companyUsecaseInstance contracts.CompanyUsecase
	onceCompanyUsecase     sync.Once
)

func NewCompanyUsecase(companyRepository contracts.CompanyRepository, logger *zap.Logger) contracts.CompanyUsecase {
	onceCompanyUsecase.Do(func() {
		companyUsecaseInstance = &companyUsecase{
			CompanyRepository: companyRepository,
			Log:               logger,
		}
	})
	return companyUsecaseInstance
}

func (uc *companyUsecase) Create(ctx context.Context, request *requests.CreateCompany) (*models.Company, error) {
	now := time.Now()
	company := &models.Company{
		Name:    request.Name,
		Address: request.Address,
		City:    request.City,
		GSTIN:   request.GSTIN,
	}
	company.CreatedAt = now
	company.UpdatedAt = now

	companyID, err := uc.CompanyRepository.CreateCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = companyID
	return company, nil
}

func (uc *companyUsecase) FindByID(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := uc.CompanyRepository.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrCompanyNotFound(fmt.Errorf("company %s", companyID))
	}
	return company, nil
}

func (uc *companyUsecase) FindAll(ctx context.Context) ([]models.Company, error) {
	return uc.CompanyRepository.FindAll(ctx)
}

func (uc *companyUsecase) Update(ctx context.Context, companyID string, request *requests.UpdateCompany) (*models.Company, error) {
	company, err := uc.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if request.Name != "" {
		company.Name = request.Name
	}
	if request.Address != "" {
		company.Address = request.Address
	}
	if request.City != "" {
		company.City = request.City
	}
	if request.GSTIN != "" {
		company.GSTIN = request.GSTIN
	}
	if err := uc.CompanyRepository.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (uc *companyUsecase) Delete(ctx context.Context, companyID string) error {
	return uc.CompanyRepository.DeleteByID(ctx, companyID)
}
