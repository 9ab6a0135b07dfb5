package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (string, error)
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, admin *models.Admin) error
	DeleteByID(ctx context.Context, adminID string) error
}

type AdminUsecase interface {
	Create(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error)
	Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
	Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error)
	Delete(ctx context.Context, adminID string) error
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) (string, error)
	FindByID(ctx context.Context, companyID string) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	DeleteByID(ctx context.Context, companyID string) error
}

type CompanyUsecase interface {
	Create(ctx context.Context, request *requests.CreateCompany) (*models.Company, error)
	FindByID(ctx context.Context, companyID string) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, companyID string, request *requests.UpdateCompany) (*models.Company, error)
	Delete(ctx context.Context, companyID string) error
}
