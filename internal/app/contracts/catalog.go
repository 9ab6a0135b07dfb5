package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type CatalogRepository interface {
	CreateTest(ctx context.Context, test *models.Test) (string, error)
	FindTestByID(ctx context.Context, testID string) (*models.Test, error)
	FindTestsByIDs(ctx context.Context, testIDs []string) ([]models.Test, error)
	FindTestsByCategory(ctx context.Context, categoryID string) ([]models.Test, error)
	UpdateTest(ctx context.Context, test *models.Test) error
	DeleteTestByID(ctx context.Context, testID string) error

	CreatePackage(ctx context.Context, pkg *models.Package) (string, error)
	FindPackageByID(ctx context.Context, packageID string) (*models.Package, error)
	FindAllPackages(ctx context.Context) ([]models.Package, error)
	UpdatePackage(ctx context.Context, pkg *models.Package) error
	DeletePackageByID(ctx context.Context, packageID string) error

	CreateXray(ctx context.Context, xray *models.Xray) (string, error)
	FindXrayByID(ctx context.Context, xrayID string) (*models.Xray, error)
	UpdateXray(ctx context.Context, xray *models.Xray) error
	DeleteXrayByID(ctx context.Context, xrayID string) error

	CreateCategory(ctx context.Context, category *models.Category) (string, error)
	FindAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategoryByID(ctx context.Context, categoryID string) error
}

type CatalogUsecase interface {
	CreateTest(ctx context.Context, request *requests.CreateTest) (*models.Test, error)
	FindTestByID(ctx context.Context, testID string) (*models.Test, error)
	FindTestsByCategory(ctx context.Context, categoryID string) ([]models.Test, error)
	UpdateTest(ctx context.Context, testID string, request *requests.UpdateCatalogItem) (*models.Test, error)
	DeleteTest(ctx context.Context, testID string) error

	CreatePackage(ctx context.Context, request *requests.CreatePackage) (*models.Package, error)
	FindAllPackages(ctx context.Context) ([]models.Package, error)
	FindPackageByID(ctx context.Context, packageID string) (*models.Package, error)
	UpdatePackage(ctx context.Context, packageID string, request *requests.UpdateCatalogItem) (*models.Package, error)
	DeletePackage(ctx context.Context, packageID string) error

	CreateXray(ctx context.Context, request *requests.CreateXray) (*models.Xray, error)
	FindXrayByID(ctx context.Context, xrayID string) (*models.Xray, error)
	UpdateXray(ctx context.Context, xrayID string, request *requests.UpdateCatalogItem) (*models.Xray, error)
	DeleteXray(ctx context.Context, xrayID string) error

	CreateCategory(ctx context.Context, request *requests.CreateCategory) (*models.Category, error)
	FindAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
