package catalog

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

type catalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
	Log               *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(catalogRepository contracts.CatalogRepository, logger *zap.Logger) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = &catalogUsecase{
			CatalogRepository: catalogRepository,
			Log:               logger,
		}
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) CreateTest(ctx context.Context, request *requests.CreateTest) (*models.Test, error) {
	now := time.Now()
	test := &models.Test{
		CategoryID: request.CategoryID,
		Name:       request.Name,
		Price:      request.Price,
		OfferPrice: request.OfferPrice,
	}
	test.CreatedAt = now
	test.UpdatedAt = now

	testID, err := uc.CatalogRepository.CreateTest(ctx, test)
	if err != nil {
		return nil, err
	}
	test.ID = testID
	return test, nil
}

func (uc *catalogUsecase) FindTestByID(ctx context.Context, testID string) (*models.Test, error) {
	test, err := uc.CatalogRepository.FindTestByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, exceptions.ErrTestNotFound(fmt.Errorf("test %s", testID))
	}
	return test, nil
}

func (uc *catalogUsecase) FindTestsByCategory(ctx context.Context, categoryID string) ([]models.Test, error) {
	return uc.CatalogRepository.FindTestsByCategory(ctx, categoryID)
}

func (uc *catalogUsecase) UpdateTest(ctx context.Context, testID string, request *requests.UpdateCatalogItem) (*models.Test, error) {
	test, err := uc.FindTestByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	applyCatalogUpdate(request, &test.Name, &test.Price, &test.OfferPrice)
	if err := uc.CatalogRepository.UpdateTest(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

func (uc *catalogUsecase) DeleteTest(ctx context.Context, testID string) error {
	return uc.CatalogRepository.DeleteTestByID(ctx, testID)
}

func (uc *catalogUsecase) CreatePackage(ctx context.Context, request *requests.CreatePackage) (*models.Package, error) {
	// Every test referenced by the package must exist up front;
	// settlement prices packages as a whole without revisiting members.
	if len(request.TestIDs) > 0 {
		tests, err := uc.CatalogRepository.FindTestsByIDs(ctx, request.TestIDs)
		if err != nil {
			return nil, err
		}
		if len(tests) != len(request.TestIDs) {
			return nil, exceptions.ErrTestNotFound(fmt.Errorf("requested %d tests, found %d", len(request.TestIDs), len(tests)))
		}
	}

	now := time.Now()
	pkg := &models.Package{
		Name:       request.Name,
		TestIDs:    request.TestIDs,
		Price:      request.Price,
		OfferPrice: request.OfferPrice,
	}
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	packageID, err := uc.CatalogRepository.CreatePackage(ctx, pkg)
	if err != nil {
		return nil, err
	}
	pkg.ID = packageID
	return pkg, nil
}

func (uc *catalogUsecase) FindAllPackages(ctx context.Context) ([]models.Package, error) {
	return uc.CatalogRepository.FindAllPackages(ctx)
}

func (uc *catalogUsecase) FindPackageByID(ctx context.Context, packageID string) (*models.Package, error) {
	pkg, err := uc.CatalogRepository.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, exceptions.ErrPackageNotFound(fmt.Errorf("package %s", packageID))
	}
	return pkg, nil
}

func (uc *catalogUsecase) UpdatePackage(ctx context.Context, packageID string, request *requests.UpdateCatalogItem) (*models.Package, error) {
	pkg, err := uc.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	applyCatalogUpdate(request, &pkg.Name, &pkg.Price, &pkg.OfferPrice)
	if err := uc.CatalogRepository.UpdatePackage(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (uc *catalogUsecase) DeletePackage(ctx context.Context, packageID string) error {
	return uc.CatalogRepository.DeletePackageByID(ctx, packageID)
}

func (uc *catalogUsecase) CreateXray(ctx context.Context, request *requests.CreateXray) (*models.Xray, error) {
	now := time.Now()
	xray := &models.Xray{
		CategoryID: request.CategoryID,
		Name:       request.Name,
		Price:      request.Price,
		OfferPrice: request.OfferPrice,
	}
	xray.CreatedAt = now
	xray.UpdatedAt = now

	xrayID, err := uc.CatalogRepository.CreateXray(ctx, xray)
	if err != nil {
		return nil, err
	}
	xray.ID = xrayID
	return xray, nil
}

func (uc *catalogUsecase) FindXrayByID(ctx context.Context, xrayID string) (*models.Xray, error) {
	xray, err := uc.CatalogRepository.FindXrayByID(ctx, xrayID)
	if err != nil {
		return nil, err
	}
	if xray == nil {
		return nil, exceptions.ErrXrayNotFound(fmt.Errorf("xray %s", xrayID))
	}
	return xray, nil
}

func (uc *catalogUsecase) UpdateXray(ctx context.Context, xrayID string, request *requests.UpdateCatalogItem) (*models.Xray, error) {
	xray, err := uc.FindXrayByID(ctx, xrayID)
	if err != nil {
		return nil, err
	}
	applyCatalogUpdate(request, &xray.Name, &xray.Price, &xray.OfferPrice)
	if err := uc.CatalogRepository.UpdateXray(ctx, xray); err != nil {
		return nil, err
	}
	return xray, nil
}

func (uc *catalogUsecase) DeleteXray(ctx context.Context, xrayID string) error {
	return uc.CatalogRepository.DeleteXrayByID(ctx, xrayID)
}

func (uc *catalogUsecase) CreateCategory(ctx context.Context, request *requests.CreateCategory) (*models.Category, error) {
	now := time.Now()
	category := &models.Category{
		Name: request.Name,
		Kind: request.Kind,
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	categoryID, err := uc.CatalogRepository.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = categoryID
	return category, nil
}

func (uc *catalogUsecase) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	return uc.CatalogRepository.FindAllCategories(ctx)
}

func (uc *catalogUsecase) DeleteCategory(ctx context.Context, categoryID string) error {
	return uc.CatalogRepository.DeleteCategoryByID(ctx, categoryID)
}

func applyCatalogUpdate(request *requests.UpdateCatalogItem, name *string, price, offerPrice *float64) {
	if request.Name != "" {
		*name = request.Name
	}
	if request.Price > 0 {
		*price = request.Price
	}
	if request.OfferPrice > 0 {
		*offerPrice = request.OfferPrice
	}
}
