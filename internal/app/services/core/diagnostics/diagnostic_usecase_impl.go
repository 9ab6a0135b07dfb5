package diagnostics

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

type diagnosticUsecase struct {
	DiagnosticRepository contracts.DiagnosticRepository
	Log                  *zap.Logger
}

var (
	diagnosticUsecaseInstance contracts.DiagnosticUsecase
	onceDiagnosticUsecase     sync.Once
)

func NewDiagnosticUsecase(diagnosticRepository contracts.DiagnosticRepository, logger *zap.Logger) contracts.DiagnosticUsecase {
	onceDiagnosticUsecase.Do(func() {
		diagnosticUsecaseInstance = &diagnosticUsecase{
			DiagnosticRepository: diagnosticRepository,
			Log:                  logger,
		}
	})
	return diagnosticUsecaseInstance
}

func (uc *diagnosticUsecase) Create(ctx context.Context, request *requests.CreateDiagnostic) (*models.Diagnostic, error) {
	now := time.Now()
	diagnostic := &models.Diagnostic{
		Name:        request.Name,
		Address:     request.Address,
		City:        request.City,
		TestIDs:     request.TestIDs,
		PackageIDs:  request.PackageIDs,
		XrayIDs:     request.XrayIDs,
		HomeSlots:   []models.Slot{},
		CenterSlots: []models.Slot{},
	}
	diagnostic.CreatedAt = now
	diagnostic.UpdatedAt = now

	diagnosticID, err := uc.DiagnosticRepository.CreateDiagnostic(ctx, diagnostic)
	if err != nil {
		return nil, err
	}
	diagnostic.ID = diagnosticID
	return diagnostic, nil
}

func (uc *diagnosticUsecase) FindByID(ctx context.Context, diagnosticID string) (*models.Diagnostic, error) {
	diagnostic, err := uc.DiagnosticRepository.FindByID(ctx, diagnosticID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		return nil, exceptions.ErrDiagnosticNotFound(fmt.Errorf("diagnostic %s", diagnosticID))
	}
	return diagnostic, nil
}

func (uc *diagnosticUsecase) FindAll(ctx context.Context) ([]models.Diagnostic, error) {
	return uc.DiagnosticRepository.FindAll(ctx)
}

func (uc *diagnosticUsecase) Update(ctx context.Context, diagnosticID string, request *requests.UpdateDiagnostic) (*models.Diagnostic, error) {
	diagnostic, err := uc.FindByID(ctx, diagnosticID)
	if err != nil {
		return nil, err
	}
	if request.Name != "" {
		diagnostic.Name = request.Name
	}
	if request.Address != "" {
		diagnostic.Address = request.Address
	}
	if request.City != "" {
		diagnostic.City = request.City
	}
	if request.TestIDs != nil {
		diagnostic.TestIDs = request.TestIDs
	}
	if request.PackageIDs != nil {
		diagnostic.PackageIDs = request.PackageIDs
	}
	if request.XrayIDs != nil {
		diagnostic.XrayIDs = request.XrayIDs
	}
	if err := uc.DiagnosticRepository.UpdateDiagnostic(ctx, diagnostic); err != nil {
		return nil, err
	}
	return diagnostic, nil
}

func (uc *diagnosticUsecase) Delete(ctx context.Context, diagnosticID string) error {
	return uc.DiagnosticRepository.DeleteByID(ctx, diagnosticID)
}
