package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type DiagnosticRepository interface {
	CreateDiagnostic(ctx context.Context, diagnostic *models.Diagnostic) (string, error)
	FindByID(ctx context.Context, diagnosticID string) (*models.Diagnostic, error)
	FindAll(ctx context.Context) ([]models.Diagnostic, error)
	UpdateDiagnostic(ctx context.Context, diagnostic *models.Diagnostic) error
	DeleteByID(ctx context.Context, diagnosticID string) error
}

type DiagnosticUsecase interface {
	Create(ctx context.Context, request *requests.CreateDiagnostic) (*models.Diagnostic, error)
	FindByID(ctx context.Context, diagnosticID string) (*models.Diagnostic, error)
	FindAll(ctx context.Context) ([]models.Diagnostic, error)
	Update(ctx context.Context, diagnosticID string, request *requests.UpdateDiagnostic) (*models.Diagnostic, error)
	Delete(ctx context.Context, diagnosticID string) error
}
