package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
}

type DoctorUsecase interface {
	Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID string) error
}
