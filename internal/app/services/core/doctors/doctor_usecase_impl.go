package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	now := time.Now()
	doctor := &models.Doctor{
		Name:            request.Name,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		ConsultationFee: request.ConsultationFee,
		OnlineSlots:     []models.Slot{},
		OfflineSlots:    []models.Slot{},
	}
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID
	return doctor, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s", doctorID))
	}
	return doctor, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	doctor, err := uc.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Qualification != "" {
		doctor.Qualification = request.Qualification
	}
	if request.ConsultationFee > 0 {
		doctor.ConsultationFee = request.ConsultationFee
	}
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID string) error {
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}
