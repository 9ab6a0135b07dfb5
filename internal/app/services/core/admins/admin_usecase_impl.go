package admins

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/jwtmanager"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type adminUsecase struct {
	AdminRepository contracts.AdminRepository
	JWTManager      *jwtmanager.JWTManager
	Log             *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(adminRepository contracts.AdminRepository, jwtManager *jwtmanager.JWTManager, logger *zap.Logger) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			AdminRepository: adminRepository,
			JWTManager:      jwtManager,
			Log:             logger,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) Create(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error) {
	existing, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", request.Email))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	admin := &models.Admin{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     request.Role,
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	adminID, err := uc.AdminRepository.CreateAdmin(ctx, admin)
	if err != nil {
		return nil, err
	}
	admin.ID = adminID
	return admin, nil
}

func (uc *adminUsecase) Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	admin, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrInvalidCredentials(fmt.Errorf("unknown email"))
	}
	if err := utils.ComparePassword(admin.Password, request.Password); err != nil {
		return nil, exceptions.ErrInvalidCredentials(err)
	}

	token, err := uc.JWTManager.Generate(admin.ID)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &responses.AdminLogin{
		Token: token,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}, nil
}

func (uc *adminUsecase) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	admin, err := uc.AdminRepository.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrAdminNotFound(fmt.Errorf("admin %s", adminID))
	}
	return admin, nil
}

func (uc *adminUsecase) Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error) {
	admin, err := uc.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if request.Name != "" {
		admin.Name = request.Name
	}
	if request.Role != "" {
		admin.Role = request.Role
	}
	if err := uc.AdminRepository.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (uc *adminUsecase) Delete(ctx context.Context, adminID string) error {
	return uc.AdminRepository.DeleteByID(ctx, adminID)
}
