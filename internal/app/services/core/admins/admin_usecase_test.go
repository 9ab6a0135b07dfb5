package admins

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/jwtmanager"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAdminRepository struct {
	contracts.AdminRepository
	byEmail map[string]*models.Admin
	created []*models.Admin
}

func (f *fakeAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	f.created = append(f.created, admin)
	return "64b000000000000000000a01", nil
}

func newAdminUsecaseUnderTest() (*adminUsecase, *fakeAdminRepository) {
	repo := &fakeAdminRepository{byEmail: map[string]*models.Admin{}}
	jwtManager := jwtmanager.NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	})
	return &adminUsecase{AdminRepository: repo, JWTManager: jwtManager, Log: zap.NewNop()}, repo
}

func TestCreateAdmin_HashesPassword(t *testing.T) {
	uc, repo := newAdminUsecaseUnderTest()

	admin, err := uc.Create(context.Background(), &requests.CreateAdmin{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
		Role:     "superadmin",
	})

	assert.NoError(t, err)
	assert.Equal(t, "64b000000000000000000a01", admin.ID)
	assert.NotEqual(t, "s3cret-pass", admin.Password)
	assert.NoError(t, utils.ComparePassword(admin.Password, "s3cret-pass"))
	assert.Len(t, repo.created, 1)
}

func TestCreateAdmin_RejectsDuplicateEmail(t *testing.T) {
	uc, repo := newAdminUsecaseUnderTest()
	repo.byEmail["priya@example.com"] = &models.Admin{ID: "existing", Email: "priya@example.com"}

	admin, err := uc.Create(context.Background(), &requests.CreateAdmin{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})

	assert.Nil(t, admin)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Empty(t, repo.created)
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	uc, repo := newAdminUsecaseUnderTest()
	hashed, err := utils.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	repo.byEmail["priya@example.com"] = &models.Admin{
		ID:       "64b000000000000000000a01",
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: hashed,
		Role:     "superadmin",
	}

	login, err := uc.Login(context.Background(), &requests.AdminLogin{
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Priya", login.Name)
	assert.Equal(t, "superadmin", login.Role)

	adminID, err := uc.JWTManager.Parse(login.Token)
	assert.NoError(t, err)
	assert.Equal(t, "64b000000000000000000a01", adminID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, repo := newAdminUsecaseUnderTest()
	hashed, _ := utils.HashPassword("s3cret-pass")
	repo.byEmail["priya@example.com"] = &models.Admin{Email: "priya@example.com", Password: hashed}

	login, err := uc.Login(context.Background(), &requests.AdminLogin{
		Email:    "priya@example.com",
		Password: "wrong",
	})

	assert.Nil(t, login)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAdminUsecaseUnderTest()

	login, err := uc.Login(context.Background(), &requests.AdminLogin{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, login)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}
