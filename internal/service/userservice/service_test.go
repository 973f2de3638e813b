package userservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/token"
	"gestao/internal/service/userservice"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func newService(repo *MockUserRepository) *userservice.UserService {
	return userservice.NewService(repo, token.NewService("segredo-de-teste", time.Hour), logger.NewNop())
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo)

	var saved domain.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(domain.User{ID: "u-1", Email: "ana@loja.com", Role: domain.RoleUser}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{Email: " Ana@Loja.com ", Password: "senha-forte"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "ana@loja.com", saved.Email)
	assert.Equal(t, domain.RoleUser, saved.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("senha-forte")))
}

func TestRegister_Validation(t *testing.T) {
	cases := map[string]domain.UserRegistration{
		"vazio":       {},
		"email ruim":  {Email: "sem-arroba", Password: "12345678"},
		"senha curta": {Email: "a@b.com", Password: "123"},
	}

	for name, reg := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			svc := newService(mockRepo)

			_, err := svc.Register(context.Background(), reg)

			var validation *apperror.ValidationError
			assert.ErrorAs(t, err, &validation)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(domain.User{}, apperror.NewConflictError("E-mail 'a@b.com' já está cadastrado."))

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "a@b.com", Password: "12345678"})

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 409, status)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", mock.Anything, "ana@loja.com").
		Return(domain.User{ID: "u-1", Email: "ana@loja.com", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)

	tokenString, err := svc.Login(context.Background(), "ana@loja.com", "senha-forte")

	require.NoError(t, err)
	claims, err := token.NewService("segredo-de-teste", time.Hour).ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_UnknownEmailAndWrongPasswordAreUnauthorized(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", mock.Anything, "ana@loja.com").
		Return(domain.User{ID: "u-1", PasswordHash: string(hash)}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "ninguem@loja.com").
		Return(domain.User{}, apperror.NewNotFoundError("Usuário não encontrado"))

	var unauthorized *apperror.UnauthorizedError

	_, err = svc.Login(context.Background(), "ana@loja.com", "errada")
	assert.ErrorAs(t, err, &unauthorized)

	_, err = svc.Login(context.Background(), "ninguem@loja.com", "qualquer")
	assert.ErrorAs(t, err, &unauthorized)
}
