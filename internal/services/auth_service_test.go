package services_test

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/pkg/apperror"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Successful registration returns the user and a verifiable token
	mockRepo.On("GetByEmail", "alice@example.com").Return(nil, apperror.NotFound("user with email alice@example.com not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, token, err := authService.Register("Alice Doe", "alice@example.com", "password123")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Alice Doe", user.FullName)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)
	// Password must be stored hashed, not verbatim
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.User.Email)

	// Duplicate email yields a conflict and no second Create call
	mockRepo.On("GetByEmail", "alice@example.com").Return(&models.User{ID: "1", Email: "alice@example.com"}, nil).Once()
	_, _, err = authService.Register("Alice Doe", "alice@example.com", "password123")
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusConflict))
	mockRepo.AssertExpectations(t)

	// Empty fields are rejected before any lookup
	_, _, err = authService.Register("", "alice@example.com", "password123")
	assert.True(t, apperror.IsCode(err, http.StatusBadRequest))
	_, _, err = authService.Register("Alice Doe", "", "password123")
	assert.True(t, apperror.IsCode(err, http.StatusBadRequest))
	_, _, err = authService.Register("Alice Doe", "alice@example.com", "")
	assert.True(t, apperror.IsCode(err, http.StatusBadRequest))
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		FullName: "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Successful login returns a token that decodes to the same identity
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	loggedIn, token, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Email, claims.User.Email)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, token, err = authService.Login("test@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusBadRequest))
	assert.Empty(t, token)
	mockRepo.AssertExpectations(t)

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperror.NotFound("user with email nobody@example.com not found")).Once()
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusNotFound))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Valid token
	validToken, err := authService.GenerateToken(&models.User{ID: "user-123", Email: "test@example.com"})
	assert.NoError(t, err)
	claims, err := authService.ValidateToken(validToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.User.ID)

	// Malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusUnauthorized))

	// Token signed with a different key
	otherService := services.NewAuthService(mockRepo, "other_secret")
	foreignToken, err := otherService.GenerateToken(&models.User{ID: "user-123"})
	assert.NoError(t, err)
	_, err = authService.ValidateToken(foreignToken)
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusUnauthorized))

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.TokenClaims{
		User: models.User{ID: "user-123"},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	expiredString, signErr := expired.SignedString([]byte(testJWTSecret))
	assert.NoError(t, signErr)
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
	assert.True(t, apperror.IsCode(err, http.StatusUnauthorized))
}

func TestAuthService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{ID: "user-123", FullName: "Test User", Email: "test@example.com"}
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()

	got, err := authService.GetUser("user-123")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("user with ID missing not found")).Once()
	_, err = authService.GetUser("missing")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
