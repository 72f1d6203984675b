package services

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/pkg/apperror"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the access-token lifetime: 36000 minutes (600 hours).
const tokenDuration = 36000 * time.Minute

// TokenClaims is the JWT claim set. The full user record is embedded, matching
// the shape the frontend decodes; the password never leaves the server because
// it carries no json tag on the model.
type TokenClaims struct {
	User models.User `json:"user"`
	jwt.StandardClaims
}

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService. The signing key is fixed for the
// lifetime of the process.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new account and issues an access token for it.
// A duplicate email yields a conflict error and no second record.
func (s *AuthService) Register(fullName, email, password string) (*models.User, string, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, "", apperror.BadRequest("fullName, email and password are required")
	}

	// Check-then-insert; the unique index on email is the backstop for the
	// race window between concurrent registrations.
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, "", apperror.Conflict("User already exists")
	} else if err != nil && !apperror.IsCode(err, http.StatusNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and returns the user and a fresh token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperror.IsCode(err, http.StatusNotFound) {
			return nil, "", apperror.NotFound("User Not Found")
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.BadRequest("Invalid Credentials")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns the account for the given ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GenerateToken signs a JWT embedding the user, valid for tokenDuration.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		User: *user,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(tokenDuration).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
// Absent, malformed, tampered and expired tokens all fail.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	if !token.Valid {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	return claims, nil
}
