package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/pkg/apperror"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when the username is unknown so a failed
// login costs the same as a wrong password.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("jobtrack-unknown-user"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// AuthService handles registration, login and session tokens.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterUser hashes the password and stores a new user.
func (s *AuthService) RegisterUser(username, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, apperror.BadRequest("User already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperror.Storage(err)
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperror.BadRequest("User already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperror.Storage(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent signup for the same name or email.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperror.BadRequest("User already exists")
		}
		return nil, apperror.Storage(fmt.Errorf("failed to register user: %w", err))
	}
	log.Printf("Registered user %s", user.Username)
	return user, nil
}

// LoginUser verifies the password and returns a signed token with the user.
func (s *AuthService) LoginUser(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", nil, apperror.Storage(err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	tokenString, err := s.issueToken(user)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return tokenString, user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its claims.
// Tokens without an expiry or without a username are rejected.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
		return nil, fmt.Errorf("invalid token: missing or past expiry")
	}
	if username, _ := claims["username"].(string); username == "" {
		return nil, fmt.Errorf("invalid token: missing username")
	}
	return claims, nil
}

// GetUser returns the account for username.
func (s *AuthService) GetUser(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Storage(err)
	}
	return user, nil
}

// VerifyPassword re-checks the password of an already authenticated user.
func (s *AuthService) VerifyPassword(username, password string) error {
	user, err := s.GetUser(username)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return apperror.Unauthorized("Incorrect password")
	}
	return nil
}
