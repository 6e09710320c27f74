package service

import (
	"errors"
	"staffeval/app_error"
	"staffeval/auth"
	"staffeval/config"
	"staffeval/repository"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         *repository.User
}

type AuthService struct {
	userRepository *repository.UserRepository
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		userRepository: repository.NewUserRepository(db),
		accessTTL:      time.Duration(config.Env().AccessTokenTTLMinutes) * time.Minute,
		refreshTTL:     time.Duration(config.Env().RefreshTokenTTLHours) * time.Hour,
	}
}

func (s *AuthService) Register(email string, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.userRepository.GetUserByEmail(email)
	if err == nil {
		return nil, app_error.New(app_error.KindConflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepository.SaveUser(&repository.User{
		Email:        email,
		PasswordHash: hash,
		Roles:        pq.StringArray{string(repository.RoleUser)},
	})
	if err != nil {
		return nil, err
	}
	return s.tokens(user)
}

func (s *AuthService) Login(email string, password string) (*TokenPair, error) {
	user, err := s.userRepository.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, app_error.ErrInvalidCredentials
	}
	return s.tokens(user)
}

// Refresh issues a new pair from a refresh token, picking up role and staff link changes.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil, app_error.Wrap(app_error.KindUnauthenticated, err, "Invalid refresh token")
	}
	user, err := s.userRepository.GetUserById(claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.New(app_error.KindUnauthenticated, "Invalid refresh token")
		}
		return nil, err
	}
	return s.tokens(user)
}

func (s *AuthService) tokens(user *repository.User) (*TokenPair, error) {
	access, err := auth.CreateToken(auth.AccessToken, user.ID, user.StaffID, user.Roles, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.CreateToken(auth.RefreshToken, user.ID, nil, nil, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
