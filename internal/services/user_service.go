package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"imovelBack/internal/models"
	"imovelBack/internal/repositories"
	"imovelBack/utils"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Tokens, error) {
	if _, err := s.UserRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return models.User{}, models.Tokens{}, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	role := models.RoleUser
	var brokerRole *string
	switch strings.ToUpper(req.Role) {
	case models.RoleBroker, "CORRETOR":
		role = models.RoleBroker
		br := models.BrokerRoleAgent
		if strings.ToUpper(req.BrokerRole) == models.BrokerRoleDirector {
			br = models.BrokerRoleDirector
		}
		brokerRole = &br
	case models.RoleAdmin:
		role = models.RoleAdmin
	}

	user := models.User{
		Email:           req.Email,
		Password:        string(hashed),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Role:            role,
		BrokerRole:      brokerRole,
		CRECI:           req.CRECI,
		YearsExperience: req.YearsExperience,
	}

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	tokens, err := s.issueTokens(ctx, created)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	return created, tokens, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	return user, tokens, nil
}

// Refresh rotates the stored refresh token and issues a new pair. Expired
// sessions are deleted on sight.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		_ = s.UserRepo.DeleteSession(ctx, refreshToken)
		return models.Tokens{}, models.ErrSessionNotFound
	}

	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return models.Tokens{}, err
	}

	if err := s.UserRepo.DeleteSession(ctx, refreshToken); err != nil {
		return models.Tokens{}, err
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes one refresh token, or all of the user's sessions when no
// token is supplied.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken != "" {
		return s.UserRepo.DeleteSessionForUser(ctx, refreshToken, userID)
	}
	return s.UserRepo.DeleteSessionsByUser(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (models.User, error) {
	return s.UserRepo.UpdateProfile(ctx, id, req)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every open session so stolen refresh tokens stop working.
func (s *UserService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.UserRepo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return err
	}
	return s.UserRepo.DeleteSessionsByUser(ctx, id)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	accessToken, err := s.TokenManager.NewJWT(user.ID, user.Email, user.Role, s.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		RefreshToken: refreshToken,
		UserID:       user.ID,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
