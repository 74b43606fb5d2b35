package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/dto/response"
	"hotel-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	RegisterUser(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
	SetSecurityQuestion(ctx context.Context, userID string, req *request.SetSecurityQuestionRequest) error
	GetSecurityQuestion(ctx context.Context, username string) (*response.SecurityQuestionResponse, error)
	RequestRecoveryToken(ctx context.Context, req *request.RequestRecoveryTokenRequest) (*response.RecoveryTokenResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo     *repository.Repository
	activity ActivityService
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, activity ActivityService, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		activity: activity,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour)
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: expiresAt,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.repo.User.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn("Failed to record last login",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	s.activity.Record(ctx, &user.ID, "user.login", "user", &user.ID, req.Username)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     session.Token.String(),
		ExpiresAt: &expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: missing session token", ErrValidation)
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) RegisterUser(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role, ok := entity.ParseUserRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %s", ErrValidation, req.Role)
	}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %s already taken", ErrValidation, req.Username)
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s already registered", ErrValidation, req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.ChangePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	// A changed password invalidates every open session of the account.
	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err),
			zap.String("user_id", userID),
		)
	}

	s.activity.Record(ctx, &id, "user.password_changed", "user", &id, user.Username)
	s.log.Info("Password changed", zap.String("user_id", userID))
	return nil
}

func (s *authService) SetSecurityQuestion(ctx context.Context, userID string, req *request.SetSecurityQuestionRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	answerHash, err := utils.HashPassword(utils.NormalizeSecurityAnswer(req.Answer))
	if err != nil {
		return fmt.Errorf("hash security answer: %w", err)
	}

	if err := s.repo.User.UpdateSecurityQuestion(ctx, id, req.Question, answerHash); err != nil {
		return fmt.Errorf("set security question: %w", err)
	}

	s.log.Info("Security question set", zap.String("user_id", userID))
	return nil
}

func (s *authService) GetSecurityQuestion(ctx context.Context, username string) (*response.SecurityQuestionResponse, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || user.SecurityQuestion == nil {
		return nil, fmt.Errorf("security question for %s: %w", username, ErrNotFound)
	}

	return &response.SecurityQuestionResponse{Question: *user.SecurityQuestion}, nil
}

func (s *authService) RequestRecoveryToken(ctx context.Context, req *request.RequestRecoveryTokenRequest) (*response.RecoveryTokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || user.SecurityAnswerHash == nil {
		return nil, ErrInvalidCredentials
	}

	normalized := utils.NormalizeSecurityAnswer(req.SecurityAnswer)
	if !utils.CheckPasswordHash(normalized, *user.SecurityAnswerHash) {
		s.log.Warn("Recovery answer mismatch", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token := utils.GenerateRecoveryToken()
	expires := time.Now().Add(time.Duration(s.config.Recovery.TokenExpiryHours) * time.Hour)

	if err := s.repo.User.SetRecoveryToken(ctx, user.ID, token, expires); err != nil {
		return nil, fmt.Errorf("store recovery token: %w", err)
	}

	s.activity.Record(ctx, &user.ID, "user.recovery_requested", "user", &user.ID, req.Username)
	s.log.Info("Recovery token issued", zap.String("user_id", user.ID.String()))

	return &response.RecoveryTokenResponse{Token: token, ExpiresAt: expires}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByValidRecoveryToken(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("find recovery token: %w", err)
	}
	if user == nil {
		return ErrInvalidToken
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.ChangePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err := s.repo.User.ClearRecoveryToken(ctx, user.ID); err != nil {
		s.log.Warn("Failed to clear recovery token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password reset",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	s.activity.Record(ctx, &user.ID, "user.password_reset", "user", &user.ID, user.Username)
	s.log.Info("Password reset via recovery token", zap.String("user_id", user.ID.String()))
	return nil
}
