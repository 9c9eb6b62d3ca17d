// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/user"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/jwt"
	"fleetflow-service/internal/pkg/ratelimit"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService struct {
	userRepo    user.Repository
	jwtManager  *jwt.Manager
	rateLimiter *ratelimit.RateLimiter
	logger      *zap.Logger
}

func NewAuthService(
	userRepo user.Repository,
	jwtManager *jwt.Manager,
	rateLimiter *ratelimit.RateLimiter,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func validRole(r string) bool {
	for _, v := range user.ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}

// Register creates a new active account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if !validRole(req.Role) {
		return nil, xerrors.InvalidInputf("invalid role %q, must be one of: %s",
			req.Role, strings.Join(user.ValidRoles, ", "))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, xerrors.Conflictf("account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtManager.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return &user.AuthResponse{Token: token, User: u}, nil
}

// Login verifies credentials behind a per-IP-and-email rate limit of 5
// attempts per 15 minutes. Invalid email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, ip string, req *user.LoginRequest) (*user.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if s.rateLimiter != nil {
		allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, ip, email)
		if err != nil {
			s.logger.Warn("login rate limit check failed", zap.Error(err))
		} else if !allowed {
			return nil, xerrors.RateLimitedf("too many login attempts, try again later")
		}
	}

	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if xerrors.IsKind(err, xerrors.KindNotFound) {
			return nil, xerrors.Unauthorizedf("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.Unauthorizedf("invalid email or password")
	}

	if !u.IsActive {
		return nil, xerrors.Forbiddenf("account is deactivated")
	}

	token, err := s.jwtManager.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if s.rateLimiter != nil {
		if err := s.rateLimiter.ResetLoginAttempts(ctx, ip, email); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID))
	return &user.AuthResponse{Token: token, User: u}, nil
}

// Me returns the account for the authenticated user ID.
func (s *AuthService) Me(ctx context.Context, userID string) (*user.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
