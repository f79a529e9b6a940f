package usecase

import (
	"context"
	"strings"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/internal/data/repository"
	"swiftcard/internal/dto/request"
	"swiftcard/internal/dto/response"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/token"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Lockout thresholds: the third consecutive wrong password locks the
// account for the cooldown window.
const (
	maxLoginAttempts = 3
	lockoutDuration  = 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens token.Service
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(repo *repository.Repository, tokens token.Service, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Input validation
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("Register validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	// Emails are stored lowercase so casing cannot split one address
	// into two accounts
	email := strings.ToLower(req.Email)

	// 2. Reject already-registered email before touching any state
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("email", email)
	}

	// 3. Hash password
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         buildName(req.Name),
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: hash,
		Address:      buildAddress(req.Address),
		Image:        buildImage(req.Image, entity.DefaultUserImageURL, entity.DefaultUserImageAlt),
		IsBusiness:   *req.IsBusiness,
		CreatedAt:    s.now(),
	}

	// 4. Persist; a concurrent registration with the same email loses at
	// the unique constraint and surfaces as a duplicate error
	if err := s.repo.User.Create(ctx, user); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.RegisterToResponse(user)
	return &resp, nil
}

// Login runs the lockout state machine: three consecutive wrong passwords
// lock the account for 24 hours; an elapsed lock self-heals on the next
// attempt; a correct password resets the counters and issues a token.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Input validation
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("Login validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	// 2. Find the account; the lookup uses the stored lowercase form
	email := strings.ToLower(req.Email)
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		s.log.Warn("Login denied, invalid email", zap.String("email", email))
		return nil, apperr.InvalidCredentials("Invalid email.")
	}

	now := s.now()

	// 3. Lockout check
	if user.LockUntil != nil {
		if user.IsLocked(now) {
			s.log.Warn("Login attempt on locked account",
				zap.String("user_id", user.ID.String()),
				zap.Time("lock_until", *user.LockUntil))
			return nil, apperr.AccountLocked()
		}
		// Cooldown elapsed: clear the lock and evaluate fresh
		user.LoginAttempts = 0
		user.LockUntil = nil
		if err := s.repo.User.UpdateLoginState(ctx, user.ID, 0, nil); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	// 4. Password check
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		user.LoginAttempts++

		var lockUntil *time.Time
		if user.LoginAttempts >= maxLoginAttempts {
			until := now.Add(lockoutDuration)
			lockUntil = &until
			s.log.Warn("Account locked after repeated failures",
				zap.String("user_id", user.ID.String()),
				zap.Time("lock_until", until))
		}

		if err := s.repo.User.UpdateLoginState(ctx, user.ID, user.LoginAttempts, lockUntil); err != nil {
			return nil, apperr.Internal(err)
		}

		s.log.Warn("Login denied, invalid password",
			zap.String("user_id", user.ID.String()),
			zap.Int("attempts", user.LoginAttempts))
		return nil, apperr.InvalidCredentials("Invalid password")
	}

	// 5. Success: reset counters and issue the identity token
	if user.LoginAttempts != 0 || user.LockUntil != nil {
		if err := s.repo.User.UpdateLoginState(ctx, user.ID, 0, nil); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	signed, err := s.tokens.Generate(user.ID, user.IsBusiness, user.IsAdmin)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal(err)
	}

	s.log.Info("User logged in, token provided", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{Token: signed}, nil
}
