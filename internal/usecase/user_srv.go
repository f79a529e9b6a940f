package usecase

import (
	"context"
	"strings"

	"swiftcard/internal/data/repository"
	"swiftcard/internal/dto/request"
	"swiftcard/internal/dto/response"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetByID(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.UserResponse, error)
	List(ctx context.Context, identity utils.Identity) ([]response.UserResponse, error)
	UpdateProfile(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ToggleBusiness(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.UserResponse, error)
	Delete(ctx context.Context, identity utils.Identity, id uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetByID(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.UserResponse, error) {
	if !canViewUser(identity, id) {
		s.log.Warn("User read denied",
			zap.String("identity", identity.ID.String()),
			zap.String("requested", id.String()))
		return nil, apperr.AccessDenied()
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found.")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, identity utils.Identity) ([]response.UserResponse, error) {
	if !canListUsers(identity) {
		s.log.Warn("User listing denied", zap.String("identity", identity.ID.String()))
		return nil, apperr.AccessDenied()
	}

	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("No user found.")
	}

	responses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.UserToResponse(user))
	}
	return responses, nil
}

func (s *userService) UpdateProfile(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	// 1. Input validation before any state change
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("Profile update validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	// 2. Self-only
	if !canEditUser(identity, id) {
		s.log.Warn("Profile update denied",
			zap.String("identity", identity.ID.String()),
			zap.String("requested", id.String()))
		return nil, apperr.AccessDenied()
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found.")
	}

	// 3. Re-validate email uniqueness when the email is changing;
	// comparison and storage both use the lowercase form
	email := strings.ToLower(req.Email)
	if email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, email)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperr.Duplicate("email", email)
		}
	}

	user.Name = buildName(req.Name)
	user.Phone = req.Phone
	user.Email = email
	user.Address = buildAddress(req.Address)
	if req.Image != nil {
		user.Image = buildImage(req.Image, user.Image.URL, user.Image.Alt)
	}

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("User profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ToggleBusiness flips the isBusiness flag; owner-only
func (s *userService) ToggleBusiness(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.UserResponse, error) {
	if !canEditUser(identity, id) {
		s.log.Warn("Business toggle denied",
			zap.String("identity", identity.ID.String()),
			zap.String("requested", id.String()))
		return nil, apperr.AccessDenied()
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found.")
	}

	user.IsBusiness = !user.IsBusiness
	if err := s.repo.User.SetBusiness(ctx, user.ID, user.IsBusiness); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("Business flag toggled",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_business", user.IsBusiness))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, identity utils.Identity, id uuid.UUID) error {
	if !canDeleteUser(identity, id) {
		s.log.Warn("User delete denied",
			zap.String("identity", identity.ID.String()),
			zap.String("requested", id.String()))
		return apperr.AccessDenied()
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Internal(err)
	}

	return nil
}
