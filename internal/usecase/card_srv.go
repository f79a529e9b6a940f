package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/internal/data/repository"
	"swiftcard/internal/dto/request"
	"swiftcard/internal/dto/response"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CardService interface {
	Create(ctx context.Context, identity utils.Identity, req *request.CardRequest) (*response.CardResponse, error)
	GetAll(ctx context.Context) ([]response.CardResponse, error)
	GetMine(ctx context.Context, identity utils.Identity) ([]response.CardResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.CardResponse, error)
	Update(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.CardRequest) (*response.CardResponse, error)
	ToggleLike(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.CardResponse, error)
	Delete(ctx context.Context, identity utils.Identity, id uuid.UUID) error
	SetBizNumber(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.BizNumberRequest) (*response.CardResponse, error)
}

type cardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCardService(repo *repository.Repository, log *zap.Logger) CardService {
	return &cardService{
		repo: repo,
		log:  log.With(zap.String("service", "card")),
		now:  time.Now,
	}
}

// generateBizNumber draws random numbers until one is collision-free.
// The loop is deliberately unbounded; at this range the collision
// probability is negligible. A concurrent creation racing the same draw
// loses at the unique constraint on insert and surfaces as a duplicate.
func (s *cardService) generateBizNumber(ctx context.Context) (int64, error) {
	for {
		number := entity.BizNumberMin + rand.Int64N(entity.BizNumberMax-entity.BizNumberMin+1)

		exists, err := s.repo.Card.BizNumberExists(ctx, number)
		if err != nil {
			return 0, err
		}
		if !exists {
			return number, nil
		}
	}
}

func (s *cardService) Create(ctx context.Context, identity utils.Identity, req *request.CardRequest) (*response.CardResponse, error) {
	// 1. Input validation
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("Create card validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	// 2. Business accounts only
	if !canCreateCard(identity) {
		s.log.Warn("Card creation denied, not a business account",
			zap.String("identity", identity.ID.String()))
		return nil, apperr.AccessDenied()
	}

	bizNumber, err := s.generateBizNumber(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	card := &entity.Card{
		ID:          uuid.New(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Web:         req.Web,
		Image:       buildImage(req.Image, entity.DefaultCardImageURL, entity.DefaultCardImageAlt),
		Address:     buildAddress(req.Address),
		BizNumber:   bizNumber,
		UserID:      identity.ID,
		Likes:       []uuid.UUID{},
		CreatedAt:   s.now(),
	}

	if err := s.repo.Card.Create(ctx, card); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("Card created",
		zap.String("card_id", card.ID.String()),
		zap.String("user_id", identity.ID.String()),
		zap.Int64("biz_number", card.BizNumber))

	resp := response.CardToResponse(card)
	return &resp, nil
}

func (s *cardService) GetAll(ctx context.Context) ([]response.CardResponse, error) {
	cards, err := s.repo.Card.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(cards) == 0 {
		return nil, apperr.NotFound("No card found.")
	}

	return response.CardsToResponse(cards), nil
}

func (s *cardService) GetMine(ctx context.Context, identity utils.Identity) ([]response.CardResponse, error) {
	cards, err := s.repo.Card.FindByOwner(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(cards) == 0 {
		return nil, apperr.NotFound("No card found.")
	}

	return response.CardsToResponse(cards), nil
}

func (s *cardService) GetByID(ctx context.Context, id uuid.UUID) (*response.CardResponse, error) {
	card, err := s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if card == nil {
		return nil, apperr.NotFound("No card found.")
	}

	resp := response.CardToResponse(card)
	return &resp, nil
}

func (s *cardService) Update(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.CardRequest) (*response.CardResponse, error) {
	// 1. Input validation
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("Update card validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	card, err := s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if card == nil {
		return nil, apperr.NotFound("No card found.")
	}

	// 2. Owner-only
	if !canModifyCard(identity, card) {
		s.log.Warn("Card update denied",
			zap.String("identity", identity.ID.String()),
			zap.String("card_id", id.String()))
		return nil, apperr.AccessDenied()
	}

	card.Title = req.Title
	card.Subtitle = req.Subtitle
	card.Description = req.Description
	card.Phone = req.Phone
	card.Email = req.Email
	card.Web = req.Web
	if req.Image != nil {
		card.Image = buildImage(req.Image, card.Image.URL, card.Image.Alt)
	}
	card.Address = buildAddress(req.Address)

	if err := s.repo.Card.Update(ctx, card); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("Card updated", zap.String("card_id", card.ID.String()))

	resp := response.CardToResponse(card)
	return &resp, nil
}

// ToggleLike flips the identity's membership in the card's likes set
func (s *cardService) ToggleLike(ctx context.Context, identity utils.Identity, id uuid.UUID) (*response.CardResponse, error) {
	card, err := s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if card == nil {
		return nil, apperr.NotFound("No card found.")
	}

	if card.LikedBy(identity.ID) {
		if err := s.repo.Card.RemoveLike(ctx, card.ID, identity.ID); err != nil {
			return nil, apperr.Internal(err)
		}
		s.log.Info("Like removed",
			zap.String("card_id", card.ID.String()),
			zap.String("user_id", identity.ID.String()))
	} else {
		if err := s.repo.Card.AddLike(ctx, card.ID, identity.ID); err != nil {
			return nil, apperr.Internal(err)
		}
		s.log.Info("Like added",
			zap.String("card_id", card.ID.String()),
			zap.String("user_id", identity.ID.String()))
	}

	// Re-read so the response reflects the toggled set
	card, err = s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if card == nil {
		return nil, apperr.NotFound("No card found.")
	}

	resp := response.CardToResponse(card)
	return &resp, nil
}

func (s *cardService) Delete(ctx context.Context, identity utils.Identity, id uuid.UUID) error {
	card, err := s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if card == nil {
		return apperr.NotFound("No card found.")
	}

	// Owner-only
	if !canModifyCard(identity, card) {
		s.log.Warn("Card delete denied",
			zap.String("identity", identity.ID.String()),
			zap.String("card_id", id.String()))
		return apperr.AccessDenied()
	}

	if err := s.repo.Card.Delete(ctx, id); err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Internal(err)
	}

	return nil
}

// SetBizNumber is the privileged admin override path; the replacement
// number is re-validated and must not collide with another card's.
func (s *cardService) SetBizNumber(ctx context.Context, identity utils.Identity, id uuid.UUID, req *request.BizNumberRequest) (*response.CardResponse, error) {
	// 1. Input validation
	if msg := utils.Validate(req); msg != "" {
		s.log.Warn("bizNumber validation failed", zap.String("error", msg))
		return nil, apperr.Validation(msg)
	}

	// 2. Admin-only
	if !canOverrideBizNumber(identity) {
		s.log.Warn("bizNumber override denied", zap.String("identity", identity.ID.String()))
		return nil, apperr.AccessDenied()
	}

	card, err := s.repo.Card.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if card == nil {
		return nil, apperr.NotFound("No card found.")
	}

	if err := s.repo.Card.SetBizNumber(ctx, card.ID, req.BizNumber); err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	card.BizNumber = req.BizNumber

	s.log.Info("bizNumber changed",
		zap.String("card_id", card.ID.String()),
		zap.Int64("biz_number", card.BizNumber))

	resp := response.CardToResponse(card)
	return &resp, nil
}
