package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/internal/data/repository"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedPassword is the shared plaintext for all demo accounts
const seedPassword = "Abc!123Abc"

var seedAddress = entity.Address{
	State:       "IL",
	Country:     "Israel",
	City:        "Arad",
	Street:      "Shoham",
	HouseNumber: 5,
	Zip:         8920435,
}

// Run wipes the existing data and loads the initial demo accounts and
// cards: an admin, a business user and a regular user, plus a few cards
// owned by the business user.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	if err := repo.Card.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe cards: %w", err)
	}
	if err := repo.User.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe users: %w", err)
	}

	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()

	admin := seedUser("admin", "admin@email.com", hash, now)
	admin.IsAdmin = true

	business := seedUser("business", "business@email.com", hash, now)

	regular := seedUser("user", "user@email.com", hash, now)
	regular.IsBusiness = false

	for _, user := range []*entity.User{admin, business, regular} {
		if err := repo.User.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
		log.Info("Seed user created", zap.String("email", user.Email))
	}

	cards := []struct {
		title, subtitle, email string
	}{
		{"Swift Consulting", "Business strategy done right", "card1@email.com"},
		{"Arad Coffee Roasters", "Fresh beans, roasted daily", "card2@email.com"},
		{"Shoham Web Studio", "Websites for small businesses", "card3@email.com"},
	}

	for _, c := range cards {
		bizNumber, err := drawBizNumber(ctx, repo.Card)
		if err != nil {
			return fmt.Errorf("draw bizNumber: %w", err)
		}

		card := &entity.Card{
			ID:          uuid.New(),
			Title:       c.title,
			Subtitle:    c.subtitle,
			Description: "A demo business card created by the initial data loader.",
			Phone:       "0512345567",
			Email:       c.email,
			Image: entity.Image{
				URL: entity.DefaultCardImageURL,
				Alt: entity.DefaultCardImageAlt,
			},
			Address:   seedAddress,
			BizNumber: bizNumber,
			UserID:    business.ID,
			Likes:     []uuid.UUID{},
			CreatedAt: now,
		}

		if err := repo.Card.Create(ctx, card); err != nil {
			return fmt.Errorf("seed card %s: %w", c.title, err)
		}
		log.Info("Seed card created",
			zap.String("title", c.title),
			zap.Int64("biz_number", bizNumber))
	}

	return nil
}

func seedUser(first, email, hash string, now time.Time) *entity.User {
	return &entity.User{
		ID: uuid.New(),
		Name: entity.Name{
			First:  first,
			Middle: "Man",
			Last:   "user",
		},
		Phone:        "0512345567",
		Email:        email,
		PasswordHash: hash,
		Address:      seedAddress,
		Image: entity.Image{
			URL: entity.DefaultUserImageURL,
			Alt: entity.DefaultUserImageAlt,
		},
		IsBusiness: true,
		CreatedAt:  now,
	}
}

func drawBizNumber(ctx context.Context, cards repository.CardRepository) (int64, error) {
	for {
		number := entity.BizNumberMin + rand.Int64N(entity.BizNumberMax-entity.BizNumberMin+1)

		exists, err := cards.BizNumberExists(ctx, number)
		if err != nil {
			return 0, err
		}
		if !exists {
			return number, nil
		}
	}
}
