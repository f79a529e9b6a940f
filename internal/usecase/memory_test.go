package usecase

import (
	"context"
	"strconv"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/internal/data/repository"
	"swiftcard/pkg/apperr"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They enforce the same
// uniqueness constraints the database does so the duplicate-translation
// paths can be exercised without Postgres.

type memoryUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return apperr.Duplicate("email", user.Email)
		}
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *memoryUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return apperr.NotFound("User not found.")
	}
	for _, other := range m.users {
		if other.ID != user.ID && other.Email == user.Email {
			return apperr.Duplicate("email", user.Email)
		}
	}
	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Email = user.Email
	stored.Address = user.Address
	stored.Image = user.Image
	return nil
}

func (m *memoryUserRepo) SetBusiness(ctx context.Context, id uuid.UUID, isBusiness bool) error {
	stored, ok := m.users[id]
	if !ok {
		return apperr.NotFound("User not found.")
	}
	stored.IsBusiness = isBusiness
	return nil
}

func (m *memoryUserRepo) UpdateLoginState(ctx context.Context, id uuid.UUID, attempts int, lockUntil *time.Time) error {
	stored, ok := m.users[id]
	if !ok {
		return apperr.NotFound("User not found.")
	}
	stored.LoginAttempts = attempts
	stored.LockUntil = lockUntil
	return nil
}

func (m *memoryUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return apperr.NotFound("User not found.")
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUserRepo) DeleteAll(ctx context.Context) error {
	m.users = make(map[uuid.UUID]*entity.User)
	return nil
}

type memoryCardRepo struct {
	cards map[uuid.UUID]*entity.Card
}

func newMemoryCardRepo() *memoryCardRepo {
	return &memoryCardRepo{cards: make(map[uuid.UUID]*entity.Card)}
}

func copyCard(card *entity.Card) *entity.Card {
	copied := *card
	copied.Likes = append([]uuid.UUID(nil), card.Likes...)
	return &copied
}

func (m *memoryCardRepo) Create(ctx context.Context, card *entity.Card) error {
	for _, existing := range m.cards {
		if existing.Email == card.Email {
			return apperr.Duplicate("email", card.Email)
		}
		if existing.BizNumber == card.BizNumber {
			return apperr.Duplicate("bizNumber", strconv.FormatInt(card.BizNumber, 10))
		}
	}
	m.cards[card.ID] = copyCard(card)
	return nil
}

func (m *memoryCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	card, ok := m.cards[id]
	if !ok {
		return nil, nil
	}
	return copyCard(card), nil
}

func (m *memoryCardRepo) FindAll(ctx context.Context) ([]*entity.Card, error) {
	var cards []*entity.Card
	for _, card := range m.cards {
		cards = append(cards, copyCard(card))
	}
	return cards, nil
}

func (m *memoryCardRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	var cards []*entity.Card
	for _, card := range m.cards {
		if card.UserID == userID {
			cards = append(cards, copyCard(card))
		}
	}
	return cards, nil
}

func (m *memoryCardRepo) Update(ctx context.Context, card *entity.Card) error {
	stored, ok := m.cards[card.ID]
	if !ok {
		return apperr.NotFound("No card found.")
	}
	for _, other := range m.cards {
		if other.ID != card.ID && other.Email == card.Email {
			return apperr.Duplicate("email", card.Email)
		}
	}
	stored.Title = card.Title
	stored.Subtitle = card.Subtitle
	stored.Description = card.Description
	stored.Phone = card.Phone
	stored.Email = card.Email
	stored.Web = card.Web
	stored.Image = card.Image
	stored.Address = card.Address
	return nil
}

func (m *memoryCardRepo) SetBizNumber(ctx context.Context, id uuid.UUID, bizNumber int64) error {
	stored, ok := m.cards[id]
	if !ok {
		return apperr.NotFound("No card found.")
	}
	for _, other := range m.cards {
		if other.ID != id && other.BizNumber == bizNumber {
			return apperr.Duplicate("bizNumber", strconv.FormatInt(bizNumber, 10))
		}
	}
	stored.BizNumber = bizNumber
	return nil
}

func (m *memoryCardRepo) BizNumberExists(ctx context.Context, bizNumber int64) (bool, error) {
	for _, card := range m.cards {
		if card.BizNumber == bizNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryCardRepo) AddLike(ctx context.Context, cardID, userID uuid.UUID) error {
	stored, ok := m.cards[cardID]
	if !ok {
		return apperr.NotFound("No card found.")
	}
	if !stored.LikedBy(userID) {
		stored.Likes = append(stored.Likes, userID)
	}
	return nil
}

func (m *memoryCardRepo) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) error {
	stored, ok := m.cards[cardID]
	if !ok {
		return apperr.NotFound("No card found.")
	}
	likes := stored.Likes[:0]
	for _, id := range stored.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	stored.Likes = likes
	return nil
}

func (m *memoryCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.cards[id]; !ok {
		return apperr.NotFound("No card found.")
	}
	delete(m.cards, id)
	return nil
}

func (m *memoryCardRepo) DeleteAll(ctx context.Context) error {
	m.cards = make(map[uuid.UUID]*entity.Card)
	return nil
}

func newMemoryRepository() (*repository.Repository, *memoryUserRepo, *memoryCardRepo) {
	users := newMemoryUserRepo()
	cards := newMemoryCardRepo()
	return &repository.Repository{User: users, Card: cards}, users, cards
}
