package usecase

import (
	"context"
	"testing"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/internal/data/repository"
	"swiftcard/internal/dto/request"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func boolPtr(b bool) *bool { return &b }

func validRegisterRequest(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name: request.NameRequest{
			First: "business",
			Last:  "user",
		},
		Phone:      "0512345567",
		Email:      email,
		Password:   "Abc!123Abc",
		Address:    validAddressRequest(),
		IsBusiness: boolPtr(true),
	}
}

func validAddressRequest() request.AddressRequest {
	return request.AddressRequest{
		Country:     "Israel",
		City:        "Arad",
		Street:      "Shoham",
		HouseNumber: 5,
		Zip:         8920435,
	}
}

// newAuthFixture builds an auth service over the in-memory repos with a
// controllable clock.
func newAuthFixture(t *testing.T) (*authService, *repository.Repository, token.Service, *time.Time) {
	t.Helper()

	repo, _, _ := newMemoryRepository()
	tokens := token.New("test-secret", time.Hour)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewAuthService(repo, tokens, zap.NewNop()).(*authService)
	svc.now = func() time.Time { return now }

	return svc, repo, tokens, &now
}

// seedAccount creates a user directly in the repo with a cheap hash so the
// login tests stay fast.
func seedAccount(t *testing.T, repo *repository.Repository, email, password string, isBusiness, isAdmin bool) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Name:         entity.Name{First: "test", Last: "user"},
		Phone:        "0512345567",
		Email:        email,
		PasswordHash: string(hash),
		Address: entity.Address{
			State: entity.StateNotDefined, Country: "Israel", City: "Arad",
			Street: "Shoham", HouseNumber: 5, Zip: 8920435,
		},
		Image:      entity.Image{URL: entity.DefaultUserImageURL, Alt: entity.DefaultUserImageAlt},
		IsBusiness: isBusiness,
		IsAdmin:    isAdmin,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func TestRegisterStripsSensitiveFields(t *testing.T) {
	svc, repo, _, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegisterRequest("biz@example.com"))
	require.NoError(t, err)
	require.Equal(t, "biz@example.com", resp.Email)
	require.Equal(t, "business", resp.Name.First)
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.CreatedAt.IsZero())

	// Stored record carries a hash, never the plaintext
	stored, err := repo.User.FindByEmail(ctx, "biz@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "Abc!123Abc", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Abc!123Abc")))

	// Defaults applied
	require.Equal(t, entity.StateNotDefined, stored.Address.State)
	require.Equal(t, entity.DefaultUserImageURL, stored.Image.URL)
	require.Equal(t, entity.DefaultUserImageAlt, stored.Image.Alt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegisterRequest("dup@example.com"))
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindDuplicate, appErr.Kind)
	require.Equal(t, "email", appErr.Field)
	require.Equal(t, "dup@example.com", appErr.Value)
}

func TestRegisterNormalizesEmailCase(t *testing.T) {
	svc, repo, _, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegisterRequest("Biz@Example.com"))
	require.NoError(t, err)
	require.Equal(t, "biz@example.com", resp.Email)

	stored, err := repo.User.FindByEmail(ctx, "biz@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The same address in different casing is the same account
	_, err = svc.Register(ctx, validRegisterRequest("BIZ@EXAMPLE.COM"))
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindDuplicate, appErr.Kind)
	require.Equal(t, "email", appErr.Field)
	require.Equal(t, "biz@example.com", appErr.Value)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*request.RegisterRequest)
	}{
		{"short first name", func(r *request.RegisterRequest) { r.Name.First = "a" }},
		{"phone not starting with 0", func(r *request.RegisterRequest) { r.Phone = "1512345567" }},
		{"phone too short", func(r *request.RegisterRequest) { r.Phone = "051234" }},
		{"bad email", func(r *request.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *request.RegisterRequest) { r.Password = "short" }},
		{"missing country", func(r *request.RegisterRequest) { r.Address.Country = "" }},
		{"house number zero", func(r *request.RegisterRequest) { r.Address.HouseNumber = 0 }},
		{"missing isBusiness", func(r *request.RegisterRequest) { r.IsBusiness = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest("valid@example.com")
			tt.mutate(req)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	svc, repo, tokens, _ := newAuthFixture(t)
	ctx := context.Background()

	user := seedAccount(t, repo, "biz@example.com", "Abc!123Abc", true, false)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "biz@example.com", Password: "Abc!123Abc"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.UserID)
	require.True(t, claims.IsBusiness)
	require.False(t, claims.IsAdmin)
}

func TestLoginAcceptsMixedCaseEmail(t *testing.T) {
	svc, repo, tokens, _ := newAuthFixture(t)

	user := seedAccount(t, repo, "biz@example.com", "Abc!123Abc", true, false)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "Biz@Example.com", Password: "Abc!123Abc",
	})
	require.NoError(t, err)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "nobody@example.com", Password: "Abc!123Abc",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
}

func TestLoginTwoFailuresThenSuccessResetsAttempts(t *testing.T) {
	svc, repo, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user := seedAccount(t, repo, "user@example.com", "Abc!123Abc", false, false)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Wrong!123"})
		require.Error(t, err)
		require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
	}

	stored, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.LoginAttempts)
	require.Nil(t, stored.LockUntil)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Abc!123Abc"})
	require.NoError(t, err)

	stored, err = repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.LoginAttempts)
	require.Nil(t, stored.LockUntil)
}

func TestLoginThreeFailuresLocksAccount(t *testing.T) {
	svc, repo, _, now := newAuthFixture(t)
	ctx := context.Background()

	user := seedAccount(t, repo, "locked@example.com", "Abc!123Abc", false, false)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Wrong!123"})
		require.Error(t, err)
		require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
	}

	stored, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.LoginAttempts)
	require.NotNil(t, stored.LockUntil)
	require.Equal(t, now.Add(24*time.Hour), *stored.LockUntil)

	// Correct password while locked still fails with AccountLocked
	_, err = svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Abc!123Abc"})
	require.Error(t, err)
	require.Equal(t, apperr.KindAccountLocked, apperr.KindOf(err))
}

func TestLoginLockExpiresAfterCooldown(t *testing.T) {
	svc, repo, _, now := newAuthFixture(t)
	ctx := context.Background()

	user := seedAccount(t, repo, "healed@example.com", "Abc!123Abc", false, false)

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Wrong!123"})
	}

	// Just before the cooldown ends the account is still locked
	*now = now.Add(24*time.Hour - time.Minute)
	_, err := svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Abc!123Abc"})
	require.Error(t, err)
	require.Equal(t, apperr.KindAccountLocked, apperr.KindOf(err))

	// After the cooldown the attempt is evaluated fresh
	*now = now.Add(2 * time.Minute)
	_, err = svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Abc!123Abc"})
	require.NoError(t, err)

	stored, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.LoginAttempts)
	require.Nil(t, stored.LockUntil)
}

func TestLoginExpiredLockWrongPasswordStartsFresh(t *testing.T) {
	svc, repo, _, now := newAuthFixture(t)
	ctx := context.Background()

	user := seedAccount(t, repo, "fresh@example.com", "Abc!123Abc", false, false)

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Wrong!123"})
	}

	*now = now.Add(25 * time.Hour)
	_, err := svc.Login(ctx, &request.LoginRequest{Email: user.Email, Password: "Wrong!123"})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))

	// The stale lock was cleared; the counter restarted at 1
	stored, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.LoginAttempts)
	require.Nil(t, stored.LockUntil)
}
