package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by the identity token
type Claims struct {
	UserID     string `json:"_id"`
	IsBusiness bool   `json:"isBusiness"`
	IsAdmin    bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type Service interface {
	Generate(userID uuid.UUID, isBusiness, isAdmin bool) (string, error)
	Parse(tokenString string) (*Claims, error)
}

type service struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func New(secret string, expiry time.Duration) Service {
	return &service{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (s *service) Generate(userID uuid.UUID, isBusiness, isAdmin bool) (string, error) {
	now := s.now()

	claims := &Claims{
		UserID:     userID.String(),
		IsBusiness: isBusiness,
		IsAdmin:    isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractBearer pulls the credential out of an Authorization header value
func ExtractBearer(authHeader string) (string, error) {
	const bearerPrefix = "Bearer "

	if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("invalid authorization header format")
	}

	return authHeader[len(bearerPrefix):], nil
}
