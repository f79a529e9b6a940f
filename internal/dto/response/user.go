package response

import (
	"time"

	"swiftcard/internal/data/entity"
)

type NameResponse struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

type AddressResponse struct {
	State       string `json:"state"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	Zip         int    `json:"zip"`
}

type ImageResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// UserResponse is the outward user shape; password and lockout fields are
// never serialized.
type UserResponse struct {
	ID         string          `json:"id"`
	Name       NameResponse    `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Address    AddressResponse `json:"address"`
	Image      ImageResponse   `json:"image"`
	IsBusiness bool            `json:"isBusiness"`
	IsAdmin    bool            `json:"isAdmin"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RegisterResponse is the trimmed shape returned on registration
type RegisterResponse struct {
	Name      NameResponse `json:"name"`
	Email     string       `json:"email"`
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID: user.ID.String(),
		Name: NameResponse{
			First:  user.Name.First,
			Middle: user.Name.Middle,
			Last:   user.Name.Last,
		},
		Phone: user.Phone,
		Email: user.Email,
		Address: AddressResponse{
			State:       user.Address.State,
			Country:     user.Address.Country,
			City:        user.Address.City,
			Street:      user.Address.Street,
			HouseNumber: user.Address.HouseNumber,
			Zip:         user.Address.Zip,
		},
		Image: ImageResponse{
			URL: user.Image.URL,
			Alt: user.Image.Alt,
		},
		IsBusiness: user.IsBusiness,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
	}
}

func RegisterToResponse(user *entity.User) RegisterResponse {
	return RegisterResponse{
		Name: NameResponse{
			First:  user.Name.First,
			Middle: user.Name.Middle,
			Last:   user.Name.Last,
		},
		Email:     user.Email,
		ID:        user.ID.String(),
		CreatedAt: user.CreatedAt,
	}
}
