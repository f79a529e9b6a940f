package response

import (
	"time"

	"swiftcard/internal/data/entity"
)

type CardResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Web         string          `json:"web,omitempty"`
	Image       ImageResponse   `json:"image"`
	Address     AddressResponse `json:"address"`
	BizNumber   int64           `json:"bizNumber"`
	UserID      string          `json:"user_id"`
	Likes       []string        `json:"likes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func CardToResponse(card *entity.Card) CardResponse {
	likes := make([]string, 0, len(card.Likes))
	for _, id := range card.Likes {
		likes = append(likes, id.String())
	}

	return CardResponse{
		ID:          card.ID.String(),
		Title:       card.Title,
		Subtitle:    card.Subtitle,
		Description: card.Description,
		Phone:       card.Phone,
		Email:       card.Email,
		Web:         card.Web,
		Image: ImageResponse{
			URL: card.Image.URL,
			Alt: card.Image.Alt,
		},
		Address: AddressResponse{
			State:       card.Address.State,
			Country:     card.Address.Country,
			City:        card.Address.City,
			Street:      card.Address.Street,
			HouseNumber: card.Address.HouseNumber,
			Zip:         card.Address.Zip,
		},
		BizNumber: card.BizNumber,
		UserID:    card.UserID.String(),
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

func CardsToResponse(cards []*entity.Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, CardToResponse(card))
	}
	return responses
}
