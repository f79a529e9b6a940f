package request

// CardRequest is the card content contract, used for both create and update.
// bizNumber and ownership are assigned server-side and never read from it.
type CardRequest struct {
	Title       string         `json:"title" validate:"required,min=2,max=256"`
	Subtitle    string         `json:"subtitle" validate:"required,min=2,max=256"`
	Description string         `json:"description" validate:"required,min=2,max=1024"`
	Phone       string         `json:"phone" validate:"required,len=10,number,startswith=0"`
	Email       string         `json:"email" validate:"required,email,min=6,max=255"`
	Web         string         `json:"web,omitempty" validate:"omitempty,http_url,min=14,max=1024"`
	Image       *ImageRequest  `json:"image,omitempty"`
	Address     AddressRequest `json:"address" validate:"required"`
}

// BizNumberRequest is the admin-only override contract
type BizNumberRequest struct {
	BizNumber int64 `json:"bizNumber" validate:"required,min=100,max=999999999"`
}
