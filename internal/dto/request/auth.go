package request

// RegisterRequest is the full user payload. isAdmin and the lockout fields
// are never client-writable.
type RegisterRequest struct {
	Name       NameRequest    `json:"name" validate:"required"`
	Phone      string         `json:"phone" validate:"required,len=10,number,startswith=0"`
	Email      string         `json:"email" validate:"required,email,min=6,max=255"`
	Password   string         `json:"password" validate:"required,min=8,max=1024"`
	Address    AddressRequest `json:"address" validate:"required"`
	Image      *ImageRequest  `json:"image,omitempty"`
	IsBusiness *bool          `json:"isBusiness" validate:"required"`
}

// LoginRequest is the narrowed sign-in contract: email and password only
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,min=6,max=255"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}
