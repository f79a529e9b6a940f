package request

// UpdateProfileRequest is the narrowed profile-update contract:
// name, address, image, email and phone only. Password, role flags and
// lockout state are excluded from user-writable update paths.
type UpdateProfileRequest struct {
	Name    NameRequest    `json:"name" validate:"required"`
	Phone   string         `json:"phone" validate:"required,len=10,number,startswith=0"`
	Email   string         `json:"email" validate:"required,email,min=6,max=255"`
	Address AddressRequest `json:"address" validate:"required"`
	Image   *ImageRequest  `json:"image,omitempty"`
}
