package request

// NameRequest carries the three-part person name. Middle may be empty.
type NameRequest struct {
	First  string `json:"first" validate:"required,min=2,max=255"`
	Middle string `json:"middle,omitempty" validate:"omitempty,min=2,max=255"`
	Last   string `json:"last" validate:"required,min=2,max=255"`
}

// AddressRequest is shared between user and card payloads. State is optional
// and defaults to a sentinel server-side; zip defaults to 0.
type AddressRequest struct {
	State       string `json:"state,omitempty" validate:"omitempty,min=2,max=255"`
	Country     string `json:"country" validate:"required,min=2,max=255"`
	City        string `json:"city" validate:"required,min=2,max=255"`
	Street      string `json:"street" validate:"required,min=2,max=255"`
	HouseNumber int    `json:"houseNumber" validate:"required,min=1,max=99999"`
	Zip         int    `json:"zip,omitempty" validate:"omitempty,min=1,max=9999999"`
}

// ImageRequest is optional on all payloads; empty fields fall back to
// documented defaults.
type ImageRequest struct {
	URL string `json:"url,omitempty" validate:"omitempty,http_url,min=11,max=1024"`
	Alt string `json:"alt,omitempty" validate:"omitempty,min=2,max=1024"`
}
