package usecase

import (
	"swiftcard/internal/data/entity"
	"swiftcard/internal/dto/request"
)

// buildName maps the request name onto the entity value type
func buildName(req request.NameRequest) entity.Name {
	return entity.Name{
		First:  req.First,
		Middle: req.Middle,
		Last:   req.Last,
	}
}

// buildAddress applies the "not defined" sentinel when no state was supplied
func buildAddress(req request.AddressRequest) entity.Address {
	state := req.State
	if state == "" {
		state = entity.StateNotDefined
	}
	return entity.Address{
		State:       state,
		Country:     req.Country,
		City:        req.City,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		Zip:         req.Zip,
	}
}

// buildImage falls back to the given defaults for missing url/alt
func buildImage(req *request.ImageRequest, defaultURL, defaultAlt string) entity.Image {
	image := entity.Image{URL: defaultURL, Alt: defaultAlt}
	if req != nil {
		if req.URL != "" {
			image.URL = req.URL
		}
		if req.Alt != "" {
			image.Alt = req.Alt
		}
	}
	return image
}
