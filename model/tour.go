package model

type VirtualTour struct {
	TourID      string  `json:"tourID"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PanoramaURL string  `json:"panoramaURL"`
	Published   bool    `json:"published"`
	CoverURL    *string `json:"coverURL,omitempty"`
}

type CreateVirtualTourRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	PanoramaURL string  `json:"panoramaURL" validate:"required,url"`
	Published   bool    `json:"published"`
	CoverURL    *string `json:"coverURL" validate:"omitempty,url"`
}

type UpdateVirtualTourRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	PanoramaURL string  `json:"panoramaURL" validate:"required,url"`
	Published   bool    `json:"published"`
	CoverURL    *string `json:"coverURL" validate:"omitempty,url"`
}
