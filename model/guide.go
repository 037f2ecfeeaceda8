package model

type Guide struct {
	GuideID     string   `json:"guideID"`
	DisplayName string   `json:"displayName"`
	Speciality  string   `json:"speciality"`
	Languages   []string `json:"languages"`
	ImageURL    *string  `json:"imageURL,omitempty"`
}
