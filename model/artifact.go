package model

type Artifact struct {
	ArtifactID      string  `json:"artifactID"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Era             string  `json:"era"`
	Type            string  `json:"type"`
	Significance    string  `json:"significance"`
	ImageURL        string  `json:"imageURL"`
	HighResImageURL *string `json:"highResImageURL,omitempty"`
	PDFGuideURL     *string `json:"pdfGuideURL,omitempty"`
}

// ArtifactFilter narrows the catalog listing; empty fields match everything.
type ArtifactFilter struct {
	Era          string `query:"era"`
	Type         string `query:"type"`
	Significance string `query:"significance"`
	Search       string `query:"search"`
}

type CreateArtifactRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Era             string  `json:"era" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Significance    string  `json:"significance" validate:"required"`
	ImageURL        string  `json:"imageURL" validate:"required,url"`
	HighResImageURL *string `json:"highResImageURL" validate:"omitempty,url"`
	PDFGuideURL     *string `json:"pdfGuideURL" validate:"omitempty,url"`
}

type UpdateArtifactRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Era             string  `json:"era" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Significance    string  `json:"significance" validate:"required"`
	ImageURL        string  `json:"imageURL" validate:"required,url"`
	HighResImageURL *string `json:"highResImageURL" validate:"omitempty,url"`
	PDFGuideURL     *string `json:"pdfGuideURL" validate:"omitempty,url"`
}
