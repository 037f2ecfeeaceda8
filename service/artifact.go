package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/repository"
)

type Artifact interface {
	GetArtifacts(ctx context.Context, filter model.ArtifactFilter) ([]model.Artifact, error)
	GetArtifact(ctx context.Context, artifactID string) (model.Artifact, error)
	CreateArtifact(ctx context.Context, req model.CreateArtifactRequest) (string, error)
	UpdateArtifact(ctx context.Context, artifactID string, req model.UpdateArtifactRequest) error
	DeleteArtifact(ctx context.Context, artifactID string) (int64, error)
}

type artifact struct {
	artifactRepository repository.Artifact
}

func NewArtifactService(artifactRepository repository.Artifact) Artifact {
	return &artifact{
		artifactRepository: artifactRepository,
	}
}

func (s *artifact) GetArtifacts(ctx context.Context, filter model.ArtifactFilter) ([]model.Artifact, error) {
	artifactInfos, err := s.artifactRepository.GetArtifacts(ctx, filter)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	artifacts := make([]model.Artifact, 0, len(artifactInfos))
	for _, artifactInfo := range artifactInfos {
		artifacts = append(artifacts, toArtifact(artifactInfo))
	}
	return artifacts, nil
}

func (s *artifact) GetArtifact(ctx context.Context, artifactID string) (model.Artifact, error) {
	artifactInfo, err := s.artifactRepository.GetArtifact(ctx, artifactID)
	if err != nil {
		return model.Artifact{}, err
	}
	return toArtifact(artifactInfo), nil
}

func (s *artifact) CreateArtifact(ctx context.Context, req model.CreateArtifactRequest) (string, error) {
	artifactID, err := s.artifactRepository.CreateArtifact(ctx, genmodel.Artifacts{
		Name:            req.Name,
		Description:     req.Description,
		Era:             req.Era,
		Type:            req.Type,
		Significance:    req.Significance,
		ImageURL:        req.ImageURL,
		HighResImageURL: req.HighResImageURL,
		PdfGuideURL:     req.PDFGuideURL,
	})
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}
	return artifactID, nil
}

func (s *artifact) UpdateArtifact(ctx context.Context, artifactID string, req model.UpdateArtifactRequest) error {
	id, err := uuid.Parse(artifactID)
	if err != nil {
		return err
	}

	affected, err := s.artifactRepository.UpdateArtifact(ctx, genmodel.Artifacts{
		ArtifactID:      id,
		Name:            req.Name,
		Description:     req.Description,
		Era:             req.Era,
		Type:            req.Type,
		Significance:    req.Significance,
		ImageURL:        req.ImageURL,
		HighResImageURL: req.HighResImageURL,
		PdfGuideURL:     req.PDFGuideURL,
	})
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	if affected == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *artifact) DeleteArtifact(ctx context.Context, artifactID string) (int64, error) {
	affected, err := s.artifactRepository.DeleteArtifact(ctx, artifactID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}
	return affected, nil
}

func toArtifact(artifactInfo genmodel.Artifacts) model.Artifact {
	return model.Artifact{
		ArtifactID:      artifactInfo.ArtifactID.String(),
		Name:            artifactInfo.Name,
		Description:     artifactInfo.Description,
		Era:             artifactInfo.Era,
		Type:            artifactInfo.Type,
		Significance:    artifactInfo.Significance,
		ImageURL:        artifactInfo.ImageURL,
		HighResImageURL: artifactInfo.HighResImageURL,
		PDFGuideURL:     artifactInfo.PdfGuideURL,
	}
}
