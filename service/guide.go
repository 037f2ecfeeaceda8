package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/repository"
)

type Guide interface {
	GetGuides(ctx context.Context) ([]model.Guide, error)
	GetGuide(ctx context.Context, guideID string) (model.Guide, error)
}

type guide struct {
	guideRepository repository.Guide
}

func NewGuideService(guideRepository repository.Guide) Guide {
	return &guide{
		guideRepository: guideRepository,
	}
}

func (s *guide) GetGuides(ctx context.Context) ([]model.Guide, error) {
	guideInfos, err := s.guideRepository.GetGuides(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	guides := make([]model.Guide, 0, len(guideInfos))
	for _, guideInfo := range guideInfos {
		guides = append(guides, toGuide(guideInfo))
	}
	return guides, nil
}

func (s *guide) GetGuide(ctx context.Context, guideID string) (model.Guide, error) {
	guideInfo, err := s.guideRepository.GetGuide(ctx, guideID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Guide{}, err
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return model.Guide{}, err
	}

	return toGuide(guideInfo), nil
}

func toGuide(guideInfo genmodel.Guides) model.Guide {
	var languages []string
	if guideInfo.Languages != "" {
		languages = strings.Split(guideInfo.Languages, ",")
	}
	return model.Guide{
		GuideID:     guideInfo.GuideID.String(),
		DisplayName: guideInfo.DisplayName,
		Speciality:  guideInfo.Speciality,
		Languages:   languages,
		ImageURL:    guideInfo.ImageURL,
	}
}
