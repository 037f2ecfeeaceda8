package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/repository"
)

type VirtualTour interface {
	GetVirtualTours(ctx context.Context) ([]model.VirtualTour, error)
	GetVirtualTour(ctx context.Context, tourID string) (model.VirtualTour, error)
	CreateVirtualTour(ctx context.Context, req model.CreateVirtualTourRequest) (string, error)
	UpdateVirtualTour(ctx context.Context, tourID string, req model.UpdateVirtualTourRequest) error
	DeleteVirtualTour(ctx context.Context, tourID string) (int64, error)
}

type virtualTour struct {
	tourRepository repository.VirtualTour
}

func NewVirtualTourService(tourRepository repository.VirtualTour) VirtualTour {
	return &virtualTour{
		tourRepository: tourRepository,
	}
}

// GetVirtualTours lists published tours for everyone; admins also see
// unpublished drafts.
func (s *virtualTour) GetVirtualTours(ctx context.Context) ([]model.VirtualTour, error) {
	publishedOnly := true
	if userProfile, err := profile.UseProfile(ctx); err == nil && userProfile.Role == profile.Admin {
		publishedOnly = false
	}

	tourInfos, err := s.tourRepository.GetVirtualTours(ctx, publishedOnly)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	tours := make([]model.VirtualTour, 0, len(tourInfos))
	for _, tourInfo := range tourInfos {
		tours = append(tours, toVirtualTour(tourInfo))
	}
	return tours, nil
}

func (s *virtualTour) GetVirtualTour(ctx context.Context, tourID string) (model.VirtualTour, error) {
	tourInfo, err := s.tourRepository.GetVirtualTour(ctx, tourID)
	if err != nil {
		return model.VirtualTour{}, err
	}
	return toVirtualTour(tourInfo), nil
}

func (s *virtualTour) CreateVirtualTour(ctx context.Context, req model.CreateVirtualTourRequest) (string, error) {
	tourID, err := s.tourRepository.CreateVirtualTour(ctx, genmodel.VirtualTours{
		Title:       req.Title,
		Description: req.Description,
		PanoramaURL: req.PanoramaURL,
		CoverURL:    req.CoverURL,
		Published:   req.Published,
	})
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}
	return tourID, nil
}

func (s *virtualTour) UpdateVirtualTour(ctx context.Context, tourID string, req model.UpdateVirtualTourRequest) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return err
	}

	affected, err := s.tourRepository.UpdateVirtualTour(ctx, genmodel.VirtualTours{
		TourID:      id,
		Title:       req.Title,
		Description: req.Description,
		PanoramaURL: req.PanoramaURL,
		CoverURL:    req.CoverURL,
		Published:   req.Published,
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

func (s *virtualTour) DeleteVirtualTour(ctx context.Context, tourID string) (int64, error) {
	affected, err := s.tourRepository.DeleteVirtualTour(ctx, tourID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}
	return affected, nil
}

func toVirtualTour(tourInfo genmodel.VirtualTours) model.VirtualTour {
	return model.VirtualTour{
		TourID:      tourInfo.TourID.String(),
		Title:       tourInfo.Title,
		Description: tourInfo.Description,
		PanoramaURL: tourInfo.PanoramaURL,
		CoverURL:    tourInfo.CoverURL,
		Published:   tourInfo.Published,
	}
}
