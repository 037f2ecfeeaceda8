package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
)

type fakeVirtualTourRepository struct {
	tours map[string]genmodel.VirtualTours
}

func newFakeVirtualTourRepository() *fakeVirtualTourRepository {
	return &fakeVirtualTourRepository{tours: make(map[string]genmodel.VirtualTours)}
}

func (r *fakeVirtualTourRepository) GetVirtualTours(ctx context.Context, publishedOnly bool) ([]genmodel.VirtualTours, error) {
	tours := make([]genmodel.VirtualTours, 0, len(r.tours))
	for _, tour := range r.tours {
		if publishedOnly && !tour.Published {
			continue
		}
		tours = append(tours, tour)
	}
	return tours, nil
}

func (r *fakeVirtualTourRepository) GetVirtualTour(ctx context.Context, tourID string) (genmodel.VirtualTours, error) {
	if tour, ok := r.tours[tourID]; ok {
		return tour, nil
	}
	return genmodel.VirtualTours{}, pgx.ErrNoRows
}

func (r *fakeVirtualTourRepository) CreateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (string, error) {
	tour.TourID = uuid.MustParse(generator.UUID())
	tour.CreatedAt = time.Now()
	r.tours[tour.TourID.String()] = tour
	return tour.TourID.String(), nil
}

func (r *fakeVirtualTourRepository) UpdateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (int64, error) {
	if _, ok := r.tours[tour.TourID.String()]; !ok {
		return 0, nil
	}
	r.tours[tour.TourID.String()] = tour
	return 1, nil
}

func (r *fakeVirtualTourRepository) DeleteVirtualTour(ctx context.Context, tourID string) (int64, error) {
	if _, ok := r.tours[tourID]; !ok {
		return 0, nil
	}
	delete(r.tours, tourID)
	return 1, nil
}

func TestUpdateVirtualTourUnknownTour(t *testing.T) {
	repo := newFakeVirtualTourRepository()
	svc := NewVirtualTourService(repo)

	tourID, err := svc.CreateVirtualTour(context.Background(), model.CreateVirtualTourRequest{
		Title:       "Throne Hall",
		PanoramaURL: "https://example.com/throne.jpg",
		Published:   true,
	})
	if err != nil {
		t.Fatalf("create tour: %v", err)
	}

	update := model.UpdateVirtualTourRequest{
		Title:       "Throne Hall (restored)",
		PanoramaURL: "https://example.com/throne-v2.jpg",
		Published:   true,
	}

	// Updating a valid-looking id without a row behind it is not-found, not
	// a silent success.
	missingID := "018f4f3a-0000-7000-8000-00000000dead"
	if err = svc.UpdateVirtualTour(context.Background(), missingID, update); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("err = %v, want %v", err, pgx.ErrNoRows)
	}

	if err = svc.UpdateVirtualTour(context.Background(), tourID, update); err != nil {
		t.Errorf("update existing tour: %v", err)
	}
}
