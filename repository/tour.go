package repository

import (
	"context"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/table"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

type VirtualTour interface {
	GetVirtualTours(ctx context.Context, publishedOnly bool) ([]genmodel.VirtualTours, error)
	GetVirtualTour(ctx context.Context, tourID string) (genmodel.VirtualTours, error)
	CreateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (string, error)
	UpdateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (int64, error)
	DeleteVirtualTour(ctx context.Context, tourID string) (int64, error)
}

type virtualTour struct {
	pgPool *pgxpool.Pool
}

func NewVirtualTourRepository(pgPool *pgxpool.Pool) VirtualTour {
	return &virtualTour{pgPool: pgPool}
}

func (r *virtualTour) GetVirtualTours(ctx context.Context, publishedOnly bool) (tours []genmodel.VirtualTours, err error) {
	tourTable := table.VirtualTours

	stmt := tourTable.
		SELECT(tourTable.TourID, tourTable.Title, tourTable.Description, tourTable.PanoramaURL, tourTable.CoverURL, tourTable.Published).
		ORDER_BY(tourTable.CreatedAt.DESC())
	if publishedOnly {
		stmt = stmt.WHERE(tourTable.Published.IS_TRUE())
	}
	query, args := stmt.Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tour genmodel.VirtualTours
		err = rows.Scan(&tour.TourID, &tour.Title, &tour.Description, &tour.PanoramaURL, &tour.CoverURL, &tour.Published)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		tours = append(tours, tour)
	}

	return tours, nil
}

func (r *virtualTour) GetVirtualTour(ctx context.Context, tourID string) (tour genmodel.VirtualTours, err error) {
	tourTable := table.VirtualTours

	query, args := tourTable.
		SELECT(tourTable.TourID, tourTable.Title, tourTable.Description, tourTable.PanoramaURL, tourTable.CoverURL, tourTable.Published).
		WHERE(tourTable.TourID.EQ(postgres.UUID(uuid.MustParse(tourID)))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).
		Scan(&tour.TourID, &tour.Title, &tour.Description, &tour.PanoramaURL, &tour.CoverURL, &tour.Published)
	if err != nil {
		return
	}

	return tour, nil
}

func (r *virtualTour) CreateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (string, error) {
	tourTable := table.VirtualTours

	tour.TourID = uuid.MustParse(generator.UUID())
	tour.CreatedAt = time.Now()

	sql, args := tourTable.
		INSERT(tourTable.TourID, tourTable.Title, tourTable.Description, tourTable.PanoramaURL, tourTable.CoverURL, tourTable.Published, tourTable.CreatedAt).
		MODEL(tour).
		Sql()
	_, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	return tour.TourID.String(), nil
}

func (r *virtualTour) UpdateVirtualTour(ctx context.Context, tour genmodel.VirtualTours) (int64, error) {
	tourTable := table.VirtualTours

	now := time.Now()
	tour.UpdatedAt = &now

	sql, args := tourTable.
		UPDATE(tourTable.Title, tourTable.Description, tourTable.PanoramaURL, tourTable.CoverURL, tourTable.Published, tourTable.UpdatedAt).
		WHERE(tourTable.TourID.EQ(postgres.UUID(tour.TourID))).
		MODEL(tour).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *virtualTour) DeleteVirtualTour(ctx context.Context, tourID string) (int64, error) {
	tourTable := table.VirtualTours

	sql, args := tourTable.
		DELETE().
		WHERE(tourTable.TourID.EQ(postgres.UUID(uuid.MustParse(tourID)))).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}
