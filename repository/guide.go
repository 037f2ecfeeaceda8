package repository

import (
	"context"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/table"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

type Guide interface {
	GetGuides(ctx context.Context) ([]genmodel.Guides, error)
	GetGuide(ctx context.Context, guideID string) (genmodel.Guides, error)
	GetGuideByUserID(ctx context.Context, userID string) (genmodel.Guides, error)
}

type guide struct {
	pgPool *pgxpool.Pool
}

func NewGuideRepository(pgPool *pgxpool.Pool) Guide {
	return &guide{pgPool: pgPool}
}

func (r *guide) GetGuides(ctx context.Context) (guides []genmodel.Guides, err error) {
	guideTable := table.Guides

	query, args := guideTable.
		SELECT(guideTable.GuideID, guideTable.UserID, guideTable.DisplayName, guideTable.Speciality, guideTable.Languages, guideTable.ImageURL).
		ORDER_BY(guideTable.DisplayName.ASC()).
		Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var guide genmodel.Guides
		err = rows.Scan(&guide.GuideID, &guide.UserID, &guide.DisplayName, &guide.Speciality, &guide.Languages, &guide.ImageURL)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		guides = append(guides, guide)
	}

	return guides, nil
}

func (r *guide) GetGuide(ctx context.Context, guideID string) (genmodel.Guides, error) {
	return r.getGuide(ctx, table.Guides.GuideID.EQ(postgres.UUID(uuid.MustParse(guideID))))
}

func (r *guide) GetGuideByUserID(ctx context.Context, userID string) (genmodel.Guides, error) {
	return r.getGuide(ctx, table.Guides.UserID.EQ(postgres.UUID(uuid.MustParse(userID))))
}

func (r *guide) getGuide(ctx context.Context, condition postgres.BoolExpression) (guide genmodel.Guides, err error) {
	guideTable := table.Guides

	query, args := guideTable.
		SELECT(guideTable.GuideID, guideTable.UserID, guideTable.DisplayName, guideTable.Speciality, guideTable.Languages, guideTable.ImageURL).
		WHERE(condition).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).
		Scan(&guide.GuideID, &guide.UserID, &guide.DisplayName, &guide.Speciality, &guide.Languages, &guide.ImageURL)
	if err != nil {
		return
	}

	return guide, nil
}
