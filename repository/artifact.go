package repository

import (
	"context"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/table"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

type Artifact interface {
	GetArtifacts(ctx context.Context, filter model.ArtifactFilter) ([]genmodel.Artifacts, error)
	GetArtifact(ctx context.Context, artifactID string) (genmodel.Artifacts, error)
	CreateArtifact(ctx context.Context, artifact genmodel.Artifacts) (string, error)
	UpdateArtifact(ctx context.Context, artifact genmodel.Artifacts) (int64, error)
	DeleteArtifact(ctx context.Context, artifactID string) (int64, error)
}

type artifact struct {
	pgPool *pgxpool.Pool
}

func NewArtifactRepository(pgPool *pgxpool.Pool) Artifact {
	return &artifact{pgPool: pgPool}
}

func (r *artifact) GetArtifacts(ctx context.Context, filter model.ArtifactFilter) (artifacts []genmodel.Artifacts, err error) {
	artifactTable := table.Artifacts

	stmt := artifactTable.
		SELECT(artifactTable.ArtifactID, artifactTable.Name, artifactTable.Description, artifactTable.Era, artifactTable.Type, artifactTable.Significance, artifactTable.ImageURL, artifactTable.HighResImageURL, artifactTable.PdfGuideURL).
		ORDER_BY(artifactTable.Name.ASC())

	conditions := make([]postgres.BoolExpression, 0, 4)
	if filter.Era != "" {
		conditions = append(conditions, artifactTable.Era.EQ(postgres.String(filter.Era)))
	}
	if filter.Type != "" {
		conditions = append(conditions, artifactTable.Type.EQ(postgres.String(filter.Type)))
	}
	if filter.Significance != "" {
		conditions = append(conditions, artifactTable.Significance.EQ(postgres.String(filter.Significance)))
	}
	if filter.Search != "" {
		pattern := postgres.String("%" + strings.ToLower(filter.Search) + "%")
		conditions = append(conditions, postgres.LOWER(artifactTable.Name).LIKE(pattern).
			OR(postgres.LOWER(artifactTable.Description).LIKE(pattern)))
	}
	if len(conditions) > 0 {
		condition := conditions[0]
		for _, c := range conditions[1:] {
			condition = condition.AND(c)
		}
		stmt = stmt.WHERE(condition)
	}
	query, args := stmt.Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var artifact genmodel.Artifacts
		err = rows.Scan(&artifact.ArtifactID, &artifact.Name, &artifact.Description, &artifact.Era, &artifact.Type, &artifact.Significance, &artifact.ImageURL, &artifact.HighResImageURL, &artifact.PdfGuideURL)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (r *artifact) GetArtifact(ctx context.Context, artifactID string) (artifact genmodel.Artifacts, err error) {
	artifactTable := table.Artifacts

	query, args := artifactTable.
		SELECT(artifactTable.ArtifactID, artifactTable.Name, artifactTable.Description, artifactTable.Era, artifactTable.Type, artifactTable.Significance, artifactTable.ImageURL, artifactTable.HighResImageURL, artifactTable.PdfGuideURL).
		WHERE(artifactTable.ArtifactID.EQ(postgres.UUID(uuid.MustParse(artifactID)))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).
		Scan(&artifact.ArtifactID, &artifact.Name, &artifact.Description, &artifact.Era, &artifact.Type, &artifact.Significance, &artifact.ImageURL, &artifact.HighResImageURL, &artifact.PdfGuideURL)
	if err != nil {
		return
	}

	return artifact, nil
}

func (r *artifact) CreateArtifact(ctx context.Context, artifact genmodel.Artifacts) (string, error) {
	artifactTable := table.Artifacts

	artifact.ArtifactID = uuid.MustParse(generator.UUID())
	artifact.CreatedAt = time.Now()

	sql, args := artifactTable.
		INSERT(artifactTable.ArtifactID, artifactTable.Name, artifactTable.Description, artifactTable.Era, artifactTable.Type, artifactTable.Significance, artifactTable.ImageURL, artifactTable.HighResImageURL, artifactTable.PdfGuideURL, artifactTable.CreatedAt).
		MODEL(artifact).
		Sql()
	_, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	return artifact.ArtifactID.String(), nil
}

func (r *artifact) UpdateArtifact(ctx context.Context, artifact genmodel.Artifacts) (int64, error) {
	artifactTable := table.Artifacts

	now := time.Now()
	artifact.UpdatedAt = &now

	sql, args := artifactTable.
		UPDATE(artifactTable.Name, artifactTable.Description, artifactTable.Era, artifactTable.Type, artifactTable.Significance, artifactTable.ImageURL, artifactTable.HighResImageURL, artifactTable.PdfGuideURL, artifactTable.UpdatedAt).
		WHERE(artifactTable.ArtifactID.EQ(postgres.UUID(artifact.ArtifactID))).
		MODEL(artifact).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *artifact) DeleteArtifact(ctx context.Context, artifactID string) (int64, error) {
	artifactTable := table.Artifacts

	sql, args := artifactTable.
		DELETE().
		WHERE(artifactTable.ArtifactID.EQ(postgres.UUID(uuid.MustParse(artifactID)))).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}
