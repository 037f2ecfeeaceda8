package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
)

type fakeArtifactRepository struct {
	artifacts map[string]genmodel.Artifacts
}

func newFakeArtifactRepository() *fakeArtifactRepository {
	return &fakeArtifactRepository{artifacts: make(map[string]genmodel.Artifacts)}
}

func (r *fakeArtifactRepository) GetArtifacts(ctx context.Context, filter model.ArtifactFilter) ([]genmodel.Artifacts, error) {
	artifacts := make([]genmodel.Artifacts, 0, len(r.artifacts))
	for _, artifact := range r.artifacts {
		if filter.Era != "" && artifact.Era != filter.Era {
			continue
		}
		if filter.Type != "" && artifact.Type != filter.Type {
			continue
		}
		if filter.Significance != "" && artifact.Significance != filter.Significance {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(artifact.Name), search) &&
				!strings.Contains(strings.ToLower(artifact.Description), search) {
				continue
			}
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (r *fakeArtifactRepository) GetArtifact(ctx context.Context, artifactID string) (genmodel.Artifacts, error) {
	if artifact, ok := r.artifacts[artifactID]; ok {
		return artifact, nil
	}
	return genmodel.Artifacts{}, pgx.ErrNoRows
}

func (r *fakeArtifactRepository) CreateArtifact(ctx context.Context, artifact genmodel.Artifacts) (string, error) {
	artifact.ArtifactID = uuid.MustParse(generator.UUID())
	artifact.CreatedAt = time.Now()
	r.artifacts[artifact.ArtifactID.String()] = artifact
	return artifact.ArtifactID.String(), nil
}

func (r *fakeArtifactRepository) UpdateArtifact(ctx context.Context, artifact genmodel.Artifacts) (int64, error) {
	if _, ok := r.artifacts[artifact.ArtifactID.String()]; !ok {
		return 0, nil
	}
	r.artifacts[artifact.ArtifactID.String()] = artifact
	return 1, nil
}

func (r *fakeArtifactRepository) DeleteArtifact(ctx context.Context, artifactID string) (int64, error) {
	if _, ok := r.artifacts[artifactID]; !ok {
		return 0, nil
	}
	delete(r.artifacts, artifactID)
	return 1, nil
}

func seedArtifact(t *testing.T, svc Artifact, name, era, artifactType string) string {
	t.Helper()
	artifactID, err := svc.CreateArtifact(context.Background(), model.CreateArtifactRequest{
		Name:         name,
		Description:  "ceremonial piece from the royal collection",
		Era:          era,
		Type:         artifactType,
		Significance: "high",
		ImageURL:     "https://example.com/" + name + ".jpg",
	})
	if err != nil {
		t.Fatalf("create artifact: %v", err)
	}
	return artifactID
}

func TestGetArtifactsFilters(t *testing.T) {
	svc := NewArtifactService(newFakeArtifactRepository())
	seedArtifact(t, svc, "golden-throne", "joseon", "furniture")
	seedArtifact(t, svc, "jade-seal", "joseon", "seal")
	seedArtifact(t, svc, "bronze-mirror", "goryeo", "mirror")

	all, err := svc.GetArtifacts(context.Background(), model.ArtifactFilter{})
	if err != nil {
		t.Fatalf("list artifacts: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered = %d artifacts, want 3", len(all))
	}

	joseon, err := svc.GetArtifacts(context.Background(), model.ArtifactFilter{Era: "joseon"})
	if err != nil {
		t.Fatalf("list by era: %v", err)
	}
	if len(joseon) != 2 {
		t.Errorf("era=joseon = %d artifacts, want 2", len(joseon))
	}

	mirrors, err := svc.GetArtifacts(context.Background(), model.ArtifactFilter{Search: "MIRROR"})
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	if len(mirrors) != 1 || mirrors[0].Name != "bronze-mirror" {
		t.Errorf("search=MIRROR = %v, want only bronze-mirror", mirrors)
	}
}

func TestUpdateArtifactUnknownArtifact(t *testing.T) {
	svc := NewArtifactService(newFakeArtifactRepository())

	update := model.UpdateArtifactRequest{
		Name:         "golden-throne",
		Description:  "restored",
		Era:          "joseon",
		Type:         "furniture",
		Significance: "high",
		ImageURL:     "https://example.com/golden-throne.jpg",
	}
	missingID := "018f4f3a-0000-7000-8000-00000000dead"
	if err := svc.UpdateArtifact(context.Background(), missingID, update); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("err = %v, want %v", err, pgx.ErrNoRows)
	}
}
