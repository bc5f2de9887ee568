package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"sungraze_backend/internal/model"
)

//go:embed data/projects.json
var embeddedProjects []byte

var ErrUnknownSource = errors.New("unknown catalog source")

// Source produces the project collection once at startup.
type Source interface {
	Load(ctx context.Context) ([]model.Project, error)
}

// Open loads src and builds the store.
func Open(ctx context.Context, src Source) (*Store, error) {
	projects, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewStore(projects)
}

// EmbeddedSource serves the catalog bundled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]model.Project, error) {
	return decodeProjects(embeddedProjects)
}

// EmbeddedJSON returns the bundled catalog file.
func EmbeddedJSON() []byte {
	out := make([]byte, len(embeddedProjects))
	copy(out, embeddedProjects)
	return out
}

// FileSource reads a JSON array of projects from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(context.Context) ([]model.Project, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return decodeProjects(data)
}

// ObjectGetter is the part of the object store a catalog source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// ObjectSource reads the catalog JSON from a bucket object.
type ObjectSource struct {
	Store ObjectGetter
	Key   string
}

func (s ObjectSource) Load(ctx context.Context) ([]model.Project, error) {
	data, err := s.Store.GetObject(ctx, s.Key)
	if err != nil {
		return nil, err
	}
	return decodeProjects(data)
}

// DatabaseSource reads the projects table, ordered by position.
type DatabaseSource struct {
	DB *gorm.DB
}

func (s DatabaseSource) Load(ctx context.Context) ([]model.Project, error) {
	var rows []model.ProjectRecord
	if err := s.DB.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	out := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToProject()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeProjects(data []byte) ([]model.Project, error) {
	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return projects, nil
}
