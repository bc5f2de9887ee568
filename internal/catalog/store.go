// Package catalog holds the read-only project catalog and its queries.
package catalog

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"

	"sungraze_backend/internal/model"
)

const projectTable = "project"

// entry is what memdb indexes. Seq is the catalog position.
type entry struct {
	Seq     int
	ID      string
	Slug    string
	Type    string
	Status  string
	Region  string
	Project model.Project
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			projectTable: {
				Name: projectTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Seq"},
					},
					"project_id": {
						Name:    "project_id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"slug": {
						Name:    "slug",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Slug"},
					},
					"type": {
						Name:    "type",
						Indexer: &memdb.StringFieldIndex{Field: "Type"},
					},
					"status": {
						Name:    "status",
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
					"region": {
						Name:    "region",
						Indexer: &memdb.StringFieldIndex{Field: "Region"},
					},
				},
			},
		},
	}
}

// Store is an immutable, indexed view of the catalog. It is safe for
// concurrent use; nothing is written after NewStore returns.
type Store struct {
	db      *memdb.MemDB
	size    int
	regions []model.Region
}

// NewStore normalises and validates the given projects and indexes copies of
// them. The caller's slice is not retained.
func NewStore(projects []model.Project) (*Store, error) {
	normalised := make([]model.Project, len(projects))
	for i, p := range projects {
		normalised[i] = normalize(p)
	}
	if err := validate(normalised); err != nil {
		return nil, err
	}

	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	txn := db.Txn(true)
	var regions []model.Region
	seen := make(map[model.Region]bool)
	for i, p := range normalised {
		e := &entry{
			Seq:     i,
			ID:      p.ID,
			Slug:    p.Slug,
			Type:    string(p.Type),
			Status:  string(p.Status),
			Region:  string(p.Region),
			Project: p,
		}
		if err := txn.Insert(projectTable, e); err != nil {
			txn.Abort()
			return nil, fmt.Errorf("index project %s: %w", p.ID, err)
		}
		if !seen[p.Region] {
			seen[p.Region] = true
			regions = append(regions, p.Region)
		}
	}
	txn.Commit()

	return &Store{db: db, size: len(normalised), regions: regions}, nil
}

// Len returns the number of projects in the catalog.
func (s *Store) Len() int {
	return s.size
}

// All returns every project in catalog order.
func (s *Store) All() []model.Project {
	return s.list("id")
}

// GetByID looks a project up by its legacy id.
func (s *Store) GetByID(id string) (model.Project, bool) {
	return s.first("project_id", id)
}

// GetBySlug looks a project up by its permalink slug.
func (s *Store) GetBySlug(slug string) (model.Project, bool) {
	return s.first("slug", slug)
}

func (s *Store) ListByType(t model.ProjectType) []model.Project {
	return s.list("type", string(t))
}

func (s *Store) ListByStatus(status model.ProjectStatus) []model.Project {
	return s.list("status", string(status))
}

func (s *Store) ListByRegion(region model.Region) []model.Project {
	return s.list("region", string(region))
}

// Regions returns the distinct regions present, in first-appearance order.
func (s *Store) Regions() []model.Region {
	out := make([]model.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *Store) first(index, key string) (model.Project, bool) {
	if key == "" {
		return model.Project{}, false
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(projectTable, index, key)
	if err != nil || raw == nil {
		return model.Project{}, false
	}
	return raw.(*entry).Project.Clone(), true
}

func (s *Store) entries(index string, args ...interface{}) []*entry {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(projectTable, index, args...)
	if err != nil {
		return nil
	}
	var out []*entry
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(*entry))
	}
	// index order is by key bytes, not catalog position
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func (s *Store) list(index string, args ...interface{}) []model.Project {
	return projects(s.entries(index, args...))
}

func projects(entries []*entry) []model.Project {
	out := make([]model.Project, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Project.Clone())
	}
	return out
}
