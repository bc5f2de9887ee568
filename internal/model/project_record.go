package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectRecord is the database row behind a catalog project. List columns
// are stored as JSON so the table stays flat.
type ProjectRecord struct {
	gorm.Model
	ProjectID   string `gorm:"column:project_id;uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Position    int    `gorm:"not null;default:0"` // catalog order
	Name        string `gorm:"not null"`
	Tagline     string
	Location    string
	Region      string `gorm:"not null;index"`
	Type        string `gorm:"not null;index"`
	Status      string `gorm:"not null;index"`
	Description string `gorm:"type:text"`

	Features   datatypes.JSON
	Amenities  datatypes.JSON
	Highlights datatypes.JSON
	Gallery    datatypes.JSON

	PlotSizes     string
	TotalPlots    int
	PriceRange    string
	PriceValue    int64
	ApprovalType  string
	LegalInfo     string `gorm:"type:text"`
	ClearTitle    bool
	LoanAvailable *bool
	Image         string
	Lat           *float64
	Lng           *float64
}

func (ProjectRecord) TableName() string {
	return "projects"
}

// ToProject converts a row into the catalog shape.
func (r ProjectRecord) ToProject() (Project, error) {
	p := Project{
		ID:            r.ProjectID,
		Slug:          r.Slug,
		Name:          r.Name,
		Tagline:       r.Tagline,
		Location:      r.Location,
		Region:        Region(r.Region),
		Type:          ProjectType(r.Type),
		Status:        ProjectStatus(r.Status),
		Description:   r.Description,
		PlotSizes:     r.PlotSizes,
		TotalPlots:    r.TotalPlots,
		PriceRange:    r.PriceRange,
		PriceValue:    r.PriceValue,
		ApprovalType:  ApprovalType(r.ApprovalType),
		LegalInfo:     r.LegalInfo,
		ClearTitle:    r.ClearTitle,
		LoanAvailable: r.LoanAvailable,
		Image:         r.Image,
	}
	if r.Lat != nil && r.Lng != nil {
		p.Coordinates = &Coordinates{Lat: *r.Lat, Lng: *r.Lng}
	}

	lists := []struct {
		name string
		raw  datatypes.JSON
		dst  *[]string
	}{
		{"features", r.Features, &p.Features},
		{"amenities", r.Amenities, &p.Amenities},
		{"highlights", r.Highlights, &p.Highlights},
		{"gallery", r.Gallery, &p.Gallery},
	}
	for _, l := range lists {
		if len(l.raw) == 0 {
			*l.dst = []string{}
			continue
		}
		if err := json.Unmarshal(l.raw, l.dst); err != nil {
			return Project{}, fmt.Errorf("project %s: decode %s: %w", r.ProjectID, l.name, err)
		}
	}
	return p, nil
}

// NewProjectRecord builds a row from a catalog project at the given position.
func NewProjectRecord(p Project, position int) (ProjectRecord, error) {
	rec := ProjectRecord{
		ProjectID:     p.ID,
		Slug:          p.Slug,
		Position:      position,
		Name:          p.Name,
		Tagline:       p.Tagline,
		Location:      p.Location,
		Region:        string(p.Region),
		Type:          string(p.Type),
		Status:        string(p.Status),
		Description:   p.Description,
		PlotSizes:     p.PlotSizes,
		TotalPlots:    p.TotalPlots,
		PriceRange:    p.PriceRange,
		PriceValue:    p.PriceValue,
		ApprovalType:  string(p.ApprovalType),
		LegalInfo:     p.LegalInfo,
		ClearTitle:    p.ClearTitle,
		LoanAvailable: p.LoanAvailable,
		Image:         p.Image,
	}
	if p.Coordinates != nil {
		lat, lng := p.Coordinates.Lat, p.Coordinates.Lng
		rec.Lat, rec.Lng = &lat, &lng
	}

	var err error
	if rec.Features, err = toJSON(p.Features); err != nil {
		return rec, err
	}
	if rec.Amenities, err = toJSON(p.Amenities); err != nil {
		return rec, err
	}
	if rec.Highlights, err = toJSON(p.Highlights); err != nil {
		return rec, err
	}
	if rec.Gallery, err = toJSON(p.Gallery); err != nil {
		return rec, err
	}
	return rec, nil
}

func toJSON(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
