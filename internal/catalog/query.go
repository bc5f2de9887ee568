package catalog

import (
	"sort"
	"strings"

	"sungraze_backend/internal/model"
)

// Sort orders a query result.
type Sort string

const (
	SortLatest    Sort = "latest" // catalog order
	SortPriceLow  Sort = "price_low"
	SortPriceHigh Sort = "price_high"
)

// filterAll is the listing page's "no filter" value.
const filterAll = "all"

// ParseSort maps a query parameter to a Sort; anything unknown is latest.
func ParseSort(raw string) Sort {
	switch Sort(strings.TrimSpace(raw)) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortLatest
	}
}

// Filter is conjunctive. Empty fields match everything. Values outside the
// closed sets match nothing.
type Filter struct {
	Type   model.ProjectType
	Status model.ProjectStatus
	Region model.Region
}

// ParseFilter builds a Filter from raw query values, treating "all" as unset.
func ParseFilter(typ, status, region string) Filter {
	return Filter{
		Type:   model.ProjectType(unsetAll(typ)),
		Status: model.ProjectStatus(unsetAll(status)),
		Region: model.Region(unsetAll(region)),
	}
}

func unsetAll(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, filterAll) {
		return ""
	}
	return v
}

func (f Filter) matches(e *entry) bool {
	if f.Type != "" && e.Type != string(f.Type) {
		return false
	}
	if f.Status != "" && e.Status != string(f.Status) {
		return false
	}
	if f.Region != "" && e.Region != string(f.Region) {
		return false
	}
	return true
}

// Query returns the projects matching every set filter, ordered by sort.
// Each call returns a fresh slice.
func (s *Store) Query(f Filter, order Sort) []model.Project {
	var candidates []*entry
	switch {
	case f.Type != "":
		candidates = s.entries("type", string(f.Type))
	case f.Status != "":
		candidates = s.entries("status", string(f.Status))
	case f.Region != "":
		candidates = s.entries("region", string(f.Region))
	default:
		candidates = s.entries("id")
	}

	matched := make([]*entry, 0, len(candidates))
	for _, e := range candidates {
		if f.matches(e) {
			matched = append(matched, e)
		}
	}

	switch order {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Project.PriceValue < matched[j].Project.PriceValue
		})
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Project.PriceValue > matched[j].Project.PriceValue
		})
	}
	return projects(matched)
}

// RelatedTo returns up to limit other projects of the same type.
func (s *Store) RelatedTo(p model.Project, limit int) []model.Project {
	out := []model.Project{}
	if limit <= 0 {
		return out
	}
	for _, e := range s.entries("type", string(p.Type)) {
		if e.ID == p.ID {
			continue
		}
		out = append(out, e.Project.Clone())
		if len(out) == limit {
			break
		}
	}
	return out
}

// Featured returns the first n projects in catalog order.
func (s *Store) Featured(n int) []model.Project {
	all := s.entries("id")
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}
	return projects(all)
}

// Section returns a farmland sub-page for a farmland project.
func (s *Store) Section(p model.Project, key string) (model.FarmlandSection, bool) {
	if !p.IsFarmland() {
		return model.FarmlandSection{}, false
	}
	for _, section := range model.FarmlandSections {
		if section.Key == key {
			return section, true
		}
	}
	return model.FarmlandSection{}, false
}

// Sections lists the sub-pages available for a project.
func (s *Store) Sections(p model.Project) []model.FarmlandSection {
	if !p.IsFarmland() {
		return []model.FarmlandSection{}
	}
	out := make([]model.FarmlandSection, len(model.FarmlandSections))
	copy(out, model.FarmlandSections)
	return out
}
