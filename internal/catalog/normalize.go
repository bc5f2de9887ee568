package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"sungraze_backend/internal/model"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// normalize fills derivable fields: slug from name, price value from the
// display range, and empty lists instead of nil.
func normalize(p model.Project) model.Project {
	p = p.Clone()
	p.ID = strings.TrimSpace(p.ID)
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Slug == "" && p.Name != "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.PriceValue == 0 {
		if v, ok := ParsePriceValue(p.PriceRange); ok {
			p.PriceValue = v
		}
	}
	return p
}

// validate reports every problem at once so a bad data file can be fixed in
// one pass.
func validate(projects []model.Project) error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	for i, p := range projects {
		label := p.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			add("%s: id is required", label)
		} else if ids[p.ID] {
			add("%s: duplicate id", label)
		}
		ids[p.ID] = true

		switch {
		case p.Slug == "":
			add("%s: slug is required", label)
		case !slug.IsSlug(p.Slug):
			add("%s: slug %q is not url-safe", label, p.Slug)
		case slugs[p.Slug]:
			add("%s: duplicate slug %q", label, p.Slug)
		}
		slugs[p.Slug] = true

		if !p.Type.Valid() {
			add("%s: unknown type %q", label, p.Type)
		}
		if !p.Status.Valid() {
			add("%s: unknown status %q", label, p.Status)
		}
		if !p.Region.Valid() {
			add("%s: unknown region %q", label, p.Region)
		}
		if p.ApprovalType != "" && !p.ApprovalType.Valid() {
			add("%s: unknown approval type %q", label, p.ApprovalType)
		}
		if p.TotalPlots < 0 {
			add("%s: totalPlots must not be negative", label)
		}
		if p.PriceValue < 0 {
			add("%s: priceValue must not be negative", label)
		}
	}

	problems = append(problems, priceOrderProblems(projects)...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}

// priceOrderProblems checks that priceValue orders projects the same way as
// the amounts shown in their price ranges.
func priceOrderProblems(projects []model.Project) []string {
	var problems []string
	for i, a := range projects {
		shownA, ok := ParsePriceValue(a.PriceRange)
		if !ok {
			continue
		}
		for _, b := range projects[i+1:] {
			shownB, ok := ParsePriceValue(b.PriceRange)
			if !ok {
				continue
			}
			if (shownA < shownB && a.PriceValue > b.PriceValue) || (shownA > shownB && a.PriceValue < b.PriceValue) {
				problems = append(problems, fmt.Sprintf("%s/%s: priceValue disagrees with priceRange", a.ID, b.ID))
			}
		}
	}
	return problems
}
