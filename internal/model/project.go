package model

// Project Types
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeFarmland    ProjectType = "farmland"
)

// Project Status
type ProjectStatus string

const (
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
)

// Served regions
type Region string

const (
	RegionKarnataka Region = "Karnataka"
	RegionTamilNadu Region = "Tamil Nadu"
)

// Regulatory approval categories
type ApprovalType string

const (
	ApprovalBMRDA        ApprovalType = "bmrda"
	ApprovalDTCP         ApprovalType = "dtcp"
	ApprovalAgricultural ApprovalType = "agricultural"
	ApprovalPending      ApprovalType = "pending"
)

var (
	ProjectTypes    = []ProjectType{ProjectTypeResidential, ProjectTypeFarmland}
	ProjectStatuses = []ProjectStatus{ProjectStatusCompleted, ProjectStatusOngoing, ProjectStatusUpcoming}
	Regions         = []Region{RegionKarnataka, RegionTamilNadu}
	ApprovalTypes   = []ApprovalType{ApprovalBMRDA, ApprovalDTCP, ApprovalAgricultural, ApprovalPending}
)

func (t ProjectType) Valid() bool {
	for _, v := range ProjectTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (r Region) Valid() bool {
	for _, v := range Regions {
		if v == r {
			return true
		}
	}
	return false
}

func (a ApprovalType) Valid() bool {
	for _, v := range ApprovalTypes {
		if v == a {
			return true
		}
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Project is one development listed in the catalog.
type Project struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Tagline     string        `json:"tagline"`
	Location    string        `json:"location"`
	Region      Region        `json:"region"`
	Type        ProjectType   `json:"type"`
	Status      ProjectStatus `json:"status"`
	Description string        `json:"description"`

	Features   []string `json:"features"`
	Amenities  []string `json:"amenities"`
	Highlights []string `json:"highlights"`

	PlotSizes     string       `json:"plotSizes"`
	TotalPlots    int          `json:"totalPlots"`
	PriceRange    string       `json:"priceRange"`
	PriceValue    int64        `json:"priceValue"` // rupees, lower bound of PriceRange
	ApprovalType  ApprovalType `json:"approvalType"`
	LegalInfo     string       `json:"legalInfo"`
	ClearTitle    bool         `json:"clearTitle"`
	LoanAvailable *bool        `json:"loanAvailable,omitempty"`

	Image       string       `json:"image"`
	Gallery     []string     `json:"gallery"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the catalog.
func (p Project) Clone() Project {
	out := p
	out.Features = cloneStrings(p.Features)
	out.Amenities = cloneStrings(p.Amenities)
	out.Highlights = cloneStrings(p.Highlights)
	out.Gallery = cloneStrings(p.Gallery)
	if p.LoanAvailable != nil {
		v := *p.LoanAvailable
		out.LoanAvailable = &v
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		out.Coordinates = &c
	}
	return out
}

func (p Project) IsFarmland() bool {
	return p.Type == ProjectTypeFarmland
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
