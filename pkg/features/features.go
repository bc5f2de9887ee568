package features

import "sungraze_backend/pkg/config"

type Feature string

const (
	EnquiryForm      Feature = "enquiry_form"
	FarmlandSections Feature = "farmland_sections"
	EnquiryAckEmail  Feature = "enquiry_ack_email"
)

// Set records which optional features are switched on.
type Set struct {
	enabled map[Feature]bool
}

func New(enabled ...Feature) Set {
	s := Set{enabled: make(map[Feature]bool, len(enabled))}
	for _, f := range enabled {
		s.enabled[f] = true
	}
	return s
}

// FromConfig reads the FEATURE_* switches.
func FromConfig(cfg config.FeatureConfig) Set {
	s := New()
	s.enabled[EnquiryForm] = cfg.EnquiryForm
	s.enabled[FarmlandSections] = cfg.FarmlandSections
	s.enabled[EnquiryAckEmail] = cfg.EnquiryAckEmail
	return s
}

// CanUseFeature reports whether f is on. Unknown features are off.
func (s Set) CanUseFeature(f Feature) bool {
	return s.enabled[f]
}

// Enabled lists the features that are on, for the health endpoint.
func (s Set) Enabled() []Feature {
	out := []Feature{}
	for _, f := range []Feature{EnquiryForm, FarmlandSections, EnquiryAckEmail} {
		if s.enabled[f] {
			out = append(out, f)
		}
	}
	return out
}
