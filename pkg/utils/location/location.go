// pkg/utils/location/location.go
package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

type City struct {
	Name     string `json:"name"`
	District string `json:"district"`
}

// State is one served region.
type State struct {
	Name      string `json:"name"`
	StateCode string `json:"state_code"` // KA, TN
	Capital   string `json:"capital"`
	Cities    []City `json:"cities"`
}

//go:embed data/regions.json
var regionsJSON []byte

var (
	states   []State
	loadErr  error
	loadOnce sync.Once
)

// Init parses the bundled region list. It is safe to call more than once.
func Init() error {
	loadOnce.Do(func() {
		if err := json.Unmarshal(regionsJSON, &states); err != nil {
			loadErr = fmt.Errorf("decode regions: %w", err)
		}
	})
	return loadErr
}

// GetStates returns every served region.
func GetStates() []State {
	out := make([]State, len(states))
	for i, s := range states {
		out[i] = s
		out[i].Cities = append([]City(nil), s.Cities...)
	}
	return out
}

// GetState looks a region up by name ("Karnataka") or code ("KA").
func GetState(nameOrCode string) (State, bool) {
	for _, s := range GetStates() {
		if s.Name == nameOrCode || s.StateCode == nameOrCode {
			return s, true
		}
	}
	return State{}, false
}

// GetCitiesByState returns the cities with projects in a region.
func GetCitiesByState(stateCode string) []City {
	if s, ok := GetState(stateCode); ok {
		return s.Cities
	}
	return []City{}
}
