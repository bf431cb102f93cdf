package config

import (
	"sort"

	"github.com/san-kum/odelab/internal/dynamo"
)

var Presets = map[string]dynamo.Problem{
	// The parameters the comparison window opens with.
	"default": dynamo.DefaultProblem(),
	// One Euler step from (1, 8); the exact value at x=2 is about 137.9.
	"scenario": {X0: 1, Y0: 8, Xn: 2, Steps: 2, N0: 2, N: 20},
	// A short interval where all three methods are in their asymptotic regime.
	"short":    {X0: 1, Y0: 2, Xn: 1.5, Steps: 20, N0: 20, N: 200},
	"negative": {X0: -3, Y0: 1, Xn: -1, Steps: 20, N0: 10, N: 100},
	// The cube root of a negative y0 is NaN, so every series faults.
	"fault": {X0: 1, Y0: -1, Xn: 2, Steps: 10, N0: 10, N: 50},
}

func GetPreset(name string) (dynamo.Problem, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
