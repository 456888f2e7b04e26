// Package physics holds the closed-form formula directory behind the
// physics command. Every formula is a pure function over numeric
// arguments; bad input comes back as an error, never a panic.
package physics

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/mathexpr"
)

const (
	// Gravity is standard surface gravity in m/s^2.
	Gravity = 9.81

	// GravitationalConstant is G in N·m^2/kg^2.
	GravitationalConstant = 6.674e-11
)

// Formula describes one entry in the directory.
type Formula struct {
	Name        string
	Usage       string
	Description string
	ArgCount    int
	compute     func(args []float64) []string
}

var registry = map[string]Formula{
	"projectile": {
		Name:        "projectile",
		Usage:       "physics projectile <velocity> <angle>",
		Description: "Projectile range, max height and flight time (v in m/s, angle in degrees)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			v, deg := a[0], a[1]
			rad := deg * math.Pi / 180
			rng := v * v * math.Sin(2*rad) / Gravity
			height := v * v * math.Sin(rad) * math.Sin(rad) / (2 * Gravity)
			flight := 2 * v * math.Sin(rad) / Gravity
			return []string{
				fmt.Sprintf("Range: %s m", round2(rng)),
				fmt.Sprintf("Max height: %s m", round2(height)),
				fmt.Sprintf("Flight time: %s s", round2(flight)),
			}
		},
	},
	"force": {
		Name:        "force",
		Usage:       "physics force <mass> <acceleration>",
		Description: "Newton's second law, F = m*a (kg, m/s^2)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			return []string{fmt.Sprintf("Force: %s N", round2(a[0]*a[1]))}
		},
	},
	"energy": {
		Name:        "energy",
		Usage:       "physics energy <mass> <velocity>",
		Description: "Kinetic energy, E = 1/2*m*v^2 (kg, m/s)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			return []string{fmt.Sprintf("Kinetic energy: %s J", round2(0.5*a[0]*a[1]*a[1]))}
		},
	},
	"power": {
		Name:        "power",
		Usage:       "physics power <work> <time>",
		Description: "Power, P = W/t (J, s)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			if a[1] == 0 {
				return []string{"Power: undefined (zero time)"}
			}
			return []string{fmt.Sprintf("Power: %s W", round2(a[0]/a[1]))}
		},
	},
	"ohm": {
		Name:        "ohm",
		Usage:       "physics ohm <voltage> <resistance>",
		Description: "Ohm's law current, I = V/R (V, ohm)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			if a[1] == 0 {
				return []string{"Current: undefined (zero resistance)"}
			}
			return []string{fmt.Sprintf("Current: %s A", round2(a[0]/a[1]))}
		},
	},
	"gravity": {
		Name:        "gravity",
		Usage:       "physics gravity <mass1> <mass2> <distance>",
		Description: "Newtonian gravitational force between two masses (kg, kg, m)",
		ArgCount:    3,
		compute: func(a []float64) []string {
			if a[2] == 0 {
				return []string{"Force: undefined (zero distance)"}
			}
			f := GravitationalConstant * a[0] * a[1] / (a[2] * a[2])
			return []string{fmt.Sprintf("Gravitational force: %.4e N", f)}
		},
	},
	"wavelength": {
		Name:        "wavelength",
		Usage:       "physics wavelength <speed> <frequency>",
		Description: "Wavelength, lambda = v/f (m/s, Hz)",
		ArgCount:    2,
		compute: func(a []float64) []string {
			if a[1] == 0 {
				return []string{"Wavelength: undefined (zero frequency)"}
			}
			return []string{fmt.Sprintf("Wavelength: %s m", round2(a[0]/a[1]))}
		},
	},
	"pendulum": {
		Name:        "pendulum",
		Usage:       "physics pendulum <length>",
		Description: "Simple pendulum period, T = 2*pi*sqrt(L/g) (m)",
		ArgCount:    1,
		compute: func(a []float64) []string {
			if a[0] < 0 {
				return []string{"Period: undefined (negative length)"}
			}
			return []string{fmt.Sprintf("Period: %s s", round2(2*math.Pi*math.Sqrt(a[0]/Gravity)))}
		},
	},
}

// Directory returns the formula listing sorted by name, one line per
// formula, suitable for direct terminal output.
func Directory() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "Available formulas:")
	for _, name := range names {
		f := registry[name]
		lines = append(lines, fmt.Sprintf("  %-12s %s", f.Name, f.Description))
	}
	return lines
}

// Names returns the sorted formula names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute runs the named formula over raw string arguments. Unknown
// names, wrong arity and non-numeric arguments all come back as typed
// errors.
func Compute(name string, rawArgs []string) ([]string, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.NotFoundf("unknown formula %q", name)
	}

	if len(rawArgs) != f.ArgCount {
		return nil, errors.Usagef("%s (expected %d numeric arguments, got %d)",
			f.Usage, f.ArgCount, len(rawArgs))
	}

	args := make([]float64, len(rawArgs))
	for i, raw := range rawArgs {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Usagef("%s (argument %q is not a number)", f.Usage, raw)
		}
		args[i] = v
	}

	return f.compute(args), nil
}

func round2(v float64) string {
	return mathexpr.Format(math.Round(v*100) / 100)
}
