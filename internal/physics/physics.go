// Package physics holds the pure photoelectric formulas and the fixed
// emitter material table.
package physics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Planck       = 6.626e-34   // J·s
	SpeedOfLight = 3e8         // m/s
	ElectronVolt = 1.60218e-19 // J per eV
	NanometreToM = 1e-9
)

// ErrUnknownMaterial is returned when a material key is not in the table.
var ErrUnknownMaterial = errors.New("unknown material")

// Material is an emitter surface.
type Material struct {
	Name           string
	WorkFunctionEV float64
	PlateColor     colorful.Color
}

// Listed in UI cycling order.
var materials = []Material{
	{Name: "sodium", WorkFunctionEV: 2.28, PlateColor: mustHex("#ffd700")},   // gold
	{Name: "zinc", WorkFunctionEV: 4.3, PlateColor: mustHex("#c0c0c0")},      // silver
	{Name: "copper", WorkFunctionEV: 4.7, PlateColor: mustHex("#a52a2a")},    // brown
	{Name: "platinum", WorkFunctionEV: 6.35, PlateColor: mustHex("#d3d3d3")}, // lightgray
}

// Lookup returns the material registered under name.
func Lookup(name string) (Material, error) {
	for _, m := range materials {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Names returns the material keys in cycling order.
func Names() []string {
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return names
}

// Next returns the key following name in cycling order, wrapping around.
// An unknown name yields the first material.
func Next(name string) string {
	for i, m := range materials {
		if m.Name == name {
			return materials[(i+1)%len(materials)].Name
		}
	}
	return materials[0].Name
}

// PhotonEnergy returns the energy in joules of a photon of the given
// wavelength in nanometres. Non-positive input is not rejected.
func PhotonEnergy(wavelengthNm float64) float64 {
	return (Planck * SpeedOfLight) / (wavelengthNm * NanometreToM)
}

// WorkFunctionJoules converts the material's work function to joules.
func WorkFunctionJoules(m Material) float64 {
	return m.WorkFunctionEV * ElectronVolt
}

// CanEmit reports whether a photon of energy frees an electron.
func CanEmit(energy, workFunction float64) bool {
	return energy > workFunction
}

// CurrentAmps is the meter reading. scale is the cosmetic constant that
// maps surplus energy times intensity onto plausible amperes.
func CurrentAmps(energy, workFunction, intensity, scale float64) float64 {
	if !CanEmit(energy, workFunction) {
		return 0
	}
	return (energy - workFunction) * intensity * scale
}

// ParseNumber reads the longest numeric prefix of s the way a browser's
// parseFloat does. Anything unparsable becomes NaN rather than an error.
func ParseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	sign := ""
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		sign, rest = rest[:1], rest[1:]
	}
	if strings.HasPrefix(rest, "Infinity") {
		if sign == "-" {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	end := 0
	digits := 0
	for end < len(rest) && isDigit(rest[end]) {
		end++
		digits++
	}
	if end < len(rest) && rest[end] == '.' {
		end++
		for end < len(rest) && isDigit(rest[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	if end < len(rest) && (rest[end] == 'e' || rest[end] == 'E') {
		exp := end + 1
		if exp < len(rest) && (rest[exp] == '+' || rest[exp] == '-') {
			exp++
		}
		expDigits := exp
		for expDigits < len(rest) && isDigit(rest[expDigits]) {
			expDigits++
		}
		if expDigits > exp {
			end = expDigits
		}
	}

	v, err := strconv.ParseFloat(sign+rest[:end], 64)
	if err != nil {
		// out of range still carries ±Inf or 0 from ParseFloat
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// isSpace matches the whitespace parseFloat skips: Unicode space
// separators, line terminators and the byte order mark, but not NEL.
func isSpace(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}
