package physics

import (
	"errors"
	"math"
	"testing"
)

const scale = 1e16

func approx(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Abs(b)
}

func TestPhotonEnergy(t *testing.T) {
	tests := []struct {
		name       string
		wavelength float64
		want       float64
	}{
		{"Violet", 400, 4.9695e-19},
		{"Red", 700, 2.8397e-19},
		{"Infrared", 800, 2.48475e-19},
		{"Ultraviolet", 200, 9.939e-19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhotonEnergy(tt.wavelength)
			exact := Planck * SpeedOfLight / (tt.wavelength * 1e-9)
			if got != exact {
				t.Errorf("Expected exactly %g, got %g", exact, got)
			}
			if !approx(got, tt.want, 1e-4) {
				t.Errorf("Expected ~%g, got %g", tt.want, got)
			}
		})
	}
}

func TestPhotonEnergyStrictlyDecreasing(t *testing.T) {
	prev := PhotonEnergy(1)
	for w := 2.0; w <= 2000; w += 7.5 {
		e := PhotonEnergy(w)
		if !(e < prev) {
			t.Fatalf("Expected energy at %gnm (%g) below previous (%g)", w, e, prev)
		}
		prev = e
	}
}

func TestPhotonEnergyNonPositive(t *testing.T) {
	if e := PhotonEnergy(0); !math.IsInf(e, 1) {
		t.Errorf("Expected +Inf at zero wavelength, got %g", e)
	}
	if e := PhotonEnergy(math.NaN()); !math.IsNaN(e) {
		t.Errorf("Expected NaN for NaN wavelength, got %g", e)
	}
}

func TestWorkFunctionJoules(t *testing.T) {
	tests := []struct {
		name string
		ev   float64
	}{
		{"sodium", 2.28},
		{"zinc", 4.3},
		{"copper", 4.7},
		{"platinum", 6.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if m.WorkFunctionEV != tt.ev {
				t.Errorf("Expected %g eV, got %g", tt.ev, m.WorkFunctionEV)
			}
			if got, want := WorkFunctionJoules(m), tt.ev*1.60218e-19; got != want {
				t.Errorf("Expected %g J, got %g", want, got)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("unobtainium")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("Expected ErrUnknownMaterial, got %v", err)
	}
}

func TestNamesAndNext(t *testing.T) {
	names := Names()
	want := []string{"sodium", "zinc", "copper", "platinum"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected names[%d] = %s, got %s", i, want[i], names[i])
		}
		if got := Next(want[i]); got != want[(i+1)%len(want)] {
			t.Errorf("Expected Next(%s) = %s, got %s", want[i], want[(i+1)%len(want)], got)
		}
	}
	if got := Next("nope"); got != "sodium" {
		t.Errorf("Expected unknown material to cycle to sodium, got %s", got)
	}
}

func TestCanEmit(t *testing.T) {
	if !CanEmit(2, 1) {
		t.Error("Expected emission when energy exceeds work function")
	}
	if CanEmit(1, 1) {
		t.Error("Expected no emission at equality")
	}
	if CanEmit(1, 2) {
		t.Error("Expected no emission below threshold")
	}
	if CanEmit(math.NaN(), 1) {
		t.Error("Expected no emission for NaN energy")
	}
}

func TestCurrentAmps(t *testing.T) {
	if got := CurrentAmps(1, 2, 50, scale); got != 0 {
		t.Errorf("Expected zero below threshold, got %g", got)
	}
	if got := CurrentAmps(2, 2, 50, scale); got != 0 {
		t.Errorf("Expected zero at threshold, got %g", got)
	}

	e, wf := 5e-19, 3e-19
	base := CurrentAmps(e, wf, 10, scale)
	if want := (e - wf) * 10 * scale; base != want {
		t.Errorf("Expected %g, got %g", want, base)
	}
	if got := CurrentAmps(e, wf, 20, scale); !approx(got, 2*base, 1e-12) {
		t.Errorf("Expected current to double with intensity, got %g vs %g", got, base)
	}
	if got := CurrentAmps(wf+2*(e-wf), wf, 10, scale); !approx(got, 2*base, 1e-12) {
		t.Errorf("Expected current to double with surplus energy, got %g vs %g", got, base)
	}
	if got := CurrentAmps(e, wf, math.NaN(), scale); !math.IsNaN(got) {
		t.Errorf("Expected NaN intensity to pass through, got %g", got)
	}
}

func TestScenarios(t *testing.T) {
	sodium, _ := Lookup("sodium")
	e := PhotonEnergy(400)
	wf := WorkFunctionJoules(sodium)
	if !approx(e, 4.969e-19, 1e-3) || !approx(wf, 3.654e-19, 1e-3) {
		t.Errorf("Unexpected sodium/400nm values: e=%g wf=%g", e, wf)
	}
	if !CanEmit(e, wf) {
		t.Error("Expected 400nm light to free electrons from sodium")
	}

	platinum, _ := Lookup("platinum")
	e = PhotonEnergy(800)
	wf = WorkFunctionJoules(platinum)
	if !approx(e, 2.485e-19, 1e-3) || !approx(wf, 1.0174e-18, 1e-3) {
		t.Errorf("Unexpected platinum/800nm values: e=%g wf=%g", e, wf)
	}
	if CanEmit(e, wf) || CurrentAmps(e, wf, 100, scale) != 0 {
		t.Error("Expected 800nm light to free nothing from platinum")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"400", 400},
		{"  12.5", 12.5},
		{"12abc", 12},
		{"-3", -3},
		{".5", 0.5},
		{"1e3", 1000},
		{"2e", 2},
		{"4e-2x", 0.04},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e999", math.Inf(1)},
		{"\u00a0400", 400},
		{"\u2028\u2029 7", 7},
		{"\ufeff-2.5", -2.5},
		{"\u3000\u20091e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseNumber(tt.in); got != tt.want {
				t.Errorf("Expected %g, got %g", tt.want, got)
			}
		})
	}

	for _, in := range []string{"", "abc", ".", "-", "e5", "\u0085 5", "\u200b5"} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Errorf("Expected NaN for %q, got %g", in, got)
		}
	}
}

func TestPlateColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"sodium", 0xff, 0xd7, 0x00},
		{"zinc", 0xc0, 0xc0, 0xc0},
		{"copper", 0xa5, 0x2a, 0x2a},
		{"platinum", 0xd3, 0xd3, 0xd3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			r, g, b := m.PlateColor.RGB255()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected #%02x%02x%02x, got #%02x%02x%02x", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}
