package scene

import (
	"math"
	"strconv"
	"strings"
)

// exactDigits is enough significant digits to print any float64 exactly.
const exactDigits = 767

// Readout renders the ammeter text line.
func Readout(amps float64) string {
	return "Current: " + Exponential(amps, 2) + " A"
}

// Exponential formats v in scientific notation with the given fraction
// digits, matching JavaScript's Number.prototype.toExponential: exact
// halves round away from zero, negative zero prints as zero and the
// exponent carries an explicit sign and no zero padding.
func Exponential(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if digits < 0 {
		digits = 0
	}
	if v == 0 {
		v = 0 // drops the sign of -0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'e', exactDigits, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	all := strings.Replace(mant, ".", "", 1)

	kept := []byte(all[:digits+1])
	if all[digits+1] >= '5' {
		i := digits
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i >= 0 {
			kept[i]++
		} else {
			kept = append([]byte{'1'}, kept[:digits]...)
			e++
		}
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte(kept[0])
	if digits > 0 {
		b.WriteByte('.')
		b.Write(kept[1:])
	}
	b.WriteByte('e')
	if e < 0 {
		b.WriteByte('-')
		e = -e
	} else {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}
