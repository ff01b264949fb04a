package smartnum

import (
	"math/big"
	"regexp"

	"github.com/zephyrtronium/bigfloat"
	inf "gopkg.in/inf.v0"
)

// The number grammars overlap: "1.5" is a prefix of "1.5e3", and every
// literal is a component of some fraction. Classification therefore runs
// whole-string patterns in a fixed priority order and the first full match
// wins: direct literal, then scientific notation, then explicit fraction,
// then a residual sign-run collapse. The component groups below are
// deliberately loose; each is validated by the decimal scanner, and a
// classifier whose components fail to scan is treated as a non-match.
var (
	sciPat  = regexp.MustCompile(`^([-+]?[0-9.]+)[eE]([-+]?[0-9.]+)$`)
	fracPat = regexp.MustCompile(`^([-+]?[0-9.]+)[ \t]*/[ \t]*([-+]?[0-9.]+)$`)
)

// maxExponent bounds the magnitude of a scientific-notation exponent.
// Beyond it the expanded digit string would be unreasonably large, so the
// literal is rejected rather than expanded.
const maxExponent = 1 << 20

// parseLiteral classifies normalized text and produces its canonical
// value. acc bounds the fractional digits kept by inexact intermediates.
func parseLiteral(s string, acc inf.Scale) (value, error) {
	if d, ok := new(inf.Dec).SetString(s); ok {
		return decValue(d), nil
	}
	if m := sciPat.FindStringSubmatch(s); m != nil {
		if v, ok := parseScientific(m[1], m[2], acc); ok {
			return v, nil
		}
	}
	if m := fracPat.FindStringSubmatch(s); m != nil {
		x, okx := new(inf.Dec).SetString(m[1])
		y, oky := new(inf.Dec).SetString(m[2])
		if okx && oky {
			if y.Sign() == 0 {
				return value{}, &DivisionByZeroError{Input: s}
			}
			num, den := crossScale(x, y)
			return value{kind: kindRat, num: num, den: den}, nil
		}
	}
	// A sign run that survived normalization, e.g. because a classifier
	// component carried one. Collapse and retry before giving up.
	if signRun.MatchString(s) {
		return parseLiteral(normalize(s), acc)
	}
	return value{}, &InvalidInputError{Input: s}
}

// decValue stores a scanned decimal in canonical form: trailing fractional
// zeros are dropped, and a value whose scale reaches zero is an integer.
func decValue(d *inf.Dec) value {
	u := new(big.Int).Set(d.UnscaledBig())
	s := d.Scale()
	for s > 0 {
		q, r := new(big.Int).QuoRem(u, tenInt, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		u, s = q, s-1
	}
	if s <= 0 {
		if s < 0 {
			u.Mul(u, exp10(-s))
		}
		return value{kind: kindInt, i: u}
	}
	return value{kind: kindDec, d: decOf(u, s)}
}

// parseScientific computes mantissa times ten to the exponent. An integer
// exponent shifts the mantissa's scale exactly; a fractional exponent goes
// through bigfloat.Pow at a precision derived from acc, and the result is
// kept to acc fractional digits. Reports false when either component is
// not a decimal literal or the exponent is out of range.
func parseScientific(mant, exp string, acc inf.Scale) (value, bool) {
	m, ok := new(inf.Dec).SetString(mant)
	if !ok {
		return value{}, false
	}
	e, ok := new(inf.Dec).SetString(exp)
	if !ok {
		return value{}, false
	}
	if ei, ok := intVal(e); ok {
		if !ei.IsInt64() || ei.Int64() > maxExponent || ei.Int64() < -maxExponent {
			return value{}, false
		}
		return decValue(decOf(m.UnscaledBig(), m.Scale()-inf.Scale(ei.Int64()))), true
	}
	// A fractional exponent is bounded the same way. Its integer part
	// stands in for the whole exponent; the fraction contributes less than
	// one further digit to the expansion.
	et := new(inf.Dec).Round(e, 0, inf.RoundDown).UnscaledBig()
	if !et.IsInt64() || et.Int64() > maxExponent || et.Int64() < -maxExponent {
		return value{}, false
	}
	prec := floatPrec(acc)
	mf, _, err := big.ParseFloat(mant, 10, prec, big.ToNearestEven)
	if err != nil {
		return value{}, false
	}
	ef, _, err := big.ParseFloat(exp, 10, prec, big.ToNearestEven)
	if err != nil {
		return value{}, false
	}
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	p := bigfloat.Pow(new(big.Float).SetPrec(prec), ten, ef)
	p.Mul(p, mf)
	d, ok := new(inf.Dec).SetString(p.Text('f', int(acc)))
	if !ok {
		return value{}, false
	}
	return decValue(d), true
}

// crossScale converts x over y, both scanned decimals, into an exact
// integer pair with a positive denominator. Scaling each side by the
// other's power of ten keeps the division out of any rounded decimal
// intermediate.
func crossScale(x, y *inf.Dec) (num, den *big.Int) {
	num = new(big.Int).Set(x.UnscaledBig())
	den = new(big.Int).Set(y.UnscaledBig())
	num.Mul(num, exp10(y.Scale()))
	den.Mul(den, exp10(x.Scale()))
	if den.Sign() < 0 {
		den.Neg(den)
		num.Neg(num)
	}
	return num, den
}

// intVal returns the exact integer value of d and whether it has one.
func intVal(d *inf.Dec) (*big.Int, bool) {
	r := new(inf.Dec).Round(d, 0, inf.RoundDown)
	if r.Cmp(d) != 0 {
		return nil, false
	}
	return r.UnscaledBig(), true
}

// floatPrec converts a count of decimal digits into a binary precision
// with headroom.
func floatPrec(acc inf.Scale) uint {
	return uint(acc)*4 + 64
}
