package smartnum

import (
	"math/big"

	inf "gopkg.in/inf.v0"
)

// kind discriminates the canonical forms a parsed number may take.
type kind int8

const (
	kindNone kind = iota

	kindInt // arbitrary-precision integer
	kindDec // scaled decimal, unscaled over a power of ten
	kindRat // numerator and denominator, denominator positive
)

// value is the canonical form of a parsed number. Exactly one payload
// group is set, selected by kind. A kindRat value keeps the numerator and
// denominator as written, possibly unreduced; reduction is a property of a
// view, not of the stored value.
type value struct {
	kind kind

	i   *big.Int // kindInt
	d   *inf.Dec // kindDec, scale > 0
	num *big.Int // kindRat
	den *big.Int // kindRat, always > 0
}

var (
	oneInt = big.NewInt(1)
	tenInt = big.NewInt(10)
)

// exp10 returns 10 to the power s for s >= 0.
func exp10(s inf.Scale) *big.Int {
	return new(big.Int).Exp(tenInt, big.NewInt(int64(s)), nil)
}

// decOf builds a decimal from an unscaled integer and a scale. The
// argument is copied, not aliased.
func decOf(unscaled *big.Int, scale inf.Scale) *inf.Dec {
	return new(inf.Dec).SetScale(scale).SetUnscaledBig(unscaled)
}

// sign reports -1, 0, or +1 exactly, with no epsilon.
func (v value) sign() int {
	switch v.kind {
	case kindInt:
		return v.i.Sign()
	case kindDec:
		return v.d.Sign()
	case kindRat:
		// The denominator is positive, so the numerator decides.
		return v.num.Sign()
	}
	panic("smartnum: sign of invalid value")
}

// isInt reports whether the value is exactly an integer, checked by a
// zero-scale conversion that discards no remainder.
func (v value) isInt() bool {
	switch v.kind {
	case kindInt:
		return true
	case kindDec:
		r := new(inf.Dec).Round(v.d, 0, inf.RoundDown)
		return r.Cmp(v.d) == 0
	case kindRat:
		return new(big.Int).Rem(v.num, v.den).Sign() == 0
	}
	panic("smartnum: isInt of invalid value")
}

// toDec converts the value to a decimal. Integers and decimals convert
// exactly; a rational is rounded half-even at the given number of
// fractional digits.
func (v value) toDec(scale inf.Scale) *inf.Dec {
	switch v.kind {
	case kindInt:
		return decOf(v.i, 0)
	case kindDec:
		return new(inf.Dec).Set(v.d)
	case kindRat:
		return new(inf.Dec).QuoRound(decOf(v.num, 0), decOf(v.den, 0), scale, inf.RoundHalfEven)
	}
	panic("smartnum: toDec of invalid value")
}

// roundInt rounds the value to an integer under the given rounding policy.
func (v value) roundInt(r inf.Rounder) *big.Int {
	switch v.kind {
	case kindInt:
		return new(big.Int).Set(v.i)
	case kindDec:
		z := new(inf.Dec).Round(v.d, 0, r)
		return z.UnscaledBig()
	case kindRat:
		z := new(inf.Dec).QuoRound(decOf(v.num, 0), decOf(v.den, 0), 0, r)
		return z.UnscaledBig()
	}
	panic("smartnum: roundInt of invalid value")
}
