package smartnum

import (
	"math/big"
	"sync"

	inf "gopkg.in/inf.v0"
)

// DefaultAccuracy is the number of fractional digits kept by decimal
// expansion and inexact intermediates when no Accuracy option is given.
const DefaultAccuracy = 100

// Option is an option used when constructing a Number.
type Option interface {
	numOption(*Number)
}

type accopt inf.Scale

func (a accopt) numOption(n *Number) { n.accuracy = inf.Scale(a) }

// Accuracy sets the number of fractional digits a Number keeps in its
// decimal expansion and in scientific-notation intermediates. It does not
// bound integer magnitude. Negative values are treated as zero.
func Accuracy(digits int32) Option { return accopt(digits) }

// Number is an immutable parsed number. It owns the original input text
// and the canonical value derived from it, and memoizes each derived view
// the first time it is requested. Once Parse returns, a Number is safe for
// concurrent use.
type Number struct {
	accuracy inf.Scale
	input    string
	value    value

	mu    sync.Mutex
	views views
}

// views is the derived-view cache. Each field is populated at most once,
// under Number.mu.
type views struct {
	float   *big.Float
	decimal *inf.Dec
	frac    [2]*Fraction // raw, simplified
	human   string
	humanOK bool
	latex   *Builder
}

// Parse normalizes and classifies input and returns the resulting Number.
// It fails with InvalidInputError for text outside the recognized grammars
// and DivisionByZeroError for a fraction with a zero-valued denominator;
// on failure there is no partially constructed Number.
func Parse(input string, opts ...Option) (*Number, error) {
	n := &Number{accuracy: DefaultAccuracy, input: input}
	for _, opt := range opts {
		if opt != nil {
			opt.numOption(n)
		}
	}
	if n.accuracy < 0 {
		n.accuracy = 0
	}
	v, err := parseLiteral(normalize(input), n.accuracy)
	if err != nil {
		return nil, err
	}
	n.value = v
	return n, nil
}

// Input returns the original text the Number was parsed from.
func (n *Number) Input() string { return n.input }

// Accuracy returns the number of fractional digits derived views keep.
func (n *Number) Accuracy() int32 { return int32(n.accuracy) }

// Sign reports -1, 0, or +1 by exact comparison.
func (n *Number) Sign() int { return n.value.sign() }

// IsZero reports whether the value is exactly zero. There is no epsilon:
// "0.0000000000001" is not zero.
func (n *Number) IsZero() bool { return n.value.sign() == 0 }

// IsPositive reports whether the value is greater than zero.
func (n *Number) IsPositive() bool { return n.value.sign() > 0 }

// IsNegative reports whether the value is less than zero.
func (n *Number) IsNegative() bool { return n.value.sign() < 0 }

// IsInteger reports whether the value is exactly an integer, checked by a
// zero-rounding conversion that discards no remainder.
func (n *Number) IsInteger() bool { return n.value.isInt() }

// IsFloat reports whether the value has a fractional part.
func (n *Number) IsFloat() bool { return !n.value.isInt() }

// AsInt rounds the value to an arbitrary-precision integer. The default
// policy is inf.RoundFloor; pass any inf.Rounder to override. The result
// is the caller's to modify.
func (n *Number) AsInt(r ...inf.Rounder) *big.Int {
	rounder := inf.RoundFloor
	if len(r) > 0 {
		rounder = r[0]
	}
	return n.value.roundInt(rounder)
}

// AsInt64 rounds like AsInt and converts to int64. It fails with
// PrecisionOverflowError when the rounded magnitude does not fit.
func (n *Number) AsInt64(r ...inf.Rounder) (int64, error) {
	i := n.AsInt(r...)
	if !i.IsInt64() {
		return 0, &PrecisionOverflowError{Value: i, Bits: 64}
	}
	return i.Int64(), nil
}

// AsDecimal returns the value expanded to at most Accuracy fractional
// digits. Integers and in-bounds decimals convert exactly; rationals and
// over-long decimals are rounded half-even at the accuracy limit. The
// result is cached and shared; callers must not modify it.
func (n *Number) AsDecimal() *inf.Dec {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.decimal()
}

// decimal computes or returns the cached decimal expansion. Callers hold
// n.mu.
func (n *Number) decimal() *inf.Dec {
	if n.views.decimal == nil {
		d := n.value.toDec(n.accuracy)
		if d.Scale() > n.accuracy {
			d = new(inf.Dec).Round(d, n.accuracy, inf.RoundHalfEven)
		}
		n.views.decimal = d
	}
	return n.views.decimal
}

// AsFloat returns a floating-point approximation of the value at a binary
// precision derived from Accuracy. The result is cached and shared;
// callers must not modify it.
func (n *Number) AsFloat() *big.Float {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.views.float == nil {
		n.views.float = n.buildFloat()
	}
	return n.views.float
}

func (n *Number) buildFloat() *big.Float {
	prec := floatPrec(n.accuracy)
	switch n.value.kind {
	case kindInt:
		return new(big.Float).SetPrec(prec).SetInt(n.value.i)
	case kindDec:
		f, _, err := big.ParseFloat(n.value.d.String(), 10, prec, big.ToNearestEven)
		if err != nil {
			panic("smartnum: unreadable decimal " + n.value.d.String())
		}
		return f
	case kindRat:
		num := new(big.Float).SetPrec(prec).SetInt(n.value.num)
		den := new(big.Float).SetPrec(prec).SetInt(n.value.den)
		return num.Quo(num, den)
	}
	panic("smartnum: float of invalid value")
}

// Fraction is a numerator and denominator view of a Number. The
// denominator is always positive and the numerator carries the sign.
// Fractions returned by a Number are shared; callers must not modify the
// components.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

func (f *Fraction) String() string {
	return f.Num.String() + "/" + f.Den.String()
}

// AsFraction returns the value as a numerator and denominator pair. With
// no argument the view is simplified unless the number was written as an
// explicit fraction, whose literal components are preserved; an explicit
// true or false overrides that default. Each of the two forms is computed
// once and the same Fraction is returned on every call for it.
//
// An integer i is i/1. A decimal taken simplified is approximated by the
// continued-fraction reducer within its tolerance; taken raw it is the
// exact unscaled value over a power of ten. A rational taken simplified is
// reduced exactly by trial division.
func (n *Number) AsFraction(simplify ...bool) *Fraction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.fraction(n.simplifyDefault(simplify))
}

// AsRational is AsFraction without the wrapper, returning the bare pair.
func (n *Number) AsRational(simplify ...bool) (num, den *big.Int) {
	f := n.AsFraction(simplify...)
	return f.Num, f.Den
}

// simplifyDefault resolves the optional simplify argument: absent means
// simplify, except that an explicit fraction literal keeps its components.
func (n *Number) simplifyDefault(simplify []bool) bool {
	if len(simplify) > 0 {
		return simplify[0]
	}
	return n.value.kind != kindRat
}

// fraction computes or returns the cached fraction view. Callers hold
// n.mu.
func (n *Number) fraction(simplify bool) *Fraction {
	i := 0
	if simplify {
		i = 1
	}
	if f := n.views.frac[i]; f != nil {
		return f
	}
	f := n.buildFraction(simplify)
	n.views.frac[i] = f
	return f
}

func (n *Number) buildFraction(simplify bool) *Fraction {
	switch n.value.kind {
	case kindInt:
		return &Fraction{Num: new(big.Int).Set(n.value.i), Den: big.NewInt(1)}
	case kindDec:
		if !simplify {
			return &Fraction{Num: new(big.Int).Set(n.value.d.UnscaledBig()), Den: exp10(n.value.d.Scale())}
		}
		num, den := reduceApprox(n.value.d, approxTolerance)
		return &Fraction{Num: num, Den: den}
	case kindRat:
		if !simplify {
			return &Fraction{Num: new(big.Int).Set(n.value.num), Den: new(big.Int).Set(n.value.den)}
		}
		// The denominator is nonzero by construction.
		num, den, _ := reduceExact(n.value.num, n.value.den)
		return &Fraction{Num: num, Den: den}
	}
	panic("smartnum: fraction of invalid value")
}

// String renders the number in human form: a fraction in lowest terms
// when the value is rational with a denominator other than one, else a
// plain integer string, else a decimal expansion bounded by Accuracy. The
// rendering is computed once per Number.
func (n *Number) String() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.views.humanOK {
		n.views.human = n.format(plainFraction)
		n.views.humanOK = true
	}
	return n.views.human
}

// Latex returns the value rendered as a LaTeX fragment wrapped in a
// composable Builder. The same Builder is returned on every call; Builder
// operations never modify their receiver, so composing from it is safe.
func (n *Number) Latex() *Builder {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.views.latex == nil {
		n.views.latex = &Builder{frag: n.format(latexFraction)}
	}
	return n.views.latex
}
