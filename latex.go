package smartnum

// Fragment is the capability of rendering to a textual fragment. Anything
// that supplies text may appear as the right-hand operand of a Builder
// operator.
type Fragment interface {
	Fragment() string
}

// Text is a plain text fragment.
type Text string

// Fragment returns the text unchanged.
func (t Text) Fragment() string { return string(t) }

// Builder composes fragments into a left-associative expression. Operator
// methods append "self op other" with no precedence-aware
// parenthesization; wrap explicitly with Wrap where grouping matters.
// Builders are immutable: every operation returns a new Builder, so a
// Builder may be cached and shared freely.
type Builder struct {
	frag string
}

// NewBuilder wraps a fragment in a Builder.
func NewBuilder(f Fragment) *Builder {
	return &Builder{frag: f.Fragment()}
}

// Fragment returns the composed fragment.
func (b *Builder) Fragment() string { return b.frag }

// String renders the composed fragment.
func (b *Builder) String() string { return b.frag }

func (b *Builder) bin(op string, other Fragment) *Builder {
	return &Builder{frag: b.frag + " " + op + " " + other.Fragment()}
}

// Plus appends an addition of other.
func (b *Builder) Plus(other Fragment) *Builder { return b.bin("+", other) }

// Minus appends a subtraction of other.
func (b *Builder) Minus(other Fragment) *Builder { return b.bin("-", other) }

// MultipliedBy appends a multiplication by other.
func (b *Builder) MultipliedBy(other Fragment) *Builder { return b.bin(`\cdot`, other) }

// DividedBy appends a division by other.
func (b *Builder) DividedBy(other Fragment) *Builder { return b.bin(`\div`, other) }

// Equals appends an equality with other.
func (b *Builder) Equals(other Fragment) *Builder { return b.bin("=", other) }

// Wrap surrounds the current fragment with the given delimiters.
func (b *Builder) Wrap(left, right string) *Builder {
	return &Builder{frag: left + b.frag + right}
}

// A compiler-checked list of fragment suppliers.
var (
	_ Fragment = Text("")
	_ Fragment = (*Builder)(nil)
)

// format renders the canonical value. Precedence: a rational whose reduced
// denominator is not one renders through frac, a rational reduced to an
// integer or an integer value renders as a plain integer string, and a
// decimal renders as its bounded expansion. Callers hold n.mu.
func (n *Number) format(frac func(num, den string) string) string {
	switch n.value.kind {
	case kindRat:
		f := n.fraction(true)
		if f.Den.Cmp(oneInt) == 0 {
			return f.Num.String()
		}
		return frac(f.Num.String(), f.Den.String())
	case kindInt:
		return n.value.i.String()
	default:
		return n.decimal().String()
	}
}

func plainFraction(num, den string) string {
	return num + "/" + den
}

func latexFraction(num, den string) string {
	return `\frac{` + num + `}{` + den + `}`
}
