package smartnum_test

import (
	"testing"

	"github.com/zephyrtronium/smartnum"
)

func TestLatexRendering(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"-5", "-5"},
		{"6/8", `\frac{3}{4}`},
		{"-6/8", `\frac{-3}{4}`},
		{"8/4", "2"},
		{"2.5", "2.5"},
		{"1.5e3", "1500"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in).Latex().String(); got != c.want {
			t.Errorf("Parse(%q).Latex() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuilderComposition(t *testing.T) {
	a := mustParse(t, "6/8").Latex()
	b := mustParse(t, "5").Latex()
	got := a.Plus(b).Equals(smartnum.Text(`\frac{23}{4}`)).String()
	want := `\frac{3}{4} + 5 = \frac{23}{4}`
	if got != want {
		t.Errorf("composition = %q, want %q", got, want)
	}
	// Left-associative, no implicit parenthesization.
	got = a.Plus(b).MultipliedBy(smartnum.Text("x")).String()
	want = `\frac{3}{4} + 5 \cdot x`
	if got != want {
		t.Errorf("composition = %q, want %q", got, want)
	}
	got = a.Plus(b).Wrap(`\left(`, `\right)`).MultipliedBy(smartnum.Text("x")).String()
	want = `\left(\frac{3}{4} + 5\right) \cdot x`
	if got != want {
		t.Errorf("wrapped composition = %q, want %q", got, want)
	}
}

func TestBuilderOperators(t *testing.T) {
	b := smartnum.NewBuilder(smartnum.Text("a"))
	cases := []struct {
		got  string
		want string
	}{
		{b.Plus(smartnum.Text("b")).String(), "a + b"},
		{b.Minus(smartnum.Text("b")).String(), "a - b"},
		{b.MultipliedBy(smartnum.Text("b")).String(), `a \cdot b`},
		{b.DividedBy(smartnum.Text("b")).String(), `a \div b`},
		{b.Equals(smartnum.Text("b")).String(), "a = b"},
		{b.Wrap("(", ")").String(), "(a)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestBuilderImmutable(t *testing.T) {
	n := mustParse(t, "6/8")
	cached := n.Latex()
	_ = cached.Plus(smartnum.Text("1")).Minus(cached)
	if got := n.Latex().String(); got != `\frac{3}{4}` {
		t.Errorf("cached builder changed by composition: %q", got)
	}
	if n.Latex() != cached {
		t.Error("Latex identity lost after composition")
	}
}
