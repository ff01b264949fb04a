package smartnum

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1500", "1500"},
		{"digit-gap", "1 000", "1000"},
		{"many-gaps", "1 0 0 0", "1000"},
		{"wide-gap", "1  000", "1000"},
		{"tab-gap", "1 \t 000", "1000"},
		{"gap-not-digits", "1. 5", "1. 5"},
		{"wide-gap-not-digits", "1.  5", "1.  5"},
		{"leading-space", " 5", " 5"},
		{"trailing-zeros", "2.500", "2.5"},
		{"all-zeros", "3.000", "3"},
		{"zero", "0.000", "0"},
		{"signed-zeros", "-2.500", "-2.5"},
		{"keep-integer-zeros", "1000", "1000"},
		{"odd-run", "---6", "-6"},
		{"even-run", "--6", "6"},
		{"plus-neutral", "+-6", "-6"},
		{"run-then-zeros", "--2.500", "2.5"},
		{"run-odd-zeros", "---2.500", "-2.5"},
		{"single-minus", "-6", "-6"},
		{"single-plus", "+6", "+6"},
		{"only-signs", "--", ""},
		{"fraction", "6/8", "6/8"},
		{"fraction-gap", "1 000/3", "1000/3"},
		{"garbage", "abc", "abc"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := normalize(c.in); got != c.want {
				t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestNormalizeSignParity(t *testing.T) {
	// A run of n minus signs is negative exactly when n is odd.
	for n := 2; n <= 9; n++ {
		in := strings.Repeat("-", n) + "6"
		want := "6"
		if n%2 == 1 {
			want = "-6"
		}
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
