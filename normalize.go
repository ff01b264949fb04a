package smartnum

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// fracZeros matches a plain decimal literal whose fraction part ends in
	// at least one zero.
	fracZeros = regexp.MustCompile(`^[-+]?[0-9]*\.[0-9]*0$`)
	// signRun matches two or more leading sign characters.
	signRun = regexp.MustCompile(`^[-+]{2,}`)
)

// normalize cleans raw input ahead of classification. It removes whitespace
// standing strictly between two digits, strips trailing zeros from the
// fraction part of a decimal literal along with a then-dangling decimal
// point, and collapses a leading run of signs by parity of its minus signs,
// re-normalizing the remainder. It never fails; anything it cannot make
// sense of is left for the parser to reject.
func normalize(raw string) string {
	s := stripDigitGaps(raw)
	if fracZeros.MatchString(s) {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if run := signRun.FindString(s); run != "" {
		if strings.Count(run, "-")%2 == 0 {
			return normalize(s[len(run):])
		}
		return "-" + normalize(s[len(run):])
	}
	return s
}

// stripDigitGaps removes each whitespace run that has a digit immediately
// on both sides, so that "1 000" and "1  000" both read as "1000". All
// other whitespace is preserved.
func stripDigitGaps(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		if !unicode.IsSpace(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		if i > 0 && j < len(rs) && isDigit(rs[i-1]) && isDigit(rs[j]) {
			i = j
			continue
		}
		for ; i < j; i++ {
			b.WriteRune(rs[i])
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
