// Package smartnum parses textual real numbers into canonical
// arbitrary-precision values and derives consistent views from them.
//
// Input may be a plain integer or decimal ("1500", "2.5"), scientific
// notation ("1.5e3"), an explicit fraction ("6/8"), or messier text with
// digit-group spacing and sign runs ("1 000", "---6"). Parsing normalizes
// the text, classifies it, and stores exactly one canonical value per
// Number. Views are derived on demand and memoized: integer rounding under
// a caller-chosen policy, decimal expansion bounded by the configured
// accuracy, fractions in raw or lowest terms, and human or LaTeX strings.
//
// The arithmetic itself is delegated: integers and fraction components are
// math/big integers, decimals are inf.v0 scaled decimals, and fractional
// powers of ten go through bigfloat. smartnum only decides what the text
// means and keeps the derived views consistent with each other.
//
package smartnum
