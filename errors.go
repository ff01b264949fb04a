package smartnum

import (
	"math/big"
	"strconv"
)

// InvalidInputError indicates input text that matches none of the
// recognized number grammars after normalization.
type InvalidInputError struct {
	// Input is the normalized text that failed to parse.
	Input string
}

func (err *InvalidInputError) Error() string {
	return "invalid number: " + strconv.Quote(err.Input)
}

// DivisionByZeroError indicates an explicit fraction literal with a
// zero-valued denominator, or a zero denominator reached during reduction.
type DivisionByZeroError struct {
	// Input is the text or rendered value whose denominator is zero.
	Input string
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.Quote(err.Input)
}

// PrecisionOverflowError indicates that a rounded value does not fit the
// requested fixed-width integer type.
type PrecisionOverflowError struct {
	// Value is the rounded value that was to be converted.
	Value *big.Int
	// Bits is the width of the conversion target.
	Bits int
}

func (err *PrecisionOverflowError) Error() string {
	return "value " + err.Value.String() + " overflows int" + strconv.Itoa(err.Bits)
}

var (
	_ error = (*InvalidInputError)(nil)
	_ error = (*DivisionByZeroError)(nil)
	_ error = (*PrecisionOverflowError)(nil)
)
