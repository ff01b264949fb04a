package smartnum

import (
	"math/big"
	"strconv"

	inf "gopkg.in/inf.v0"
)

// approxTolerance is the default relative tolerance for decimal-to-fraction
// approximation.
const approxTolerance = 1e-8

// approxCap bounds the number of continued-fraction convergents computed by
// reduceApprox. Every tolerance reachable at the working precision
// converges well before the cap; hitting it returns the best convergent
// found so far.
const approxCap = 64

// approxFloor is the magnitude below which reduceApprox skips the
// continued-fraction loop. Long runs of leading fractional zeros stall the
// recurrence near the tolerance floor, and such values are represented
// exactly by their scale anyway.
var approxFloor = inf.NewDec(1, 6)

// reduceExact returns n over d in lowest terms with a positive
// denominator. Common factors are found by trial division: primes from the
// shared table in ascending order while the candidate is within both
// operands, then successive odd integers past the table's end. The
// fallback terminates because the greatest common divisor is finite.
func reduceExact(n, d *big.Int) (*big.Int, *big.Int, error) {
	if d.Sign() == 0 {
		return nil, nil, &DivisionByZeroError{Input: n.String() + "/0"}
	}
	num := new(big.Int).Set(n)
	den := new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return num, den.Set(oneInt), nil
	}
	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}
	divideCommon(num, den)
	if neg {
		num.Neg(num)
	}
	return num, den, nil
}

// oddLimit bounds the odd-candidate fallback in divideCommon. Operands
// still sharing a factor past the limit are finished with one exact gcd
// division so the lowest-terms postcondition holds without an unbounded
// scan.
const oddLimit = 1 << 21

// divideCommon strips every common prime factor from a and b in place.
// Both must be positive.
func divideCommon(a, b *big.Int) {
	var (
		p  = new(big.Int)
		qa = new(big.Int)
		ra = new(big.Int)
		qb = new(big.Int)
		rb = new(big.Int)
	)
	next := candidates()
	for a.Cmp(oneInt) != 0 && b.Cmp(oneInt) != 0 {
		c := next()
		if c > oddLimit {
			g := new(big.Int).GCD(nil, nil, a, b)
			a.Quo(a, g)
			b.Quo(b, g)
			return
		}
		p.SetInt64(c)
		if p.Cmp(a) > 0 || p.Cmp(b) > 0 {
			return
		}
		for {
			qa.QuoRem(a, p, ra)
			if ra.Sign() != 0 {
				break
			}
			qb.QuoRem(b, p, rb)
			if rb.Sign() != 0 {
				break
			}
			a.Set(qa)
			b.Set(qb)
		}
	}
}

// candidates yields trial divisors: the prime table in order, then
// successive odd integers past its end.
func candidates() func() int64 {
	table := primeTable()
	i := 0
	n := table[len(table)-1]
	return func() int64 {
		if i < len(table) {
			p := table[i]
			i++
			return p
		}
		n += 2
		return n
	}
}

// reduceApprox finds a reduced fraction within a relative tolerance of d
// using the classical best-rational-approximation recurrence. It never
// fails: values within tol of zero become 0/1, values below the magnitude
// floor are taken directly from their scale representation, and if the
// convergent cap is reached the best convergent so far is returned. The
// caller may compare the result against d to inspect the achieved
// accuracy. The returned denominator is positive and the pair is coprime.
func reduceApprox(d *inf.Dec, tol float64) (*big.Int, *big.Int) {
	abs := decAbs(d)
	if d.Sign() == 0 || abs.Cmp(decFloat(tol)) < 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	if abs.Cmp(approxFloor) < 0 {
		num, den, _ := reduceExact(d.UnscaledBig(), exp10(d.Scale()))
		return num, den
	}
	prec := uint(len(abs.String()))*4 + 64
	x, _, err := big.ParseFloat(abs.String(), 10, prec, big.ToNearestEven)
	if err != nil {
		// The decimal's own rendering always scans.
		panic("smartnum: unreadable decimal " + abs.String())
	}
	var (
		h, hprev = big.NewInt(1), big.NewInt(0)
		k, kprev = big.NewInt(0), big.NewInt(1)
		a        = new(big.Int)
		b        = new(big.Float).SetPrec(prec).Set(x)
		tolF     = new(big.Float).SetPrec(prec).SetFloat64(tol)
		bound    = new(big.Float).SetPrec(prec).Mul(x, new(big.Float).SetFloat64(tol))
		frac     = new(big.Float).SetPrec(prec)
		conv     = new(big.Float).SetPrec(prec)
		t        = new(big.Float).SetPrec(prec)
	)
	for i := 0; i < approxCap; i++ {
		b.Int(a)
		h, hprev = new(big.Int).Add(new(big.Int).Mul(a, h), hprev), h
		k, kprev = new(big.Int).Add(new(big.Int).Mul(a, k), kprev), k
		if k.Sign() != 0 {
			conv.Quo(t.SetInt(h), new(big.Float).SetPrec(prec).SetInt(k))
			conv.Sub(conv, x)
			if conv.Abs(conv).Cmp(bound) <= 0 {
				break
			}
		}
		frac.Sub(b, t.SetInt(a))
		if frac.Cmp(tolF) < 0 {
			break
		}
		b.Quo(new(big.Float).SetPrec(prec).SetInt64(1), frac)
	}
	if d.Sign() < 0 {
		h.Neg(h)
	}
	return h, k
}

// decAbs returns a fresh copy of d with a nonnegative sign.
func decAbs(d *inf.Dec) *inf.Dec {
	if d.Sign() < 0 {
		return new(inf.Dec).Neg(d)
	}
	return new(inf.Dec).Set(d)
}

// decFloat renders a float64 tolerance as a decimal for exact comparison.
func decFloat(f float64) *inf.Dec {
	d, ok := new(inf.Dec).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return new(inf.Dec)
	}
	return d
}
