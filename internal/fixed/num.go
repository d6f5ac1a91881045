// Package fixed provides the integer fixed-point arithmetic used by the simulation.
// No floating point is used anywhere in this package: positions, velocities,
// angles and scale factors are all scaled int32 values with a binary point.
//
// Two precisions exist:
//
//	Fine   - 10 fractional bits, used for positions, velocities and radii
//	Coarse - 8 fractional bits, used for angles and rotation-derived values
//
// Angles are Coarse values where 1.0 is one full turn.
package fixed

// Binary point positions for the two precisions.
const (
	FineShift   = 10
	CoarseShift = 8

	FineOne   Fine   = 1 << FineShift
	CoarseOne Coarse = 1 << CoarseShift
)

// Fine is a fixed-point number with FineShift fractional bits.
type Fine int32

// Coarse is a fixed-point number with CoarseShift fractional bits.
type Coarse int32

// FineFromInt converts a whole number to Fine.
func FineFromInt(n int) Fine {
	return Fine(int32(n) << FineShift)
}

// FineFromRaw wraps a raw scaled value without conversion.
func FineFromRaw(raw int32) Fine {
	return Fine(raw)
}

// Raw returns the underlying scaled integer.
func (f Fine) Raw() int32 {
	return int32(f)
}

// AddInt adds a whole number.
func (f Fine) AddInt(n int) Fine {
	return f + FineFromInt(n)
}

// Mul multiplies two Fine values, flooring the dropped fraction bits.
func (f Fine) Mul(o Fine) Fine {
	return Fine((int64(f) * int64(o)) >> FineShift)
}

// Div divides two Fine values, truncating toward zero.
// Panics if o is zero, like integer division.
func (f Fine) Div(o Fine) Fine {
	return Fine((int64(f) << FineShift) / int64(o))
}

// MulInt multiplies by a whole number. The result wraps on int32 overflow.
func (f Fine) MulInt(n int) Fine {
	return f * Fine(n)
}

// DivInt divides by a whole number, truncating toward zero.
func (f Fine) DivInt(n int) Fine {
	return f / Fine(n)
}

// Rem returns the truncated remainder; the result has the sign of f.
func (f Fine) Rem(o Fine) Fine {
	return f % o
}

// RemEuclid returns the Euclidean remainder, always in [0, |o|).
func (f Fine) RemEuclid(o Fine) Fine {
	r := f % o
	if r < 0 {
		if o < 0 {
			return r - o
		}
		return r + o
	}
	return r
}

// Floor returns the largest whole number not greater than f.
func (f Fine) Floor() int {
	return int(f >> FineShift)
}

// ToCoarse drops the two lowest fraction bits.
func (f Fine) ToCoarse() Coarse {
	return Coarse(f >> (FineShift - CoarseShift))
}

// CoarseFromInt converts a whole number to Coarse.
func CoarseFromInt(n int) Coarse {
	return Coarse(int32(n) << CoarseShift)
}

// CoarseFromRaw wraps a raw scaled value without conversion.
func CoarseFromRaw(raw int32) Coarse {
	return Coarse(raw)
}

// Raw returns the underlying scaled integer.
func (c Coarse) Raw() int32 {
	return int32(c)
}

// Mul multiplies two Coarse values, flooring the dropped fraction bits.
func (c Coarse) Mul(o Coarse) Coarse {
	return Coarse((int64(c) * int64(o)) >> CoarseShift)
}

// Div divides two Coarse values, truncating toward zero.
func (c Coarse) Div(o Coarse) Coarse {
	return Coarse((int64(c) << CoarseShift) / int64(o))
}

// MulInt multiplies by a whole number.
func (c Coarse) MulInt(n int) Coarse {
	return c * Coarse(n)
}

// DivInt divides by a whole number, truncating toward zero.
func (c Coarse) DivInt(n int) Coarse {
	return c / Coarse(n)
}

// Rem returns the truncated remainder; the result has the sign of c.
func (c Coarse) Rem(o Coarse) Coarse {
	return c % o
}

// RemEuclid returns the Euclidean remainder, always in [0, |o|).
func (c Coarse) RemEuclid(o Coarse) Coarse {
	r := c % o
	if r < 0 {
		if o < 0 {
			return r - o
		}
		return r + o
	}
	return r
}

// Floor returns the largest whole number not greater than c.
func (c Coarse) Floor() int {
	return int(c >> CoarseShift)
}

// ToFine widens to Fine precision. Exact.
func (c Coarse) ToFine() Fine {
	return Fine(c) << (FineShift - CoarseShift)
}
