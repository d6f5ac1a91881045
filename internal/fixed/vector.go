package fixed

// Vec is a 2D vector in Fine precision.
type Vec struct {
	X, Y Fine
}

// V builds a vector from whole-number components.
func V(x, y int) Vec {
	return Vec{X: FineFromInt(x), Y: FineFromInt(y)}
}

// FromAngle returns the unit vector (cos, sin) for an angle in turns.
func FromAngle(angle Coarse) Vec {
	return Vec{X: angle.Cos().ToFine(), Y: angle.Sin().ToFine()}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// MulInt scales both components by a whole number.
func (v Vec) MulInt(n int) Vec {
	return Vec{X: v.X.MulInt(n), Y: v.Y.MulInt(n)}
}

// DivInt divides both components by a whole number, truncating toward zero.
func (v Vec) DivInt(n int) Vec {
	return Vec{X: v.X.DivInt(n), Y: v.Y.DivInt(n)}
}

// Mul scales both components by a Fine factor.
func (v Vec) Mul(f Fine) Vec {
	return Vec{X: v.X.Mul(f), Y: v.Y.Mul(f)}
}

// Floor returns the whole-number screen coordinates of v.
func (v Vec) Floor() (x, y int) {
	return v.X.Floor(), v.Y.Floor()
}

// WrapToBounds maps v onto a torus of the given bounds, treating the entity as
// a square of side size. Each component ends up in [-size/2, bound + size/2),
// so an entity fully leaves one edge before it reappears on the opposite one.
// Wrapping an already wrapped vector leaves it unchanged.
func (v Vec) WrapToBounds(size int, bounds Vec) Vec {
	half := size / 2
	return Vec{
		X: v.X.AddInt(half).RemEuclid(bounds.X.AddInt(size)).AddInt(-half),
		Y: v.Y.AddInt(half).RemEuclid(bounds.Y.AddInt(size)).AddInt(-half),
	}
}
