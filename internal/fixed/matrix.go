package fixed

// Matrix is a 2x2 affine transform in Coarse precision, laid out as
//
//	| A B |
//	| C D |
//
// Renderers use it to rotate and scale a sprite around its centre.
type Matrix struct {
	A, B, C, D Coarse
}

// Identity is the transform that leaves a sprite untouched.
var Identity = Matrix{A: CoarseOne, D: CoarseOne}

// Rotation returns the rotation transform for an angle in turns.
func Rotation(angle Coarse) Matrix {
	sin, cos := angle.Sin(), angle.Cos()
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// ScaledRotation returns Rotation(angle) with every entry multiplied by scale.
func ScaledRotation(angle Coarse, scale Coarse) Matrix {
	sin, cos := angle.Sin(), angle.Cos()
	return Matrix{
		A: cos.Mul(scale),
		B: sin.Mul(scale),
		C: (-sin).Mul(scale),
		D: cos.Mul(scale),
	}
}
