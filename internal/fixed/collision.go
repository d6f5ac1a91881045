package fixed

// CircleOverlap reports whether two circles whose radii sum to r overlap.
// Touching circles (centre distance exactly r) do not overlap.
func CircleOverlap(a, b Vec, r Fine) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx.Mul(dx)+dy.Mul(dy) < r.Mul(r)
}

// AABBOverlap reports whether two axis-aligned boxes with top-left corners
// posA, posB and extents sizeA, sizeB overlap. Shared edges do not count.
func AABBOverlap(posA, posB, sizeA, sizeB Vec) bool {
	return posA.X < posB.X+sizeB.X &&
		posA.X+sizeA.X > posB.X &&
		posA.Y < posB.Y+sizeB.Y &&
		posA.Y+sizeA.Y > posB.Y
}
