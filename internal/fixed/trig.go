package fixed

// QuarterTurn is a quarter of a full revolution in Coarse angle units.
const QuarterTurn = CoarseOne / 4

// sineTable samples one quadrant of a sine wave at the midpoint of each of its
// 32 steps: round(256 * sin((2n+1) * pi/128)). Midpoint samples make the
// mirrored lookup in odd quadrants symmetric with the direct one.
var sineTable = [32]Coarse{
	6, 19, 31, 44, 56, 68, 80, 92,
	104, 115, 126, 137, 147, 157, 167, 177,
	185, 194, 202, 209, 216, 223, 229, 234,
	239, 243, 247, 250, 252, 254, 255, 256,
}

// TableStep is the largest difference between adjacent table samples.
// Sin and Cos are exact to within this resolution.
const TableStep Coarse = 13

// Sin returns the sine of an angle in turns. Any angle is accepted;
// the lookup folds it into one of four quadrants.
func (c Coarse) Sin() Coarse {
	raw := int64(c)
	quarter := int64(QuarterTurn)

	offset := ((raw % quarter) + quarter) % quarter
	quadrant := (((raw - offset) / quarter % 4) + 4) % 4
	n := offset * int64(len(sineTable)) / quarter
	mirrored := int64(len(sineTable)) - n - 1

	switch quadrant {
	case 0:
		return sineTable[n]
	case 1:
		return sineTable[mirrored]
	case 2:
		return -sineTable[n]
	default:
		return -sineTable[mirrored]
	}
}

// Cos returns the cosine of an angle in turns, defined as Sin(c + QuarterTurn).
func (c Coarse) Cos() Coarse {
	return (c + QuarterTurn).Sin()
}
