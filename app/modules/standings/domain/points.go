package standingsdomain

// Points uses a custom type to keep award points out of arithmetic with
// unrelated integers.
type Points int

// pointsByPosition is the fixed award table for finishing positions 1..10.
var pointsByPosition = map[int]Points{
	1:  20,
	2:  15,
	3:  12,
	4:  9,
	5:  7,
	6:  5,
	7:  4,
	8:  3,
	9:  2,
	10: 1,
}

// PointsFor maps a finishing position to award points. Positions outside
// 1..10, including zero and negatives, earn 0. The mapping is applied when a
// placement's position is set or changed; stored points are never recomputed
// at read time.
func PointsFor(position int) Points {
	return pointsByPosition[position]
}
