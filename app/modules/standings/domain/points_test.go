package standingsdomain

import "testing"

func TestPointsFor(t *testing.T) {
	tests := []struct {
		position int
		want     Points
	}{
		{1, 20},
		{2, 15},
		{3, 12},
		{4, 9},
		{5, 7},
		{6, 5},
		{7, 4},
		{8, 3},
		{9, 2},
		{10, 1},
		{11, 0},
		{100, 0},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := PointsFor(tt.position); got != tt.want {
			t.Errorf("PointsFor(%d) = %d, want %d", tt.position, got, tt.want)
		}
	}
}

func TestPointsFor_MonotonicallyNonIncreasing(t *testing.T) {
	prev := PointsFor(1)
	for position := 2; position <= 10; position++ {
		got := PointsFor(position)
		if got > prev {
			t.Errorf("PointsFor(%d) = %d, greater than PointsFor(%d) = %d", position, got, position-1, prev)
		}
		prev = got
	}
}
