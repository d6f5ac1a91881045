package core

import "testing"

func TestRectContains(t *testing.T) {
	// Inner area of a boxed 80x23 playfield
	r := NewRect(0, 1, 80, 23).Inset(1)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first cell", 1, 2, true},
		{"last cell", 78, 22, true},
		{"left border", 0, 10, false},
		{"right border", 79, 10, false},
		{"status line", 10, 0, false},
		{"top border", 10, 1, false},
		{"bottom border", 10, 23, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		r        Rect
		n        int
		expected Rect
		right    int
		bottom   int
	}{
		{NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4), 9, 5},
		{NewRect(2, 3, 3, 3), 2, NewRect(4, 5, 0, 0), 4, 5},
		{NewRect(0, 0, 4, 4), 0, NewRect(0, 0, 4, 4), 4, 4},
	}

	for _, tt := range tests {
		got := tt.r.Inset(tt.n)
		if got != tt.expected {
			t.Errorf("%+v.Inset(%d) = %+v, expected %+v", tt.r, tt.n, got, tt.expected)
		}
		if got.Right() != tt.right || got.Bottom() != tt.bottom {
			t.Errorf("%+v edges = (%d, %d), expected (%d, %d)", got, got.Right(), got.Bottom(), tt.right, tt.bottom)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.4, 0.4},
		{-0.1, 0},
		{1.5, 1},
		{1, 1},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, 0, 1); got != tt.expected {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tt.val, got, tt.expected)
		}
	}
}
