package models

import "testing"

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{5, 0, 0},
		{5, -1, 0},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
