package terminal

import "testing"

func TestLeftPad(t *testing.T) {
	tests := []struct {
		term, width, want int
	}{
		{80, 20, 30},
		{80, 80, 0},
		{40, 100, 0},
		{81, 20, 30},
	}
	for _, tt := range tests {
		if got := LeftPad(tt.term, tt.width); got != tt.want {
			t.Errorf("LeftPad(%d, %d) = %d, want %d", tt.term, tt.width, got, tt.want)
		}
	}
}
