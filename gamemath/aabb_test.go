package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		ax, ay, aw, ah, bx, by, bw, bh float64
		want                           bool
	}{
		{"full overlap", 0, 0, 10, 10, 2, 2, 4, 4, true},
		{"partial corner", 0, 0, 10, 10, 8, 8, 10, 10, true},
		{"separated horizontally", 0, 0, 10, 10, 20, 0, 10, 10, false},
		{"separated vertically", 0, 0, 10, 10, 0, 20, 10, 10, false},
		{"touching right edge is open", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"touching bottom edge is open", 0, 0, 10, 10, 0, 10, 10, 10, false},
		{"one pixel inside", 0, 0, 10, 10, 9, 9, 10, 10, true},
		{"contained", 0, 0, 100, 100, 40, 40, 10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.ax, tt.ay, tt.aw, tt.ah, tt.bx, tt.by, tt.bw, tt.bh)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The test is symmetric.
			if rev := Overlaps(tt.bx, tt.by, tt.bw, tt.bh, tt.ax, tt.ay, tt.aw, tt.ah); rev != got {
				t.Errorf("Overlaps() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v, want 10", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp(7, 0, 10) = %v, want 7", got)
	}
}
