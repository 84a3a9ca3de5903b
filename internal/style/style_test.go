package style

import "testing"

func TestShade(t *testing.T) {
	tests := []struct {
		name   string
		in     RGB
		factor float64
		want   RGB
	}{
		{"identity", RGB{10, 20, 30}, 1, RGB{10, 20, 30}},
		{"half", RGB{200, 100, 50}, 0.5, RGB{100, 50, 25}},
		{"black", RGB{200, 100, 50}, 0, RGB{0, 0, 0}},
		{"clamped", RGB{200, 250, 10}, 2, RGB{255, 255, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shade(tt.in, tt.factor); got != tt.want {
				t.Errorf("Shade() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 0, 128}).Hex(); got != "#FF0080" {
		t.Errorf("Hex() = %s, want #FF0080", got)
	}
}
