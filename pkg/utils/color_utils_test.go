package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"六位", "#FFD36E", color.RGBA{R: 0xFF, G: 0xD3, B: 0x6E, A: 255}},
		{"小写", "#ffddff", color.RGBA{R: 0xFF, G: 0xDD, B: 0xFF, A: 255}},
		{"三位简写", "#fff", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}},
		{"无井号", "3FD0A8", color.RGBA{R: 0x3F, G: 0xD0, B: 0xA8, A: 255}},
		{"空字符串", "", fallback},
		{"非法字符", "#GGGGGG", fallback},
		{"长度错误", "#12345", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHexColor(tt.in, fallback); got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := WithAlpha(c, 1); got != c {
		t.Errorf("WithAlpha(c, 1) = %v, want %v", got, c)
	}
	if got := WithAlpha(c, 2); got != c {
		t.Errorf("Expected ratio above 1 to be clamped, got %v", got)
	}
	if got := WithAlpha(c, -1); got != (color.RGBA{}) {
		t.Errorf("Expected ratio below 0 to be transparent, got %v", got)
	}

	half := WithAlpha(c, 0.5)
	if half.A != 127 || half.R != 100 {
		t.Errorf("WithAlpha(c, 0.5) = %v, want R=100 A=127", half)
	}
}
