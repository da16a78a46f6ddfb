package utils

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 形式的颜色字符串
// 格式非法时返回 fallback
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// WithAlpha 按比例缩放颜色的不透明度（预乘 alpha）
// ratio 会被限制在 [0, 1]
func WithAlpha(c color.RGBA, ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * ratio),
		G: uint8(float64(c.G) * ratio),
		B: uint8(float64(c.B) * ratio),
		A: uint8(float64(c.A) * ratio),
	}
}
