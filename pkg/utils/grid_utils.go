package utils

import (
	"math"

	"github.com/decker502/lanedefense/pkg/config"
)

// 草坪坐标换算
// 世界坐标原点为草坪左上角；屏幕坐标 = 世界坐标 + 绘制原点

// CellCenter 将草坪网格坐标转换为格子中心的世界坐标
// 参数:
//   - g: 网格几何
//   - row, col: 行/列索引
//
// 返回:
//   - x, y: 格子中心的世界坐标
func CellCenter(g config.GridConfig, row, col int) (x, y float64) {
	x = float64(col)*g.CellWidth + g.CellWidth/2
	y = float64(row)*g.CellHeight + g.CellHeight/2
	return x, y
}

// ColumnAt 返回世界坐标 x 所在的列
// x 在草坪左侧或右侧之外时 ok 为 false
func ColumnAt(g config.GridConfig, x float64) (col int, ok bool) {
	col = int(math.Floor(x / g.CellWidth))
	if col < 0 || col >= g.Columns {
		return 0, false
	}
	return col, true
}

// ScreenToCell 将屏幕坐标转换为草坪网格坐标
// 参数:
//   - g: 网格几何
//   - originX, originY: 草坪左上角在屏幕上的位置
//   - sx, sy: 屏幕坐标（例如鼠标位置）
//
// 返回:
//   - row, col: 行/列索引
//   - isValid: 是否在有效网格范围内
func ScreenToCell(g config.GridConfig, originX, originY, sx, sy float64) (row, col int, isValid bool) {
	x := sx - originX
	y := sy - originY
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		return 0, 0, false
	}

	col = int(x / g.CellWidth)
	row = int(y / g.CellHeight)

	// 边界检查（防止浮点数计算误差导致的越界）
	if col >= g.Columns {
		col = g.Columns - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return row, col, true
}
