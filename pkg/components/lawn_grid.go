package components

import "github.com/decker502/lanedefense/pkg/types"

// LawnGrid 跟踪哪些格子已被防御单位占用
//
// Occupancy 是一个二维数组，存储每个格子的占用状态
// [row][col] = EntityID，其中 0 表示空格子
type LawnGrid struct {
	Rows      int
	Columns   int
	Occupancy [][]types.EntityID
}

// NewLawnGrid 创建指定尺寸的空网格
func NewLawnGrid(rows, cols int) *LawnGrid {
	occ := make([][]types.EntityID, rows)
	for r := range occ {
		occ[r] = make([]types.EntityID, cols)
	}
	return &LawnGrid{Rows: rows, Columns: cols, Occupancy: occ}
}

// InBounds 判断格子是否在网格内
func (g *LawnGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Columns
}

// At 返回格子上的实体ID，越界或空格子返回 0
func (g *LawnGrid) At(row, col int) types.EntityID {
	if !g.InBounds(row, col) {
		return types.InvalidEntity
	}
	return g.Occupancy[row][col]
}

// Set 设置格子上的实体ID
func (g *LawnGrid) Set(row, col int, id types.EntityID) {
	if g.InBounds(row, col) {
		g.Occupancy[row][col] = id
	}
}

// Clear 清空所有格子
func (g *LawnGrid) Clear() {
	for r := range g.Occupancy {
		for c := range g.Occupancy[r] {
			g.Occupancy[r][c] = types.InvalidEntity
		}
	}
}

// Occupied 返回已占用格子数量
func (g *LawnGrid) Occupied() int {
	n := 0
	for r := range g.Occupancy {
		for _, id := range g.Occupancy[r] {
			if id != types.InvalidEntity {
				n++
			}
		}
	}
	return n
}
