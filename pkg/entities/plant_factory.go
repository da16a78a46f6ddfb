package entities

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
)

// NewDefender 在指定格子创建防御单位
// 冷却与产阳光计时器从零开始
//
// 参数:
//   - es: 实体存储
//   - def: 不可变的类型定义
//   - row, col: 目标格子
//
// 返回:
//   - *components.Defender: 创建的防御单位
//   - bool: 格子越界或已被占用时返回 false，此时不做任何修改
func NewDefender(es *ecs.EntityStore, def *config.DefenderDef, row, col int) (*components.Defender, bool) {
	d := &components.Defender{
		Row: row,
		Col: col,
		Def: def,
	}
	if !es.AddDefender(d) {
		return nil, false
	}
	return d, true
}
