package entities

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
)

// NewEnemy 在指定行的右侧场外创建僵尸
//
// 参数:
//   - es: 实体存储
//   - grid: 网格几何
//   - def: 不可变的类型定义
//   - row: 所在行
//   - offsetX: 额外水平偏移，通常取 [0, EnemySpawnJitterX)
//
// 出生点：x = 场地宽度 + EnemySpawnOffsetX + offsetX，y = 行顶 + EnemyRowOffsetRatio 个行高
func NewEnemy(es *ecs.EntityStore, grid config.GridConfig, def *config.EnemyDef, row int, offsetX float64) *components.Enemy {
	reward := def.Reward
	if reward == 0 {
		reward = config.DefaultEnemyReward
	}
	e := &components.Enemy{
		Position: components.Position{
			X: grid.Width() + config.EnemySpawnOffsetX + offsetX,
			Y: float64(row)*grid.CellHeight + grid.CellHeight*config.EnemyRowOffsetRatio,
		},
		Health: components.Health{Current: def.Health, Max: def.Health},
		Row:    row,
		Speed:  def.Speed,
		Reward: reward,
		Def:    def,
	}
	es.AddEnemy(e)
	return e
}
