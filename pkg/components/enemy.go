package components

import (
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/types"
)

// Enemy 前进中的僵尸
type Enemy struct {
	ID types.EntityID

	Position
	Health

	// Row 所在行（离散），由出怪调度器在 [0, rows) 中选择
	Row int
	// Speed 移动速度（配置单位）
	Speed float64
	// Reward 被击杀时给予的阳光
	Reward int
	// Def 不可变的类型定义
	Def *config.EnemyDef

	// Removed 已死亡或已突破，待本帧结束时清理
	Removed bool
}

// Kind 返回僵尸类型
func (e *Enemy) Kind() types.EnemyKind {
	return e.Def.Kind
}
