package components

import "github.com/decker502/lanedefense/pkg/types"

// Projectile 飞行中的子弹
// 只与同一行的僵尸检测碰撞，至多命中一个僵尸
type Projectile struct {
	ID types.EntityID

	Position
	Velocity
	Collision
	Lifetime

	// Damage 命中时扣除的生命值
	Damage int
	// Row 发射者所在行
	Row int

	// Spent 已命中或已越界，待本帧结束时清理
	Spent bool
}
