package entities

import (
	"math"

	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/utils"
)

// MuzzleOrigin 返回防御单位的射击原点（世界坐标）
// 格子中心上移 ProjectileMuzzleOffsetY 像素
func MuzzleOrigin(grid config.GridConfig, row, col int) (x, y float64) {
	x, y = utils.CellCenter(grid, row, col)
	return x, y + config.ProjectileMuzzleOffsetY
}

// NewProjectile 创建瞄准目标当前位置的子弹
//
// 方向由射击原点指向目标，归一化后乘以类型定义的子弹速度；
// 子弹从原点向前 ProjectileMuzzleOffsetX 个格宽处出膛。
// 原点与目标重合时方向退化为零向量，子弹原地停留直到 TTL 耗尽。
//
// 参数:
//   - es: 实体存储
//   - grid: 网格几何
//   - shooter: 射击的防御单位
//   - targetX, targetY: 目标当前位置
//
// 返回:
//   - *components.Projectile: 创建的子弹
//   - dirX, dirY: 归一化的射击方向（用于枪口火焰）
func NewProjectile(es *ecs.EntityStore, grid config.GridConfig, shooter *components.Defender, targetX, targetY float64) (p *components.Projectile, dirX, dirY float64) {
	ox, oy := MuzzleOrigin(grid, shooter.Row, shooter.Col)
	dx := targetX - ox
	dy := targetY - oy
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}
	dirX, dirY = dx/mag, dy/mag

	speed := shooter.Def.ProjectileSpeed
	if speed <= 0 {
		speed = config.DefaultProjectileSpeed
	}

	p = &components.Projectile{
		Position:  components.Position{X: ox + grid.CellWidth*config.ProjectileMuzzleOffsetX, Y: oy},
		Velocity:  components.Velocity{VX: dirX * speed, VY: dirY * speed},
		Collision: components.Collision{Radius: config.ProjectileRadius},
		Lifetime:  components.Lifetime{RemainingMs: config.ProjectileTTLMs},
		Damage:    shooter.Def.Damage,
		Row:       shooter.Row,
	}
	es.AddProjectile(p)
	return p, dirX, dirY
}
