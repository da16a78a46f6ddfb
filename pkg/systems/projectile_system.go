package systems

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/entities"
)

// ProjectileSystem 子弹阶段：移动、过期、碰撞
//
// 每颗子弹至多命中一个僵尸：命中后立即标记为 Spent，不再参与后续检测。
// 伤害只扣减生命值，死亡结算在僵尸阶段进行。
type ProjectileSystem struct {
	entities *ecs.EntityStore
	grid     config.GridConfig
	rng      Rand
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(es *ecs.EntityStore, grid config.GridConfig, rng Rand) *ProjectileSystem {
	return &ProjectileSystem{
		entities: es,
		grid:     grid,
		rng:      rng,
	}
}

// Update 推进所有子弹 dtMs 毫秒
func (s *ProjectileSystem) Update(dtMs float64) {
	frames := dtMs / config.ReferenceFrameMs
	minX := -config.ProjectileBoundsMargin
	maxX := s.grid.Width() + config.ProjectileBoundsMargin

	s.entities.ForEachProjectile(func(p *components.Projectile) {
		p.X += p.VX * frames
		p.Y += p.VY * frames
		if p.Tick(dtMs) || p.X < minX || p.X > maxX {
			p.Spent = true
			return
		}

		hit := s.firstCollision(p)
		if hit == nil {
			return
		}
		hit.Current -= p.Damage
		p.Spent = true
		entities.NewHitSpark(s.entities, s.rng, p.X, p.Y)
	})

	s.entities.RemoveProjectilesWhere(func(p *components.Projectile) bool { return p.Spent })
}

// firstCollision 按插入顺序返回同一行中第一个与子弹重叠的僵尸
func (s *ProjectileSystem) firstCollision(p *components.Projectile) *components.Enemy {
	threshold := p.Radius + config.EnemyCollisionRadius
	for _, e := range s.entities.Enemies() {
		if e.Row != p.Row || e.Removed {
			continue
		}
		if components.Overlaps(p.Position, e.Position, threshold) {
			return e
		}
	}
	return nil
}
