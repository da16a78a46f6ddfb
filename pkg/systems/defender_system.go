package systems

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/entities"
	"github.com/decker502/lanedefense/pkg/game"
	"go.uber.org/zap"
)

// DefenderSystem 防御单位阶段：产阳光与射击
//
// 两个计时器在触发时都重置为零（丢弃余数），不按阈值递减。
// 射击目标是同一行中最靠近突破线（x 最小）的僵尸，按上一帧结束时的位置瞄准。
type DefenderSystem struct {
	entities *ecs.EntityStore
	ledger   *game.Ledger
	grid     config.GridConfig
	metrics  *Metrics
	logger   *zap.Logger
}

// NewDefenderSystem 创建防御单位系统
func NewDefenderSystem(es *ecs.EntityStore, ledger *game.Ledger, grid config.GridConfig, metrics *Metrics, logger *zap.Logger) *DefenderSystem {
	return &DefenderSystem{
		entities: es,
		ledger:   ledger,
		grid:     grid,
		metrics:  metrics,
		logger:   logger,
	}
}

// Update 推进所有防御单位 dtMs 毫秒
func (s *DefenderSystem) Update(dtMs float64) {
	s.entities.ForEachDefender(func(d *components.Defender) {
		if d.Def.Generator {
			s.updateGeneration(d, dtMs)
		}
		if d.Def.Shoots() {
			s.updateCooldown(d, dtMs)
		}
	})
}

func (s *DefenderSystem) updateGeneration(d *components.Defender, dtMs float64) {
	d.GenerationElapsed += dtMs
	if d.GenerationElapsed < d.Def.GenerationIntervalMs {
		return
	}
	d.GenerationElapsed = 0
	credited := s.ledger.Credit(d.Def.GenerationAmount)
	s.metrics.sunCreditedBy(d.Def.ID, credited)
	entities.NewSunMarker(s.entities, s.grid, d.Row, d.Col)
}

func (s *DefenderSystem) updateCooldown(d *components.Defender, dtMs float64) {
	d.CooldownElapsed += dtMs
	if d.CooldownElapsed < d.Def.CooldownMs {
		return
	}
	d.CooldownElapsed = 0

	target := s.closestEnemyInRow(d.Row)
	if target == nil {
		return
	}
	_, dirX, dirY := entities.NewProjectile(s.entities, s.grid, d, target.X, target.Y)
	ox, oy := entities.MuzzleOrigin(s.grid, d.Row, d.Col)
	entities.NewMuzzleFlash(s.entities, ox, oy, dirX, dirY)
	s.metrics.projectileFired(d.Def.ID)
}

// closestEnemyInRow 返回该行 x 最小的僵尸，平局取插入顺序靠前者
func (s *DefenderSystem) closestEnemyInRow(row int) *components.Enemy {
	var target *components.Enemy
	s.entities.ForEachEnemy(func(e *components.Enemy) {
		if e.Row != row || e.Removed {
			return
		}
		if target == nil || e.X < target.X {
			target = e
		}
	})
	return target
}
