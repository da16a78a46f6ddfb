package systems

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/entities"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/utils"
	"go.uber.org/zap"
)

// EnemySystem 僵尸阶段：啃食、移动、死亡结算、突破
//
// 每个僵尸先处理所在格子：有防御单位就吃掉它并被推回，否则向左前进。
// 位置更新后生命值 <= 0 则结算奖励；否则越过突破线时移除僵尸，
// 并移除同一行中任意一个防御单位作为惩罚（突破不影响阳光）。
type EnemySystem struct {
	entities   *ecs.EntityStore
	ledger     *game.Ledger
	grid       config.GridConfig
	rng        Rand
	dispatcher *game.Dispatcher
	metrics    *Metrics
	logger     *zap.Logger
}

// NewEnemySystem 创建僵尸系统
func NewEnemySystem(es *ecs.EntityStore, ledger *game.Ledger, grid config.GridConfig, rng Rand, dispatcher *game.Dispatcher, metrics *Metrics, logger *zap.Logger) *EnemySystem {
	return &EnemySystem{
		entities:   es,
		ledger:     ledger,
		grid:       grid,
		rng:        rng,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Update 推进所有僵尸 dtMs 毫秒
func (s *EnemySystem) Update(dtMs float64) {
	step := dtMs / config.ReferenceFrameMs * config.EnemySpeedScale

	s.entities.ForEachEnemy(func(e *components.Enemy) {
		if !s.tryEat(e) {
			e.X -= e.Speed * step
		}

		switch {
		case e.IsDead():
			s.kill(e)
		case e.X < config.EnemyBreachX:
			s.breach(e)
		}
	})

	s.entities.RemoveEnemiesWhere(func(e *components.Enemy) bool { return e.Removed })
}

// tryEat 吃掉僵尸所在格子的防御单位
func (s *EnemySystem) tryEat(e *components.Enemy) bool {
	col, ok := utils.ColumnAt(s.grid, e.X)
	if !ok {
		return false
	}
	victim, ok := s.entities.DefenderAt(e.Row, col)
	if !ok {
		return false
	}

	s.entities.RemoveDefender(victim)
	entities.NewBiteMarker(s.entities, s.grid, victim.Row, victim.Col)
	e.X += config.EnemyBiteNudge

	s.metrics.defenderEaten(victim.Def.ID)
	s.logger.Debug("defender eaten",
		zap.String("defender", victim.Def.ID),
		zap.Int("row", victim.Row),
		zap.Int("col", victim.Col))
	s.dispatcher.Dispatch(game.Event{
		Type: game.EventDefenderEaten,
		Data: game.PlacementData{Row: victim.Row, Col: victim.Col, Defender: victim.Def.ID},
	})
	return true
}

func (s *EnemySystem) kill(e *components.Enemy) {
	e.Removed = true
	credited := s.ledger.Credit(e.Reward)
	entities.NewDeathBurst(s.entities, s.rng, e.X, e.Y)

	s.metrics.enemyKilled(e.Def.ID)
	s.metrics.sunCreditedBy(e.Def.ID, credited)
	s.logger.Debug("enemy killed",
		zap.String("enemy", e.Def.ID),
		zap.Int("row", e.Row),
		zap.Int("reward", e.Reward))
	s.dispatcher.Dispatch(game.Event{
		Type: game.EventEnemyKilled,
		Data: game.EnemyData{Row: e.Row, Enemy: e.Def.ID, Reward: e.Reward, X: e.X, Y: e.Y},
	})
}

func (s *EnemySystem) breach(e *components.Enemy) {
	e.Removed = true
	if victim, ok := s.entities.FirstDefenderInRow(e.Row); ok {
		s.entities.RemoveDefender(victim)
	}

	s.metrics.rowBreached(e.Row)
	s.logger.Debug("row breached", zap.String("enemy", e.Def.ID), zap.Int("row", e.Row))
	s.dispatcher.Dispatch(game.Event{
		Type: game.EventRowBreached,
		Data: game.EnemyData{Row: e.Row, Enemy: e.Def.ID, X: e.X, Y: e.Y},
	})
}
