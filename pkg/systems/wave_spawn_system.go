package systems

import (
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/entities"
	"github.com/decker502/lanedefense/pkg/game"
	"go.uber.org/zap"
)

// WaveSpawnSystem 出怪阶段
//
// 职责：
//   - 推进波次调度器
//   - 将出怪请求落地为僵尸实体（所在行右侧场外，带随机水平偏移）
//   - 在波次出完时发出 WaveCompleted 事件
type WaveSpawnSystem struct {
	scheduler  *WaveScheduler
	entities   *ecs.EntityStore
	grid       config.GridConfig
	rng        Rand
	dispatcher *game.Dispatcher
	metrics    *Metrics
	logger     *zap.Logger
}

// NewWaveSpawnSystem 创建出怪系统
func NewWaveSpawnSystem(scheduler *WaveScheduler, es *ecs.EntityStore, grid config.GridConfig, rng Rand, dispatcher *game.Dispatcher, metrics *Metrics, logger *zap.Logger) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		scheduler:  scheduler,
		entities:   es,
		grid:       grid,
		rng:        rng,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Update 推进调度器 dtMs 毫秒并生成僵尸
// 返回本次生成的僵尸数量
func (s *WaveSpawnSystem) Update(dtMs float64) int {
	wave := s.scheduler.CurrentWave()
	wasSpawning := s.scheduler.Spawning()

	requests := s.scheduler.Advance(dtMs)
	for _, req := range requests {
		if req.Enemy == nil {
			s.logger.Warn("spawn request without enemy type", zap.Int("wave", req.Wave))
			continue
		}
		offset := s.rng.Float64() * config.EnemySpawnJitterX
		e := entities.NewEnemy(s.entities, s.grid, req.Enemy, req.Row, offset)
		s.metrics.enemySpawned(req.Enemy.ID)
		s.logger.Debug("enemy spawned",
			zap.Int("wave", req.Wave),
			zap.String("enemy", req.Enemy.ID),
			zap.Int("row", req.Row),
			zap.Float64("x", e.X))
	}

	if wasSpawning && !s.scheduler.Spawning() {
		s.dispatcher.Dispatch(game.Event{Type: game.EventWaveCompleted, Data: wave})
	}
	return len(requests)
}
