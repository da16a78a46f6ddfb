package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/types"
	"go.uber.org/zap"
)

// Simulation 一局塔防模拟的全部状态
//
// 实体、账本、波次调度器都是显式字段，没有包级全局变量，
// 同一进程中可以并存多局互不影响的模拟。
//
// Simulation 不是并发安全的：Step、TryPlace 与运行状态切换
// 必须在同一个 goroutine（驱动的帧循环）中调用。
type Simulation struct {
	settings *config.Settings
	units    *config.UnitTable

	entities   *ecs.EntityStore
	ledger     *game.Ledger
	dispatcher *game.Dispatcher
	scheduler  *WaveScheduler
	policy     SpawnPolicy
	rng        *rand.Rand
	metrics    *Metrics
	logger     *zap.Logger

	state           game.RunState
	announcedFinish bool
	elapsedMs       float64

	// 各阶段系统
	spawnSystem      *WaveSpawnSystem
	defenderSystem   *DefenderSystem
	projectileSystem *ProjectileSystem
	enemySystem      *EnemySystem
	effectSystem     *EffectSystem
	placement        *PlacementController
}

// Option 配置 Simulation
type Option func(*Simulation)

// WithLogger 设置日志
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithRand 设置随机数来源
// 出怪策略与模拟共享同一个来源时，同一种子下一局完全可复现
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithSpawnPolicy 设置出怪类型策略（默认按 spawnWeight 加权）
func WithSpawnPolicy(policy SpawnPolicy) Option {
	return func(s *Simulation) { s.policy = policy }
}

// WithMetrics 设置指标计数器
func WithMetrics(m *Metrics) Option {
	return func(s *Simulation) { s.metrics = m }
}

// WithDispatcher 使用外部事件分发器
func WithDispatcher(d *game.Dispatcher) Option {
	return func(s *Simulation) { s.dispatcher = d }
}

// NewSimulation 创建模拟，初始运行状态为 Stopped
//
// settings 与 units 必须已通过校验；Simulation 持有它们但从不修改。
func NewSimulation(settings *config.Settings, units *config.UnitTable, opts ...Option) *Simulation {
	s := &Simulation{
		settings: settings,
		units:    units,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.rng == nil {
		seed := settings.Sim.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	if s.policy == nil {
		s.policy = NewWeightedPolicy(units, s.rng)
	}
	if s.dispatcher == nil {
		s.dispatcher = game.NewDispatcher()
	}

	grid := settings.Grid
	s.entities = ecs.NewEntityStore(grid.Rows, grid.Columns)
	s.ledger = game.NewLedger(settings.Economy.StartingSun, settings.Economy.SunCap)

	s.defenderSystem = NewDefenderSystem(s.entities, s.ledger, grid, s.metrics, s.logger.Named("defenders"))
	s.projectileSystem = NewProjectileSystem(s.entities, grid, s.rng)
	s.enemySystem = NewEnemySystem(s.entities, s.ledger, grid, s.rng, s.dispatcher, s.metrics, s.logger.Named("enemies"))
	s.effectSystem = NewEffectSystem(s.entities)
	s.placement = NewPlacementController(s.entities, s.ledger, units, grid, s.dispatcher, s.metrics, s.logger.Named("placement"))
	s.resetScheduler()

	s.logger.Info("simulation created",
		zap.Int("rows", grid.Rows),
		zap.Int("columns", grid.Columns),
		zap.Int("starting_sun", settings.Economy.StartingSun),
		zap.Int("waves", len(units.Waves)))
	return s
}

func (s *Simulation) resetScheduler() {
	s.scheduler = NewWaveScheduler(s.units.Waves, s.settings.Grid.Rows, s.policy, s.rng, s.logger.Named("waves"))
	s.spawnSystem = NewWaveSpawnSystem(s.scheduler, s.entities, s.settings.Grid, s.rng, s.dispatcher, s.metrics, s.logger.Named("spawn"))
}

// Step 推进模拟 dtMs 毫秒
//
// 仅在 Running 状态下生效。阶段顺序：
//
//	出怪 → 防御单位 → 子弹 → 僵尸 → 效果 → 波次衔接
//
// dt 可以任意大（例如标签页切回后台再切回），所有计时都按 dt 累加。
func (s *Simulation) Step(dtMs float64) {
	if s.state != game.RunRunning || dtMs < 0 {
		return
	}
	s.elapsedMs += dtMs

	s.spawnSystem.Update(dtMs)
	s.defenderSystem.Update(dtMs)
	s.projectileSystem.Update(dtMs)
	s.enemySystem.Update(dtMs)
	s.effectSystem.Update(dtMs)
	s.continueWaves()
}

// continueWaves 没有波次在出怪时开始下一波；全部完成时通知一次
func (s *Simulation) continueWaves() {
	if s.scheduler.Spawning() {
		return
	}
	if s.scheduler.Completed() {
		if !s.announcedFinish {
			s.announcedFinish = true
			s.logger.Info("all waves completed", zap.Float64("elapsed_ms", s.elapsedMs))
			s.dispatcher.Dispatch(game.Event{Type: game.EventAllWavesCompleted})
		}
		return
	}
	wave := s.scheduler.CurrentWave()
	if s.scheduler.Begin() {
		s.dispatcher.Dispatch(game.Event{Type: game.EventWaveStarted, Data: wave})
	}
}

// Start 开始或继续运行
func (s *Simulation) Start() {
	if s.state == game.RunRunning {
		return
	}
	s.logger.Info("simulation started", zap.Stringer("from", s.state))
	s.state = game.RunRunning
}

// Pause 暂停（状态冻结，出怪计时同样冻结）
func (s *Simulation) Pause() {
	if s.state != game.RunRunning {
		return
	}
	s.logger.Info("simulation paused", zap.Float64("elapsed_ms", s.elapsedMs))
	s.state = game.RunPaused
}

// Restart 清空所有实体、重置阳光与波次，回到 Stopped
func (s *Simulation) Restart() {
	s.entities.Clear()
	s.ledger.Reset(s.settings.Economy.StartingSun)
	s.resetScheduler()
	s.announcedFinish = false
	s.elapsedMs = 0
	s.state = game.RunStopped
	s.logger.Info("simulation restarted", zap.Int("sun", s.ledger.Current()))
}

// TryPlace 在 (row, col) 种植 kind 类型的防御单位
func (s *Simulation) TryPlace(row, col int, kind types.DefenderKind) PlaceResult {
	return s.placement.TryPlace(row, col, kind)
}

// TryPlaceByID 按配置 id 种植
// 未知 id 返回 config.ErrUnknownDefender
func (s *Simulation) TryPlaceByID(row, col int, id string) (PlaceResult, error) {
	def, err := s.units.DefenderByID(id)
	if err != nil {
		return PlaceUnknownDefender, fmt.Errorf("place at (%d, %d): %w", row, col, err)
	}
	return s.placement.TryPlace(row, col, def.Kind), nil
}

// Affordable 当前阳光是否足够种植 kind 类型（用于卡片高亮）
func (s *Simulation) Affordable(kind types.DefenderKind) bool {
	def, ok := s.units.Defender(kind)
	return ok && s.ledger.CanAfford(def.Cost)
}

// State 返回运行状态
func (s *Simulation) State() game.RunState { return s.state }

// Ledger 返回阳光账本
func (s *Simulation) Ledger() *game.Ledger { return s.ledger }

// Sun 返回当前阳光
func (s *Simulation) Sun() int { return s.ledger.Current() }

// Entities 返回实体存储（渲染只读访问）
func (s *Simulation) Entities() *ecs.EntityStore { return s.entities }

// Scheduler 返回波次调度器
func (s *Simulation) Scheduler() *WaveScheduler { return s.scheduler }

// Dispatcher 返回事件分发器
func (s *Simulation) Dispatcher() *game.Dispatcher { return s.dispatcher }

// Units 返回单位数据表
func (s *Simulation) Units() *config.UnitTable { return s.units }

// Grid 返回网格几何
func (s *Simulation) Grid() config.GridConfig { return s.settings.Grid }

// ElapsedMs 返回本局已运行的模拟时间
func (s *Simulation) ElapsedMs() float64 { return s.elapsedMs }

// AllWavesCompleted 所有波次是否都已出完
func (s *Simulation) AllWavesCompleted() bool { return s.scheduler.Completed() }

// Defenders 返回防御单位只读视图
func (s *Simulation) Defenders() []*components.Defender { return s.entities.Defenders() }

// Enemies 返回僵尸只读视图
func (s *Simulation) Enemies() []*components.Enemy { return s.entities.Enemies() }

// Projectiles 返回子弹只读视图
func (s *Simulation) Projectiles() []*components.Projectile { return s.entities.Projectiles() }

// Effects 返回效果标记只读视图
func (s *Simulation) Effects() []*components.EffectMarker { return s.entities.Effects() }
