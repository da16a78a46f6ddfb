package systems

import (
	"github.com/decker502/lanedefense/pkg/config"
	"go.uber.org/zap"
)

// WavePhase 单个波次的状态
type WavePhase int

const (
	// WaveIdle 尚未开始
	WaveIdle WavePhase = iota
	// WaveSpawning 正在按间隔出怪
	WaveSpawning
	// WaveDrained 已出完本波全部僵尸
	WaveDrained
)

// String 返回波次状态名称
func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDrained:
		return "drained"
	default:
		return "unknown"
	}
}

// SpawnRequest 一次出怪请求
type SpawnRequest struct {
	Wave  int
	Row   int
	Enemy *config.EnemyDef
}

type waveState struct {
	def     config.WaveDef
	phase   WavePhase
	timer   float64 // 毫秒
	spawned int
}

// WaveScheduler 波次调度器
//
// 计时完全由 Advance 传入的 dt 驱动，不读取真实时钟：
// 暂停模拟（不调用 Advance）就精确地暂停了出怪。
//
// 同一时刻至多一个波次处于 Spawning。一次 Advance 跨越多个间隔时
// 会产生多个请求，计时器每次减去一个间隔并保留余数。
type WaveScheduler struct {
	waves  []waveState
	index  int // 当前（或下一个待开始）波次
	rows   int
	policy SpawnPolicy
	rng    Rand
	logger *zap.Logger
}

// NewWaveScheduler 创建波次调度器，所有波次处于 Idle
//
// 参数：
//
//	waves - 波次定义（已校验：count >= 1, interval > 0）
//	rows - 草坪行数，出怪行在 [0, rows) 中均匀选择
//	policy - 出怪类型策略
//	rng - 随机数来源
//	logger - 日志
func NewWaveScheduler(waves []config.WaveDef, rows int, policy SpawnPolicy, rng Rand, logger *zap.Logger) *WaveScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &WaveScheduler{
		waves:  make([]waveState, len(waves)),
		rows:   rows,
		policy: policy,
		rng:    rng,
		logger: logger,
	}
	for i, w := range waves {
		s.waves[i] = waveState{def: w}
	}
	return s
}

// Begin 将下一个 Idle 波次切换为 Spawning，计时器从零开始
// 已有波次在出怪或所有波次都已完成时返回 false
func (s *WaveScheduler) Begin() bool {
	if s.Spawning() || s.Completed() {
		return false
	}
	w := &s.waves[s.index]
	w.phase = WaveSpawning
	w.timer = 0
	w.spawned = 0
	s.logger.Info("wave started",
		zap.Int("wave", s.index),
		zap.Int("count", w.def.Count),
		zap.Float64("interval_ms", w.def.IntervalMs))
	return true
}

// Advance 推进当前波次的计时器并返回本次产生的出怪请求
// 本波出完后切换为 Drained 并前进到下一波
func (s *WaveScheduler) Advance(dtMs float64) []SpawnRequest {
	if !s.Spawning() || dtMs <= 0 {
		return nil
	}
	w := &s.waves[s.index]
	w.timer += dtMs

	var requests []SpawnRequest
	for w.timer >= w.def.IntervalMs && w.spawned < w.def.Count {
		w.timer -= w.def.IntervalMs
		requests = append(requests, SpawnRequest{
			Wave:  s.index,
			Row:   s.rng.Intn(s.rows),
			Enemy: s.policy.PickEnemy(s.index, w.spawned),
		})
		w.spawned++
	}

	if w.spawned >= w.def.Count {
		w.phase = WaveDrained
		s.logger.Info("wave drained", zap.Int("wave", s.index), zap.Int("spawned", w.spawned))
		s.index++
	}
	return requests
}

// Spawning 是否有波次正在出怪
func (s *WaveScheduler) Spawning() bool {
	return s.index < len(s.waves) && s.waves[s.index].phase == WaveSpawning
}

// Completed 是否所有波次都已出完（终止状态）
func (s *WaveScheduler) Completed() bool {
	return s.index >= len(s.waves)
}

// CurrentWave 当前（或下一个待开始）波次序号
func (s *WaveScheduler) CurrentWave() int {
	return s.index
}

// WaveCount 波次总数
func (s *WaveScheduler) WaveCount() int {
	return len(s.waves)
}

// Phase 返回指定波次的状态
func (s *WaveScheduler) Phase(wave int) WavePhase {
	if wave < 0 || wave >= len(s.waves) {
		return WaveIdle
	}
	return s.waves[wave].phase
}

// Spawned 返回指定波次已出怪数量
func (s *WaveScheduler) Spawned(wave int) int {
	if wave < 0 || wave >= len(s.waves) {
		return 0
	}
	return s.waves[wave].spawned
}
