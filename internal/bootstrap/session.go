// Package bootstrap 负责把配置、日志、出怪策略和指标装配成一局可运行的模拟
// 桌面端（ebiten）与终端（tcell）驱动共用这里的装配逻辑
package bootstrap

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/embedded"
	"github.com/decker502/lanedefense/pkg/scripting"
	"github.com/decker502/lanedefense/pkg/systems"
	"go.uber.org/zap"
)

// LoadSettings 加载运行设置
// path 为空时使用内嵌的默认设置
func LoadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadSettings(path)
	}
	data, err := embedded.ReadFile(embedded.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded settings: %w", err)
	}
	settings, err := config.ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("parse embedded settings: %w", err)
	}
	return settings, nil
}

// Session 一局装配完成的模拟及其附属资源
type Session struct {
	Sim      *systems.Simulation
	Settings *config.Settings
	Units    *config.UnitTable
	Notices  *Notices
	Logger   *zap.Logger
	Seed     int64

	closers []func()
}

// New 根据设置装配模拟
//
// 步骤：
//  1. 加载单位数据表（Sim.UnitsFile 为空时使用内嵌数据）
//  2. 按种子创建随机数来源（种子为 0 时使用当前时间）
//  3. 选择出怪策略：配置了 Lua 脚本则加载脚本，并以加权策略作为回退
//  4. 开启指标时创建 OpenTelemetry 计数器
func New(settings *config.Settings, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	units, err := config.LoadUnitTable(settings.Sim.UnitsFile)
	if err != nil {
		return nil, err
	}

	seed := settings.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		Settings: settings,
		Units:    units,
		Notices:  NewNotices(),
		Logger:   logger,
		Seed:     seed,
	}

	weighted := systems.NewWeightedPolicy(units, rng)
	var policy systems.SpawnPolicy = weighted
	if script := settings.Scripting.SpawnPolicy; script != "" {
		lp, err := scripting.LoadLuaPolicy(script, units, rng, weighted, logger.Named("lua"))
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, lp.Close)
		policy = lp
		logger.Info("using lua spawn policy", zap.String("script", script))
	}

	opts := []systems.Option{
		systems.WithLogger(logger.Named("sim")),
		systems.WithRand(rng),
		systems.WithSpawnPolicy(policy),
	}
	if settings.Metrics.Enabled {
		m, err := systems.NewGlobalMetrics()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		opts = append(opts, systems.WithMetrics(m))
	}

	s.Sim = systems.NewSimulation(settings, units, opts...)
	s.Sim.Dispatcher().SubscribeAll(s.Notices)

	logger.Info("session ready",
		zap.Int64("seed", seed),
		zap.Int("defenders", len(units.Defenders)),
		zap.Int("enemies", len(units.Enemies)),
		zap.Int("waves", len(units.Waves)))
	return s, nil
}

// Close 释放附属资源（Lua 虚拟机等）
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
	_ = s.Logger.Sync()
}
