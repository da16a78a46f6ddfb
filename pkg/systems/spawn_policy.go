package systems

import (
	"github.com/decker502/lanedefense/pkg/config"
)

// Rand 模拟使用的随机数来源
// *rand.Rand 满足该接口；同一种子下一局的出怪、火花抖动完全可复现
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SpawnPolicy 出怪类型策略
// wave 为波次序号（0-based），spawn 为本波已出怪数量
type SpawnPolicy interface {
	PickEnemy(wave, spawn int) *config.EnemyDef
}

// WeightedPolicy 按 spawnWeight 加权随机选择僵尸类型
// 默认数据中 triangle:pentagon = 3:1，即 75%/25%
type WeightedPolicy struct {
	rng     Rand
	entries []*config.EnemyDef
	total   int
}

// NewWeightedPolicy 根据单位数据表创建加权策略
// 所有权重都为 0 时退化为等概率选择
func NewWeightedPolicy(units *config.UnitTable, rng Rand) *WeightedPolicy {
	p := &WeightedPolicy{rng: rng}
	for i := range units.Enemies {
		e := &units.Enemies[i]
		p.entries = append(p.entries, e)
		p.total += e.SpawnWeight
	}
	return p
}

// PickEnemy 实现 SpawnPolicy
func (p *WeightedPolicy) PickEnemy(wave, spawn int) *config.EnemyDef {
	if len(p.entries) == 0 {
		return nil
	}
	if p.total <= 0 {
		return p.entries[p.rng.Intn(len(p.entries))]
	}

	r := p.rng.Intn(p.total)
	upto := 0
	for _, e := range p.entries {
		if upto+e.SpawnWeight > r {
			return e
		}
		upto += e.SpawnWeight
	}
	return p.entries[len(p.entries)-1]
}
