package components

import "github.com/decker502/lanedefense/pkg/types"

// EffectKind 效果标记的视觉提示
type EffectKind int

const (
	// EffectPulse 种植时的脉冲
	EffectPulse EffectKind = iota
	// EffectSun 产阳光时上升的光点
	EffectSun
	// EffectSpark 命中或死亡时的火花
	EffectSpark
	// EffectMuzzle 射击时的枪口火焰
	EffectMuzzle
	// EffectBite 啃食时的碎屑
	EffectBite
)

// String 返回效果类型名称
func (k EffectKind) String() string {
	switch k {
	case EffectPulse:
		return "pulse"
	case EffectSun:
		return "sun"
	case EffectSpark:
		return "spark"
	case EffectMuzzle:
		return "muzzle"
	case EffectBite:
		return "bite"
	default:
		return "unknown"
	}
}

// EffectMarker 短暂的纯装饰记录
// 模拟逻辑只负责它的衰减，从不读取它做判断
type EffectMarker struct {
	ID types.EntityID

	Position
	Velocity
	Lifetime

	Kind  EffectKind
	Size  float64
	Color string
}
