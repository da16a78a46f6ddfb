package systems

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
)

// EffectSystem 效果标记阶段：衰减寿命、漂移、缩小
type EffectSystem struct {
	entities *ecs.EntityStore
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(es *ecs.EntityStore) *EffectSystem {
	return &EffectSystem{entities: es}
}

// Update 推进所有效果标记 dtMs 毫秒
func (s *EffectSystem) Update(dtMs float64) {
	scale := dtMs / config.ReferenceFrameMs * config.EffectVelocityScale

	s.entities.ForEachEffect(func(m *components.EffectMarker) {
		if m.Tick(dtMs) {
			return
		}
		m.X += m.VX * scale
		m.Y += m.VY * scale
		m.Size *= config.EffectSizeDecay
	})

	s.entities.RemoveEffectsWhere(func(m *components.EffectMarker) bool { return m.Expired() })
}
