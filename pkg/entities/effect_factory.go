package entities

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/utils"
)

// 效果标记工厂
// 效果标记是纯装饰记录：模拟逻辑只推进它们的寿命、位置和尺寸

func newMarker(es *ecs.EntityStore, kind components.EffectKind, x, y, vx, vy, lifeMs, size float64, color string) *components.EffectMarker {
	m := &components.EffectMarker{
		Position: components.Position{X: x, Y: y},
		Velocity: components.Velocity{VX: vx, VY: vy},
		Lifetime: components.Lifetime{RemainingMs: lifeMs},
		Kind:     kind,
		Size:     size,
		Color:    color,
	}
	es.AddEffect(m)
	return m
}

// NewPlacementPulse 创建种植脉冲（格子中心，防御单位颜色）
func NewPlacementPulse(es *ecs.EntityStore, grid config.GridConfig, row, col int, color string) *components.EffectMarker {
	x, y := utils.CellCenter(grid, row, col)
	return newMarker(es, components.EffectPulse, x, y, 0, 0, config.PlacementPulseLifeMs, config.PlacementPulseSize, color)
}

// NewSunMarker 创建产阳光时缓慢上升的光点
func NewSunMarker(es *ecs.EntityStore, grid config.GridConfig, row, col int) *components.EffectMarker {
	x, y := utils.CellCenter(grid, row, col)
	return newMarker(es, components.EffectSun, x, y+config.SunMarkerOffsetY, 0, config.SunMarkerRiseSpeed,
		config.SunMarkerLifeMs, config.SunMarkerSize, config.SunMarkerColor)
}

// NewMuzzleFlash 创建枪口火焰，沿射击方向缓慢漂移
func NewMuzzleFlash(es *ecs.EntityStore, originX, originY, dirX, dirY float64) *components.EffectMarker {
	return newMarker(es, components.EffectMuzzle, originX+config.MuzzleFlashOffsetX, originY,
		dirX*config.MuzzleFlashSpeed, dirY*config.MuzzleFlashSpeed,
		config.MuzzleFlashLifeMs, config.SparkSize, config.MuzzleFlashColor)
}

// NewHitSpark 创建子弹命中火花
func NewHitSpark(es *ecs.EntityStore, rng Rand, x, y float64) *components.EffectMarker {
	return newMarker(es, components.EffectSpark, x, y,
		jitter(rng, config.HitSparkSpeed), jitter(rng, config.HitSparkSpeed),
		config.HitSparkLifeMs, config.SparkSize, config.HitSparkColor)
}

// NewBiteMarker 创建啃食碎屑（被啃格子的中心）
func NewBiteMarker(es *ecs.EntityStore, grid config.GridConfig, row, col int) *components.EffectMarker {
	x, y := utils.CellCenter(grid, row, col)
	return newMarker(es, components.EffectBite, x, y, 0, 0, config.BiteMarkerLifeMs, config.BiteMarkerSize, config.BiteMarkerColor)
}

// NewDeathBurst 在僵尸最后位置创建 DeathBurstCount 个死亡火花
func NewDeathBurst(es *ecs.EntityStore, rng Rand, x, y float64) []*components.EffectMarker {
	sparks := make([]*components.EffectMarker, 0, config.DeathBurstCount)
	for i := 0; i < config.DeathBurstCount; i++ {
		sx := x + jitter(rng, config.DeathBurstSpread)
		sy := y + jitter(rng, config.DeathBurstSpread)
		vx := jitter(rng, config.DeathBurstSpeed)
		vy := jitter(rng, config.DeathBurstSpeed)
		life := config.DeathBurstLifeMs + rng.Float64()*config.DeathBurstLifeJitterMs
		sparks = append(sparks, newMarker(es, components.EffectSpark, sx, sy, vx, vy, life, config.SparkSize, config.DeathSparkColor))
	}
	return sparks
}
