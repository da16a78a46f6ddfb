package config

// 单位配置常量
// 本文件定义了模拟核心使用的固定参数（时间基准、碰撞半径、边界、效果衰减等）
// 这些数值不属于数据表，修改它们会改变游戏手感

// Timing Configuration (时间基准)
const (
	// ReferenceFrameMs 参考帧时长（毫秒）
	// 所有"每帧"速度都按 dt/ReferenceFrameMs 缩放，使结果与实际帧率无关
	ReferenceFrameMs = 16.0
)

// Projectile Configuration (子弹配置)
const (
	// ProjectileRadius 子弹碰撞半径（像素）
	ProjectileRadius = 7.0

	// ProjectileTTLMs 子弹最大存活时间（毫秒）
	ProjectileTTLMs = 4000.0

	// ProjectileBoundsMargin 子弹水平越界余量（像素）
	// x < -margin 或 x > width+margin 时删除
	ProjectileBoundsMargin = 40.0

	// ProjectileMuzzleOffsetX 子弹出膛位置相对格子中心的水平偏移（格子宽度的比例）
	ProjectileMuzzleOffsetX = 0.2

	// ProjectileMuzzleOffsetY 射击原点相对格子中心的垂直偏移（像素）
	ProjectileMuzzleOffsetY = -6.0

	// DefaultProjectileSpeed 未配置子弹速度时的默认值（像素/参考帧）
	DefaultProjectileSpeed = 4.0
)

// Enemy Configuration (僵尸配置)
const (
	// EnemyCollisionRadius 僵尸碰撞半径（像素）
	// 子弹与僵尸中心距离 < ProjectileRadius + EnemyCollisionRadius 即命中
	EnemyCollisionRadius = 18.0

	// EnemySpeedScale 僵尸速度缩放系数
	// 位移 = speed * (dt/ReferenceFrameMs) * EnemySpeedScale
	EnemySpeedScale = 60.0

	// EnemyBiteNudge 啃食时僵尸被推回的距离（像素）
	EnemyBiteNudge = 10.0

	// EnemyBreachX 突破阈值（世界坐标X）
	// 僵尸 x 小于该值视为突破防线
	EnemyBreachX = -40.0

	// EnemySpawnOffsetX 僵尸出生点相对场地右边缘的偏移（像素）
	EnemySpawnOffsetX = 40.0

	// EnemySpawnJitterX 出生点额外的随机水平偏移上限（像素）
	EnemySpawnJitterX = 120.0

	// EnemyRowOffsetRatio 僵尸在行内的垂直位置（行高比例）
	EnemyRowOffsetRatio = 0.6

	// DefaultEnemyReward 未配置奖励时的默认击杀奖励
	DefaultEnemyReward = 8
)

// Generator Configuration (产阳光配置)
const (
	// DefaultGenerationIntervalMs 向日葵默认产阳光间隔（毫秒）
	DefaultGenerationIntervalMs = 4000.0

	// DefaultGenerationAmount 向日葵默认每次产出阳光数量
	DefaultGenerationAmount = 15
)

// Effect Configuration (效果配置)
const (
	// EffectVelocityScale 效果标记速度缩放系数
	EffectVelocityScale = 40.0

	// EffectSizeDecay 效果标记每帧尺寸衰减系数
	EffectSizeDecay = 0.995

	// DeathBurstCount 僵尸死亡时产生的火花数量
	DeathBurstCount = 8

	// DeathBurstSpread 死亡火花位置抖动范围（像素）
	DeathBurstSpread = 20.0

	// DeathBurstSpeed 死亡火花速度抖动范围
	DeathBurstSpeed = 1.2

	// DeathBurstLifeMs 死亡火花最短寿命（毫秒），实际寿命再加 [0, DeathBurstLifeJitterMs)
	DeathBurstLifeMs = 600.0

	// DeathBurstLifeJitterMs 死亡火花寿命随机增量上限（毫秒）
	DeathBurstLifeJitterMs = 400.0

	// HitSparkLifeMs 命中火花寿命（毫秒）
	HitSparkLifeMs = 500.0

	// HitSparkSpeed 命中火花速度抖动范围
	HitSparkSpeed = 0.6

	// PlacementPulseLifeMs 种植脉冲寿命（毫秒）
	PlacementPulseLifeMs = 400.0

	// PlacementPulseSize 种植脉冲初始尺寸
	PlacementPulseSize = 24.0

	// SunMarkerLifeMs 阳光标记寿命（毫秒）
	SunMarkerLifeMs = 800.0

	// SunMarkerRiseSpeed 阳光标记上升速度（负值向上）
	SunMarkerRiseSpeed = -0.06

	// MuzzleFlashLifeMs 枪口火焰寿命（毫秒）
	MuzzleFlashLifeMs = 260.0

	// BiteMarkerLifeMs 啃食标记寿命（毫秒）
	BiteMarkerLifeMs = 300.0

	// BiteMarkerSize 啃食标记尺寸
	BiteMarkerSize = 8.0

	// SunMarkerOffsetY 阳光标记相对格子中心的垂直偏移（像素）
	SunMarkerOffsetY = -10.0

	// SunMarkerSize 阳光标记尺寸
	SunMarkerSize = 10.0

	// MuzzleFlashOffsetX 枪口火焰相对射击原点的水平偏移（像素）
	MuzzleFlashOffsetX = 6.0

	// MuzzleFlashSpeed 枪口火焰沿射击方向的速度
	MuzzleFlashSpeed = 0.3

	// SparkSize 火花与枪口火焰尺寸
	SparkSize = 6.0
)

// Effect Colors (效果颜色)
const (
	SunMarkerColor   = "#FFD36E"
	HitSparkColor    = "#ffffff"
	DeathSparkColor  = "#ffddff"
	MuzzleFlashColor = "#ffffff"
	BiteMarkerColor  = "#ffdd88"
)
