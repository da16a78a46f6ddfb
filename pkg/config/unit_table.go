package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/lanedefense/pkg/embedded"
	"github.com/decker502/lanedefense/pkg/types"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownDefender 配置或请求中出现了未知的防御单位 id
	ErrUnknownDefender = errors.New("unknown defender")
	// ErrUnknownEnemy 配置或请求中出现了未知的僵尸 id
	ErrUnknownEnemy = errors.New("unknown enemy")
)

// DefenderDef 防御单位类型定义（不可变）
type DefenderDef struct {
	ID                   string  `yaml:"id"`
	Name                 string  `yaml:"name"`
	Cost                 int     `yaml:"cost"`
	CooldownMs           float64 `yaml:"rate"`           // 射击冷却（毫秒），0 表示不射击
	Damage               int     `yaml:"damage"`         // 每发子弹伤害
	ProjectileSpeed      float64 `yaml:"bulletSpeed"`    // 子弹速度（像素/参考帧）
	Generator            bool    `yaml:"generator"`      // 是否被动产生阳光
	GenerationIntervalMs float64 `yaml:"sunInterval"`    // 产阳光间隔（毫秒）
	GenerationAmount     int     `yaml:"sunPerInterval"` // 每次产出阳光
	Size                 float64 `yaml:"size"`
	Color                string  `yaml:"color"`

	// Kind 加载时由 ID 解析得到
	Kind types.DefenderKind `yaml:"-"`
}

// Shoots 判断该类型是否会射击
func (d *DefenderDef) Shoots() bool {
	return d.CooldownMs > 0
}

// EnemyDef 僵尸类型定义（不可变）
type EnemyDef struct {
	ID          string  `yaml:"id"`
	Health      int     `yaml:"hp"`
	Speed       float64 `yaml:"speed"`
	Reward      int     `yaml:"reward"`
	SpawnWeight int     `yaml:"spawnWeight"`
	Color       string  `yaml:"color"`

	// Kind 加载时由 ID 解析得到
	Kind types.EnemyKind `yaml:"-"`
}

// WaveDef 单个波次定义
type WaveDef struct {
	Count      int     `yaml:"count"`
	IntervalMs float64 `yaml:"interval"`
}

// UnitTable 单位数据表：防御单位、僵尸与波次
type UnitTable struct {
	Defenders []DefenderDef `yaml:"defenders"`
	Enemies   []EnemyDef    `yaml:"enemies"`
	Waves     []WaveDef     `yaml:"waves"`

	defenderIndex map[types.DefenderKind]*DefenderDef
	enemyIndex    map[types.EnemyKind]*EnemyDef
}

// LoadUnitTable 加载单位数据表
// path 为空时读取内嵌默认数据，否则从文件系统读取
//
// 返回：
//
//	*UnitTable - 解析、补全默认值并校验后的数据表
//	error - 读取、解析或校验失败时返回
func LoadUnitTable(path string) (*UnitTable, error) {
	var (
		data []byte
		err  error
	)
	source := path
	if path == "" {
		source = embedded.UnitsPath
		data, err = embedded.ReadFile(embedded.UnitsPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read unit table %s: %w", source, err)
	}

	table, err := ParseUnitTable(data)
	if err != nil {
		return nil, fmt.Errorf("invalid unit table %s: %w", source, err)
	}
	return table, nil
}

// ParseUnitTable 从 YAML 数据解析单位数据表
func ParseUnitTable(data []byte) (*UnitTable, error) {
	var table UnitTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := table.resolve(); err != nil {
		return nil, err
	}
	return &table, nil
}

// resolve 将字符串 id 解析为枚举、补全默认值并建立索引
func (t *UnitTable) resolve() error {
	if len(t.Defenders) == 0 {
		return fmt.Errorf("at least one defender type is required")
	}
	if len(t.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	t.defenderIndex = make(map[types.DefenderKind]*DefenderDef, len(t.Defenders))
	for i := range t.Defenders {
		d := &t.Defenders[i]
		d.Kind = types.DefenderKindFromString(d.ID)
		if d.Kind == types.DefenderUnknown {
			return fmt.Errorf("defender %q: %w", d.ID, ErrUnknownDefender)
		}
		if _, dup := t.defenderIndex[d.Kind]; dup {
			return fmt.Errorf("defender %q defined twice", d.ID)
		}
		if err := validateDefender(d); err != nil {
			return err
		}
		if d.Generator {
			if d.GenerationIntervalMs == 0 {
				d.GenerationIntervalMs = DefaultGenerationIntervalMs
			}
			if d.GenerationAmount == 0 {
				d.GenerationAmount = DefaultGenerationAmount
			}
		}
		if d.Shoots() && d.ProjectileSpeed == 0 {
			d.ProjectileSpeed = DefaultProjectileSpeed
		}
		t.defenderIndex[d.Kind] = d
	}

	t.enemyIndex = make(map[types.EnemyKind]*EnemyDef, len(t.Enemies))
	for i := range t.Enemies {
		e := &t.Enemies[i]
		e.Kind = types.EnemyKindFromString(e.ID)
		if e.Kind == types.EnemyUnknown {
			return fmt.Errorf("enemy %q: %w", e.ID, ErrUnknownEnemy)
		}
		if _, dup := t.enemyIndex[e.Kind]; dup {
			return fmt.Errorf("enemy %q defined twice", e.ID)
		}
		if err := validateEnemy(e); err != nil {
			return err
		}
		if e.Reward == 0 {
			e.Reward = DefaultEnemyReward
		}
		t.enemyIndex[e.Kind] = e
	}

	for i, w := range t.Waves {
		if w.Count < 1 {
			return fmt.Errorf("wave %d: count must be at least 1, got %d", i, w.Count)
		}
		if w.IntervalMs <= 0 {
			return fmt.Errorf("wave %d: interval must be positive, got %.1f", i, w.IntervalMs)
		}
	}
	return nil
}

// validateDefender 验证防御单位配置
func validateDefender(d *DefenderDef) error {
	if d.Cost < 0 {
		return fmt.Errorf("defender %s: cost cannot be negative, got %d", d.ID, d.Cost)
	}
	if d.CooldownMs < 0 {
		return fmt.Errorf("defender %s: rate cannot be negative, got %.1f", d.ID, d.CooldownMs)
	}
	if d.Damage < 0 {
		return fmt.Errorf("defender %s: damage cannot be negative, got %d", d.ID, d.Damage)
	}
	if d.ProjectileSpeed < 0 {
		return fmt.Errorf("defender %s: bulletSpeed cannot be negative, got %.2f", d.ID, d.ProjectileSpeed)
	}
	if d.GenerationIntervalMs < 0 || d.GenerationAmount < 0 {
		return fmt.Errorf("defender %s: sun generation cannot be negative", d.ID)
	}
	return nil
}

// validateEnemy 验证僵尸配置
func validateEnemy(e *EnemyDef) error {
	if e.Health < 1 {
		return fmt.Errorf("enemy %s: hp must be at least 1, got %d", e.ID, e.Health)
	}
	if e.Speed < 0 {
		return fmt.Errorf("enemy %s: speed cannot be negative, got %.4f", e.ID, e.Speed)
	}
	if e.Reward < 0 {
		return fmt.Errorf("enemy %s: reward cannot be negative, got %d", e.ID, e.Reward)
	}
	if e.SpawnWeight < 0 {
		return fmt.Errorf("enemy %s: spawnWeight cannot be negative, got %d", e.ID, e.SpawnWeight)
	}
	return nil
}

// Defender 按枚举获取防御单位定义
func (t *UnitTable) Defender(kind types.DefenderKind) (*DefenderDef, bool) {
	d, ok := t.defenderIndex[kind]
	return d, ok
}

// DefenderByID 按配置 id 获取防御单位定义
// 未知 id 返回 ErrUnknownDefender
func (t *UnitTable) DefenderByID(id string) (*DefenderDef, error) {
	d, ok := t.Defender(types.DefenderKindFromString(id))
	if !ok {
		return nil, fmt.Errorf("defender %q: %w", id, ErrUnknownDefender)
	}
	return d, nil
}

// Enemy 按枚举获取僵尸定义
func (t *UnitTable) Enemy(kind types.EnemyKind) (*EnemyDef, bool) {
	e, ok := t.enemyIndex[kind]
	return e, ok
}

// EnemyByID 按配置 id 获取僵尸定义
// 未知 id 返回 ErrUnknownEnemy
func (t *UnitTable) EnemyByID(id string) (*EnemyDef, error) {
	e, ok := t.Enemy(types.EnemyKindFromString(id))
	if !ok {
		return nil, fmt.Errorf("enemy %q: %w", id, ErrUnknownEnemy)
	}
	return e, nil
}
