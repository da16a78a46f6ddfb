package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings 运行时设置（TOML）
// 与单位数据表分开：这里只放场地几何、经济初始值、随机种子以及日志/脚本/指标开关
type Settings struct {
	Grid      GridConfig      `toml:"grid"`
	Economy   EconomyConfig   `toml:"economy"`
	Sim       SimConfig       `toml:"simulation"`
	Logging   LoggingConfig   `toml:"logging"`
	Scripting ScriptingConfig `toml:"scripting"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// GridConfig 草坪网格几何
type GridConfig struct {
	Rows       int     `toml:"rows"`
	Columns    int     `toml:"columns"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Width 返回场地宽度（像素）
func (g GridConfig) Width() float64 {
	return float64(g.Columns) * g.CellWidth
}

// Height 返回场地高度（像素）
func (g GridConfig) Height() float64 {
	return float64(g.Rows) * g.CellHeight
}

// InBounds 判断 (row, col) 是否在网格内
func (g GridConfig) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Columns
}

// EconomyConfig 经济参数
type EconomyConfig struct {
	StartingSun int `toml:"starting_sun"`
	SunCap      int `toml:"sun_cap"` // 0 表示不设上限
}

// SimConfig 模拟参数
type SimConfig struct {
	Seed      int64  `toml:"seed"`       // 0 表示使用当前时间
	UnitsFile string `toml:"units_file"` // 为空时使用内嵌默认数据
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// ScriptingConfig Lua 出怪策略配置
type ScriptingConfig struct {
	SpawnPolicy string `toml:"spawn_policy"` // Lua 脚本路径，为空时使用权重策略
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// LoadSettings 从 TOML 文件加载运行时设置
// 文件中未出现的字段保留默认值
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	cfg, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSettings 解析 TOML 数据并校验
func ParseSettings(data []byte) (*Settings, error) {
	cfg := DefaultSettings()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验设置的合法性
func (s *Settings) Validate() error {
	if s.Grid.Rows < 1 || s.Grid.Columns < 1 {
		return fmt.Errorf("grid must have at least one row and column, got %dx%d", s.Grid.Rows, s.Grid.Columns)
	}
	if s.Grid.CellWidth <= 0 || s.Grid.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %.1fx%.1f", s.Grid.CellWidth, s.Grid.CellHeight)
	}
	if s.Economy.StartingSun < 0 {
		return fmt.Errorf("starting_sun cannot be negative, got %d", s.Economy.StartingSun)
	}
	if s.Economy.SunCap < 0 {
		return fmt.Errorf("sun_cap cannot be negative, got %d", s.Economy.SunCap)
	}
	if s.Economy.SunCap > 0 && s.Economy.StartingSun > s.Economy.SunCap {
		return fmt.Errorf("starting_sun %d exceeds sun_cap %d", s.Economy.StartingSun, s.Economy.SunCap)
	}
	return nil
}

// DefaultSettings 返回默认设置
// 5x9 草坪，初始阳光 50（原版数值），阳光上限 9990
func DefaultSettings() *Settings {
	return &Settings{
		Grid: GridConfig{
			Rows:       5,
			Columns:    9,
			CellWidth:  110,
			CellHeight: 120,
		},
		Economy: EconomyConfig{
			StartingSun: 50,
			SunCap:      0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
