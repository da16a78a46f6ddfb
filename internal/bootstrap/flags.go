package bootstrap

import (
	"flag"

	"github.com/decker502/lanedefense/pkg/config"
)

// Flags 两个驱动共用的命令行参数
// 非零值覆盖设置文件中的对应项
type Flags struct {
	SettingsPath string
	UnitsPath    string
	ScriptPath   string
	Seed         int64
	LogLevel     string
	Metrics      bool
}

// RegisterFlags 在 fs 上注册命令行参数
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.SettingsPath, "settings", "", "settings TOML file (default: embedded settings)")
	fs.StringVar(&f.UnitsPath, "units", "", "unit table YAML file (overrides settings)")
	fs.StringVar(&f.ScriptPath, "script", "", "Lua spawn policy script, or \"builtin\" (overrides settings)")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed (overrides settings, 0 keeps the configured seed)")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides settings)")
	fs.BoolVar(&f.Metrics, "metrics", false, "enable OpenTelemetry counters")
	return f
}

// Settings 加载设置文件并应用命令行覆盖
func (f *Flags) Settings() (*config.Settings, error) {
	settings, err := LoadSettings(f.SettingsPath)
	if err != nil {
		return nil, err
	}
	if f.UnitsPath != "" {
		settings.Sim.UnitsFile = f.UnitsPath
	}
	if f.ScriptPath != "" {
		settings.Scripting.SpawnPolicy = f.ScriptPath
	}
	if f.Seed != 0 {
		settings.Sim.Seed = f.Seed
	}
	if f.LogLevel != "" {
		settings.Logging.Level = f.LogLevel
	}
	if f.Metrics {
		settings.Metrics.Enabled = true
	}
	return settings, nil
}
