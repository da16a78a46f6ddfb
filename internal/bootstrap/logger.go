package bootstrap

import (
	"github.com/decker502/lanedefense/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 根据日志配置创建 zap 日志
// Format 为 "json" 时使用生产配置，否则使用带颜色的控制台输出
// 无法识别的级别按 info 处理
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	return buildConfig(cfg).Build()
}

// NewFileLogger 与 NewLogger 相同，但输出写入 path
// 终端驱动占用了标准输出，日志只能写文件
func NewFileLogger(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	zapCfg := buildConfig(cfg)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapCfg.Build()
}

func buildConfig(cfg config.LoggingConfig) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}
