//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.lanedefense -o build/android/lanedefense.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/LaneDefense.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/app"
)

func init() {
	// 移动端只使用内嵌设置与数据
	settings, err := bootstrap.LoadSettings("")
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	logger, err := bootstrap.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	session, err := bootstrap.New(settings, logger)
	if err != nil {
		log.Fatalf("session setup failed: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(app.NewApp(session))
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
