package config

import "image/color"

// 布局配置常量
// 本文件定义了桌面端画面的布局参数：顶部状态栏、草坪绘制原点以及配色
// 草坪本身的行列数与格子尺寸来自运行设置（GridConfig）

// Screen Layout (画面布局)
const (
	// HUDHeight 顶部状态栏高度（像素），草坪绘制在其下方
	HUDHeight = 64

	// LawnOriginX 草坪左上角在屏幕上的X坐标
	LawnOriginX = 0.0

	// LawnOriginY 草坪左上角在屏幕上的Y坐标
	LawnOriginY = float64(HUDHeight)

	// HUDTextX 状态栏文字起始X坐标
	HUDTextX = 8

	// HUDTextLineHeight 状态栏文字行高（DebugPrint 字体为 16px）
	HUDTextLineHeight = 16

	// HealthBarHeight 僵尸血条高度
	HealthBarHeight = 4.0

	// HealthBarOffsetY 血条相对僵尸中心的垂直偏移
	HealthBarOffsetY = -30.0

	// EnemyDrawRadius 僵尸多边形外接圆半径
	EnemyDrawRadius = 20.0
)

// ScreenSize 根据网格几何计算逻辑画面尺寸
// 宽度等于草坪宽度，高度为状态栏加草坪高度
func ScreenSize(g GridConfig) (width, height int) {
	return int(g.Width()), HUDHeight + int(g.Height())
}

// Palette (配色)
var (
	// LawnLightColor / LawnDarkColor 草坪棋盘格的两种底色
	LawnLightColor = color.RGBA{R: 112, G: 190, B: 92, A: 255}
	LawnDarkColor  = color.RGBA{R: 96, G: 172, B: 80, A: 255}

	// HUDBackgroundColor 状态栏底色
	HUDBackgroundColor = color.RGBA{R: 58, G: 42, B: 30, A: 255}

	// SelectedCardColor 当前选中的防御单位高亮
	SelectedCardColor = color.RGBA{R: 255, G: 240, B: 160, A: 255}

	// UnaffordableColor 阳光不足时的卡片颜色
	UnaffordableColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}

	// HoverCellColor 鼠标悬停格子的描边颜色
	HoverCellColor = color.RGBA{R: 255, G: 255, B: 255, A: 96}

	// ProjectileColor 子弹颜色
	ProjectileColor = color.RGBA{R: 160, G: 255, B: 120, A: 255}

	// HealthBarBackColor / HealthBarFrontColor 血条底色与前景色
	HealthBarBackColor  = color.RGBA{R: 40, G: 10, B: 10, A: 200}
	HealthBarFrontColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)
