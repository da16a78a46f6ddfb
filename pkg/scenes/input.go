package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 一帧内读取到的控制指令
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionRestart
)

// controlKeys 控制键绑定
var controlKeys = map[ebiten.Key]Action{
	ebiten.KeyS: ActionStart,
	ebiten.KeyP: ActionPause,
	ebiten.KeyR: ActionRestart,
}

// slotKeys 数字键 1-9 对应卡片序号 0-8
var slotKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// justPressedAction 返回本帧刚按下的控制指令
func justPressedAction() Action {
	for key, action := range controlKeys {
		if inpututil.IsKeyJustPressed(key) {
			return action
		}
	}
	return ActionNone
}

// justPressedSlot 返回本帧刚按下的数字键对应的卡片序号
func justPressedSlot() (int, bool) {
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			return i, true
		}
	}
	return 0, false
}

// justTouchedOrClicked 检查是否刚刚发生点击或触摸
// 优先检测触摸（移动设备），其次鼠标左键
func justTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// pointerPosition 获取当前指针位置（触摸优先）
func pointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
