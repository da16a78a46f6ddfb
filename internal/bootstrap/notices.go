package bootstrap

import (
	"fmt"

	"github.com/decker502/lanedefense/pkg/game"
)

// NoticeDurationMs 提示文字显示时长
const NoticeDurationMs = 1400.0

// Notices 把模拟事件转换为短暂显示的提示文字
// 只保留最近一条
type Notices struct {
	text        string
	remainingMs float64
}

// NewNotices 创建提示
func NewNotices() *Notices {
	return &Notices{}
}

// OnEvent 实现 game.Listener
func (n *Notices) OnEvent(e game.Event) {
	switch e.Type {
	case game.EventInsufficientFunds:
		n.Show("Not enough sun")
	case game.EventCellOccupied:
		n.Show("Cell occupied")
	case game.EventAllWavesCompleted:
		n.Show("All waves completed!")
	case game.EventWaveStarted:
		if wave, ok := e.Data.(int); ok {
			n.Show(fmt.Sprintf("Wave %d", wave+1))
		}
	}
}

// Show 显示一条提示
func (n *Notices) Show(text string) {
	n.text = text
	n.remainingMs = NoticeDurationMs
}

// Tick 推进显示计时
func (n *Notices) Tick(dtMs float64) {
	if n.remainingMs <= 0 {
		return
	}
	n.remainingMs -= dtMs
	if n.remainingMs <= 0 {
		n.text = ""
	}
}

// Text 返回当前提示，没有时为空字符串
func (n *Notices) Text() string {
	return n.text
}
