package main

import (
	"time"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/systems"
	"github.com/decker502/lanedefense/pkg/types"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

// terminalUI 终端驱动
// 模拟只在 run 的事件循环 goroutine 中访问
type terminalUI struct {
	screen  tcell.Screen
	sim     *systems.Simulation
	notices *bootstrap.Notices
	logger  *zap.Logger

	slots     []types.DefenderKind
	selected  int
	cursorRow int
	cursorCol int
}

func newTerminalUI(screen tcell.Screen, session *bootstrap.Session) *terminalUI {
	return &terminalUI{
		screen:  screen,
		sim:     session.Sim,
		notices: session.Notices,
		logger:  session.Logger.Named("tui"),
		slots:   bootstrap.Slots(session.Units),
	}
}

// run 事件循环：输入事件由独立 goroutine 读取后送入通道，
// 定时器每帧推进模拟并重绘
func (u *terminalUI) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !u.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			u.tick(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
			u.screen.Clear()
			u.render(u.screen)
			u.screen.Show()
		}
	}
}

// tick 推进模拟与提示计时
func (u *terminalUI) tick(dtMs float64) {
	u.sim.Step(dtMs)
	u.notices.Tick(dtMs)
}

// handleEvent 处理一个输入事件，返回 false 表示退出
func (u *terminalUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if row, col, ok := termToCell(u.sim.Grid(), x, y); ok {
				u.cursorRow, u.cursorCol = row, col
				u.place()
			}
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

// handleKey 键盘：s/p/r 控制，1-9 选卡，方向键移动光标，回车或空格种植，q/Esc 退出
func (u *terminalUI) handleKey(ev *tcell.EventKey) bool {
	return u.handleKeyCode(ev.Key(), ev.Rune())
}

func (u *terminalUI) handleKeyCode(key tcell.Key, r rune) bool {
	g := u.sim.Grid()
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.cursorRow = clamp(u.cursorRow-1, 0, g.Rows-1)
	case tcell.KeyDown:
		u.cursorRow = clamp(u.cursorRow+1, 0, g.Rows-1)
	case tcell.KeyLeft:
		u.cursorCol = clamp(u.cursorCol-1, 0, g.Columns-1)
	case tcell.KeyRight:
		u.cursorCol = clamp(u.cursorCol+1, 0, g.Columns-1)
	case tcell.KeyEnter:
		u.place()
	case tcell.KeyRune:
		return u.handleRune(r)
	}
	return true
}

func (u *terminalUI) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == 's':
		u.sim.Start()
	case r == 'p':
		u.sim.Pause()
	case r == 'r':
		u.sim.Restart()
		u.notices.Show("Restarted")
	case r == ' ':
		u.place()
	case r >= '1' && r <= '9':
		if slot := int(r - '1'); slot < len(u.slots) {
			u.selected = slot
		}
	}
	return true
}

// place 在光标处种植当前选中的防御单位
func (u *terminalUI) place() systems.PlaceResult {
	if len(u.slots) == 0 {
		return systems.PlaceUnknownDefender
	}
	result := u.sim.TryPlace(u.cursorRow, u.cursorCol, u.slots[u.selected])
	u.logger.Debug("placement requested",
		zap.Int("row", u.cursorRow),
		zap.Int("col", u.cursorCol),
		zap.Stringer("result", result))
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
