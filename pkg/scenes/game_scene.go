package scenes

import (
	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/systems"
	"github.com/decker502/lanedefense/pkg/types"
	"github.com/decker502/lanedefense/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameScene 草坪对战场景
//
// 每个 tick：读取输入 → 推进模拟 → 推进提示计时。
// 绘制只读取模拟的实体视图。
type GameScene struct {
	sim     *systems.Simulation
	notices *bootstrap.Notices
	logger  *zap.Logger

	// slots 卡片顺序（数字键 1..n）
	slots []types.DefenderKind
	// selected 当前选中的卡片序号
	selected int

	// 鼠标悬停的格子
	hoverRow, hoverCol int
	hoverValid         bool

	// 多边形填充用的白色纹理与顶点缓冲（首次绘制时创建）
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewGameScene 创建场景
// notices 可以为 nil（不显示提示文字）
func NewGameScene(sim *systems.Simulation, notices *bootstrap.Notices, logger *zap.Logger) *GameScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notices == nil {
		notices = bootstrap.NewNotices()
	}
	return &GameScene{
		sim:     sim,
		notices: notices,
		logger:  logger,
		slots:   bootstrap.Slots(sim.Units()),
	}
}

// Update 读取输入并推进模拟 deltaTime 秒
func (s *GameScene) Update(deltaTime float64) {
	if action := justPressedAction(); action != ActionNone {
		s.control(action)
	}
	if slot, ok := justPressedSlot(); ok {
		s.selectSlot(slot)
	}

	px, py := pointerPosition()
	s.hoverRow, s.hoverCol, s.hoverValid = s.cellAt(px, py)

	if clicked, x, y := justTouchedOrClicked(); clicked {
		s.placeAt(x, y)
	}

	s.advance(deltaTime)
}

// advance 推进模拟与提示计时
// Step 在非 Running 状态下不生效，提示计时始终推进
func (s *GameScene) advance(deltaTime float64) {
	dtMs := deltaTime * 1000
	s.sim.Step(dtMs)
	s.notices.Tick(dtMs)
}

// control 执行开始/暂停/重开指令
func (s *GameScene) control(action Action) {
	switch action {
	case ActionStart:
		s.sim.Start()
	case ActionPause:
		s.sim.Pause()
	case ActionRestart:
		s.sim.Restart()
		s.notices.Show("Restarted")
	}
}

// selectSlot 选中第 slot 张卡片，越界时忽略
func (s *GameScene) selectSlot(slot int) {
	if slot < 0 || slot >= len(s.slots) {
		return
	}
	s.selected = slot
	s.logger.Debug("defender selected", zap.Stringer("kind", s.slots[slot]))
}

// SelectedKind 返回当前选中的防御单位类型
func (s *GameScene) SelectedKind() types.DefenderKind {
	if len(s.slots) == 0 {
		return types.DefenderUnknown
	}
	return s.slots[s.selected]
}

// cellAt 将屏幕坐标转换为草坪格子
func (s *GameScene) cellAt(x, y int) (row, col int, ok bool) {
	return utils.ScreenToCell(s.sim.Grid(), config.LawnOriginX, config.LawnOriginY, float64(x), float64(y))
}

// placeAt 在屏幕坐标 (x, y) 处种植当前选中的防御单位
// 点击草坪以外的区域不产生任何效果
func (s *GameScene) placeAt(x, y int) (systems.PlaceResult, bool) {
	row, col, ok := s.cellAt(x, y)
	if !ok {
		return systems.PlaceOutOfBounds, false
	}
	result := s.sim.TryPlace(row, col, s.SelectedKind())
	s.logger.Debug("placement requested",
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Stringer("result", result))
	return result, true
}
