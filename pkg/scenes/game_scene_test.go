package scenes

import (
	"testing"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/systems"
	"github.com/decker502/lanedefense/pkg/types"
)

func newTestScene(t *testing.T) *GameScene {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Sim.Seed = 5
	session, err := bootstrap.New(settings, nil)
	if err != nil {
		t.Fatalf("bootstrap.New() failed: %v", err)
	}
	t.Cleanup(session.Close)
	return NewGameScene(session.Sim, session.Notices, nil)
}

// cellScreenPos 返回格子中心的屏幕坐标
func cellScreenPos(g config.GridConfig, row, col int) (int, int) {
	x := config.LawnOriginX + float64(col)*g.CellWidth + g.CellWidth/2
	y := config.LawnOriginY + float64(row)*g.CellHeight + g.CellHeight/2
	return int(x), int(y)
}

func TestGameSceneDefaultSelection(t *testing.T) {
	s := newTestScene(t)
	if got := s.SelectedKind(); got != types.DefenderSunflower {
		t.Errorf("Expected first card selected, got %v", got)
	}

	s.selectSlot(2)
	if got := s.SelectedKind(); got != types.DefenderRepeater {
		t.Errorf("Expected repeater after selecting slot 2, got %v", got)
	}

	s.selectSlot(7)
	if got := s.SelectedKind(); got != types.DefenderRepeater {
		t.Errorf("Expected out of range slot to be ignored, got %v", got)
	}
}

func TestGameScenePlaceAt(t *testing.T) {
	s := newTestScene(t)
	g := s.sim.Grid()

	x, y := cellScreenPos(g, 2, 3)
	result, ok := s.placeAt(x, y)
	if !ok || result != systems.Placed {
		t.Fatalf("placeAt(%d, %d) = %v, %v, want Placed", x, y, result, ok)
	}
	if _, found := s.sim.Entities().DefenderAt(2, 3); !found {
		t.Error("Expected defender at (2, 3)")
	}

	result, _ = s.placeAt(x, y)
	if result != systems.PlaceCellOccupied {
		t.Errorf("Expected CellOccupied on second click, got %v", result)
	}
	if s.notices.Text() != "Cell occupied" {
		t.Errorf("Expected occupied notice, got %q", s.notices.Text())
	}
}

func TestGameScenePlaceAtOutsideLawn(t *testing.T) {
	s := newTestScene(t)

	// 点击状态栏
	if _, ok := s.placeAt(10, config.HUDHeight/2); ok {
		t.Error("Expected click on HUD to be ignored")
	}
	if got := s.sim.Sun(); got != 50 {
		t.Errorf("Expected sun unchanged, got %d", got)
	}
}

func TestGameScenePlaceInsufficientFunds(t *testing.T) {
	s := newTestScene(t)
	s.selectSlot(1)

	x, y := cellScreenPos(s.sim.Grid(), 0, 0)
	result, ok := s.placeAt(x, y)
	if !ok || result != systems.PlaceInsufficientFunds {
		t.Errorf("Expected InsufficientFunds for peashooter with 50 sun, got %v", result)
	}
	if s.notices.Text() != "Not enough sun" {
		t.Errorf("Expected funds notice, got %q", s.notices.Text())
	}
}

func TestGameSceneControls(t *testing.T) {
	s := newTestScene(t)

	s.advance(0.5)
	if s.sim.ElapsedMs() != 0 {
		t.Errorf("Expected stopped simulation not to advance, got %.1f ms", s.sim.ElapsedMs())
	}

	s.control(ActionStart)
	s.advance(0.5)
	if s.sim.State() != game.RunRunning || s.sim.ElapsedMs() != 500 {
		t.Errorf("Expected running at 500 ms, got %v at %.1f ms", s.sim.State(), s.sim.ElapsedMs())
	}

	s.control(ActionPause)
	s.advance(0.5)
	if s.sim.State() != game.RunPaused || s.sim.ElapsedMs() != 500 {
		t.Errorf("Expected paused at 500 ms, got %v at %.1f ms", s.sim.State(), s.sim.ElapsedMs())
	}

	s.control(ActionRestart)
	if s.sim.State() != game.RunStopped || s.sim.ElapsedMs() != 0 {
		t.Errorf("Expected restart to stop and reset, got %v at %.1f ms", s.sim.State(), s.sim.ElapsedMs())
	}
	if s.notices.Text() != "Restarted" {
		t.Errorf("Expected restart notice, got %q", s.notices.Text())
	}
}

func TestGameSceneNoticeExpires(t *testing.T) {
	s := newTestScene(t)
	s.notices.Show("hello")

	s.advance(2)
	if s.notices.Text() != "" {
		t.Errorf("Expected notice to expire, got %q", s.notices.Text())
	}
}
