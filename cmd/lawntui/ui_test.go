package main

import (
	"testing"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/systems"
	"github.com/decker502/lanedefense/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// recordingWriter 记录写入的字符
type recordingWriter struct {
	cells map[[2]int]rune
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{cells: make(map[[2]int]rune)}
}

func (w *recordingWriter) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	w.cells[[2]int{x, y}] = primary
}

func newTestUI(t *testing.T) *terminalUI {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Sim.Seed = 21
	session, err := bootstrap.New(settings, nil)
	if err != nil {
		t.Fatalf("bootstrap.New() failed: %v", err)
	}
	t.Cleanup(session.Close)

	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	return newTerminalUI(screen, session)
}

func TestTermToCell(t *testing.T) {
	g := config.DefaultSettings().Grid
	tests := []struct {
		name     string
		tx, ty   int
		row, col int
		ok       bool
	}{
		{"左上格子", 0, lawnTop, 0, 0, true},
		{"格子内部", cellCols*3 + 2, lawnTop + cellRows*2 + 1, 2, 3, true},
		{"状态栏", 5, lawnTop - 1, 0, 0, false},
		{"草坪右侧", cellCols * g.Columns, lawnTop, 0, 0, false},
		{"草坪下方", 0, lawnTop + cellRows*g.Rows, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := termToCell(g, tt.tx, tt.ty)
			if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
				t.Errorf("termToCell(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.tx, tt.ty, row, col, ok, tt.row, tt.col, tt.ok)
			}
		})
	}
}

func TestWorldToTermMatchesCells(t *testing.T) {
	g := config.DefaultSettings().Grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			x := float64(col)*g.CellWidth + g.CellWidth/2
			y := float64(row)*g.CellHeight + g.CellHeight/2
			tx, ty := worldToTerm(g, x, y)
			r, c, ok := termToCell(g, tx, ty)
			if !ok || r != row || c != col {
				t.Errorf("cell center (%d, %d) mapped back to (%d, %d, %v)", row, col, r, c, ok)
			}
		}
	}
}

func TestDefenderGlyph(t *testing.T) {
	if got := defenderGlyph(&config.DefenderDef{Name: "peashooter"}); got != 'P' {
		t.Errorf("Expected 'P', got %q", got)
	}
	if got := defenderGlyph(&config.DefenderDef{ID: "sunflower"}); got != 'S' {
		t.Errorf("Expected 'S' from id, got %q", got)
	}
	if got := defenderGlyph(&config.DefenderDef{}); got != '?' {
		t.Errorf("Expected '?' for unnamed defender, got %q", got)
	}
}

func TestHandleRuneControls(t *testing.T) {
	u := newTestUI(t)

	u.handleRune('s')
	if u.sim.State() != game.RunRunning {
		t.Errorf("Expected running after 's', got %v", u.sim.State())
	}
	u.handleRune('p')
	if u.sim.State() != game.RunPaused {
		t.Errorf("Expected paused after 'p', got %v", u.sim.State())
	}
	u.handleRune('r')
	if u.sim.State() != game.RunStopped {
		t.Errorf("Expected stopped after 'r', got %v", u.sim.State())
	}
	if u.handleRune('q') {
		t.Error("Expected 'q' to quit")
	}
}

func TestHandleRuneSelect(t *testing.T) {
	u := newTestUI(t)

	u.handleRune('2')
	if u.slots[u.selected] != types.DefenderPeashooter {
		t.Errorf("Expected peashooter selected, got %v", u.slots[u.selected])
	}
	u.handleRune('9')
	if u.selected != 1 {
		t.Errorf("Expected out of range key to be ignored, got slot %d", u.selected)
	}
}

func TestHandleKeyCursorAndPlace(t *testing.T) {
	u := newTestUI(t)

	u.handleKeyCode(tcell.KeyDown, 0)
	u.handleKeyCode(tcell.KeyRight, 0)
	u.handleKeyCode(tcell.KeyRight, 0)
	u.handleKeyCode(tcell.KeyUp, 0)
	u.handleKeyCode(tcell.KeyUp, 0)
	if u.cursorRow != 0 || u.cursorCol != 2 {
		t.Fatalf("Expected cursor at (0, 2), got (%d, %d)", u.cursorRow, u.cursorCol)
	}

	if got := u.place(); got != systems.Placed {
		t.Fatalf("place() = %v, want Placed", got)
	}
	if got := u.place(); got != systems.PlaceCellOccupied {
		t.Errorf("second place() = %v, want CellOccupied", got)
	}
	if u.handleKeyCode(tcell.KeyEscape, 0) {
		t.Error("Expected Escape to quit")
	}
}

func TestTickAdvancesOnlyWhenRunning(t *testing.T) {
	u := newTestUI(t)

	u.tick(100)
	if u.sim.ElapsedMs() != 0 {
		t.Errorf("Expected stopped simulation not to advance, got %.1f", u.sim.ElapsedMs())
	}
	u.sim.Start()
	u.tick(100)
	if u.sim.ElapsedMs() != 100 {
		t.Errorf("Expected 100 ms elapsed, got %.1f", u.sim.ElapsedMs())
	}
}

func TestRenderDrawsDefendersAndEnemies(t *testing.T) {
	u := newTestUI(t)
	if got := u.sim.TryPlace(1, 1, types.DefenderSunflower); got != systems.Placed {
		t.Fatalf("TryPlace() = %v", got)
	}
	u.sim.Entities().RemoveEffectsWhere(func(*components.EffectMarker) bool { return true })

	g := u.sim.Grid()
	def, ok := u.sim.Units().Enemy(types.EnemyTriangle)
	if !ok {
		t.Fatal("triangle enemy not defined")
	}
	ex, ey := g.CellWidth*4.5, g.CellHeight*2.5
	u.sim.Entities().AddEnemy(&components.Enemy{
		Position: components.Position{X: ex, Y: ey},
		Health:   components.Health{Current: def.Health, Max: def.Health},
		Row:      2,
		Speed:    def.Speed,
		Reward:   def.Reward,
		Def:      def,
	})

	w := newRecordingWriter()
	u.render(w)

	if got := w.cells[[2]int{1*cellCols + cellCols/2, lawnTop + 1*cellRows}]; got != 'S' {
		t.Errorf("Expected sunflower glyph in cell (1, 1), got %q", got)
	}
	tx, ty := worldToTerm(g, ex, ey)
	if got := w.cells[[2]int{tx, ty}]; got != '◄' {
		t.Errorf("Expected triangle glyph at (%d, %d), got %q", tx, ty, got)
	}
}
