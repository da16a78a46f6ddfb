package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/types"
)

// TestPlacementSpendsExactCost 起始 50 阳光，种植 50 阳光的单位后归零，再种任何单位都失败
func TestPlacementSpendsExactCost(t *testing.T) {
	sim := newTestSimulation(t, 50)

	if r := sim.TryPlace(0, 0, types.DefenderSunflower); r != Placed {
		t.Fatalf("Expected Placed, got %s", r)
	}
	if sim.Sun() != 0 {
		t.Errorf("Expected sun 0, got %d", sim.Sun())
	}

	for _, kind := range []types.DefenderKind{types.DefenderSunflower, types.DefenderPeashooter} {
		if r := sim.TryPlace(1, 1, kind); r != PlaceInsufficientFunds {
			t.Errorf("Expected InsufficientFunds for %s, got %s", kind, r)
		}
	}
	if sim.Sun() != 0 {
		t.Errorf("Failed placement should not change sun, got %d", sim.Sun())
	}
	if sim.Entities().OccupiedCells() != 1 {
		t.Errorf("Expected 1 occupied cell, got %d", sim.Entities().OccupiedCells())
	}
}

// TestPlacementFailuresDoNotMutate 失败的种植不改变阳光与占用格子数
func TestPlacementFailuresDoNotMutate(t *testing.T) {
	sim := newTestSimulation(t, 500)
	sim.TryPlace(2, 2, types.DefenderSunflower)
	sunBefore := sim.Sun()
	cellsBefore := sim.Entities().OccupiedCells()

	tests := []struct {
		name     string
		row, col int
		kind     types.DefenderKind
		want     PlaceResult
	}{
		{"row out of bounds", 5, 0, types.DefenderPeashooter, PlaceOutOfBounds},
		{"negative column", 0, -1, types.DefenderPeashooter, PlaceOutOfBounds},
		{"occupied", 2, 2, types.DefenderPeashooter, PlaceCellOccupied},
		{"not in unit table", 0, 0, types.DefenderRepeater, PlaceUnknownDefender},
		{"bounds checked before kind", 5, 0, types.DefenderRepeater, PlaceOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := sim.TryPlace(tt.row, tt.col, tt.kind); r != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, r)
			}
			if sim.Sun() != sunBefore {
				t.Errorf("Sun changed from %d to %d", sunBefore, sim.Sun())
			}
			if sim.Entities().OccupiedCells() != cellsBefore {
				t.Errorf("Occupied cells changed from %d to %d", cellsBefore, sim.Entities().OccupiedCells())
			}
		})
	}
}

// TestPlacementSuccessEffects 成功种植：扣除阳光、计时器为零、产生脉冲和事件
func TestPlacementSuccessEffects(t *testing.T) {
	sim := newTestSimulation(t, 300)
	rec := recordEvents(sim)

	if r := sim.TryPlace(3, 4, types.DefenderPeashooter); !r.OK() {
		t.Fatalf("Expected Placed, got %s", r)
	}
	if sim.Sun() != 200 {
		t.Errorf("Expected sun 200, got %d", sim.Sun())
	}
	d, ok := sim.Entities().DefenderAt(3, 4)
	if !ok {
		t.Fatal("Defender should occupy (3,4)")
	}
	if d.CooldownElapsed != 0 || d.GenerationElapsed != 0 {
		t.Error("New defender should have zero accumulators")
	}
	if len(sim.Effects()) != 1 || sim.Effects()[0].Kind != components.EffectPulse {
		t.Error("Placement should emit one pulse marker")
	}
	if rec.count(game.EventDefenderPlaced) != 1 {
		t.Error("Expected a DefenderPlaced event")
	}

	sim.TryPlace(3, 4, types.DefenderSunflower)
	sim.Ledger().Reset(0)
	sim.TryPlace(0, 0, types.DefenderSunflower)
	if rec.count(game.EventCellOccupied) != 1 || rec.count(game.EventInsufficientFunds) != 1 {
		t.Errorf("Unexpected failure events: %v", rec.types())
	}
}

// TestNoTwoDefendersShareCell 任意种植/移除序列后每个格子至多一个防御单位
func TestNoTwoDefendersShareCell(t *testing.T) {
	sim := newTestSimulation(t, 100000)
	rng := rand.New(rand.NewSource(99))
	grid := sim.Grid()

	for i := 0; i < 2000; i++ {
		row := rng.Intn(grid.Rows+2) - 1
		col := rng.Intn(grid.Columns+2) - 1
		switch rng.Intn(3) {
		case 0, 1:
			sim.TryPlace(row, col, types.DefenderSunflower)
		case 2:
			sim.Entities().RemoveDefendersWhere(func(d *components.Defender) bool {
				return d.Row == row && d.Col == col
			})
		}

		seen := make(map[[2]int]bool)
		for _, d := range sim.Defenders() {
			key := [2]int{d.Row, d.Col}
			if seen[key] {
				t.Fatalf("Two defenders share cell %v after %d operations", key, i)
			}
			seen[key] = true
		}
		if len(seen) != sim.Entities().OccupiedCells() {
			t.Fatalf("Occupancy %d does not match defenders %d", sim.Entities().OccupiedCells(), len(seen))
		}
	}
}

// TestTryPlaceByID 未知 id 返回 ErrUnknownDefender
func TestTryPlaceByID(t *testing.T) {
	sim := newTestSimulation(t, 100)

	r, err := sim.TryPlaceByID(0, 0, "sunflower")
	if err != nil || r != Placed {
		t.Fatalf("Expected Placed, got %s (%v)", r, err)
	}

	_, err = sim.TryPlaceByID(0, 1, "cactus")
	if !errors.Is(err, config.ErrUnknownDefender) {
		t.Errorf("Expected ErrUnknownDefender, got %v", err)
	}
}

// TestAffordable 测试卡片高亮判断
func TestAffordable(t *testing.T) {
	sim := newTestSimulation(t, 60)
	if !sim.Affordable(types.DefenderSunflower) {
		t.Error("Sunflower (50) should be affordable with 60")
	}
	if sim.Affordable(types.DefenderPeashooter) {
		t.Error("Peashooter (100) should not be affordable with 60")
	}
	if sim.Affordable(types.DefenderRepeater) {
		t.Error("Types missing from the unit table are never affordable")
	}
}
