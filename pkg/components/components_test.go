package components

import (
	"testing"

	"github.com/decker502/lanedefense/pkg/types"
)

func TestLawnGridSetAndAt(t *testing.T) {
	g := NewLawnGrid(5, 9)

	if g.At(2, 3) != types.InvalidEntity {
		t.Error("New grid cell should be empty")
	}

	g.Set(2, 3, 42)
	if g.At(2, 3) != 42 {
		t.Errorf("Expected entity 42 at (2,3), got %d", g.At(2, 3))
	}
	if g.Occupied() != 1 {
		t.Errorf("Expected 1 occupied cell, got %d", g.Occupied())
	}

	// 越界写入被忽略
	g.Set(5, 0, 7)
	g.Set(0, -1, 7)
	if g.Occupied() != 1 {
		t.Errorf("Out-of-bounds Set should be ignored, occupied=%d", g.Occupied())
	}
	if g.At(-1, 0) != types.InvalidEntity {
		t.Error("Out-of-bounds At should return InvalidEntity")
	}

	g.Clear()
	if g.Occupied() != 0 {
		t.Errorf("Expected empty grid after Clear, got %d", g.Occupied())
	}
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		h    Health
		want float64
		dead bool
	}{
		{Health{Current: 100, Max: 100}, 1, false},
		{Health{Current: 50, Max: 100}, 0.5, false},
		{Health{Current: 0, Max: 100}, 0, true},
		{Health{Current: -10, Max: 100}, 0, true},
		{Health{Current: 10, Max: 0}, 0, false},
	}
	for _, tt := range tests {
		if got := tt.h.Ratio(); got != tt.want {
			t.Errorf("%+v.Ratio() = %f, want %f", tt.h, got, tt.want)
		}
		if tt.h.IsDead() != tt.dead {
			t.Errorf("%+v.IsDead() = %v, want %v", tt.h, tt.h.IsDead(), tt.dead)
		}
	}
}

func TestLifetimeTick(t *testing.T) {
	l := Lifetime{RemainingMs: 100}
	if l.Tick(60) {
		t.Error("Should not expire after 60ms")
	}
	if !l.Tick(40) {
		t.Error("Should expire at exactly 0ms remaining")
	}
	if !l.Expired() {
		t.Error("Expired() should be true")
	}
}

func TestOverlaps(t *testing.T) {
	a := Position{X: 0, Y: 0}
	if !Overlaps(a, Position{X: 3, Y: 4}, 5.1) {
		t.Error("Distance 5 should be below threshold 5.1")
	}
	if Overlaps(a, Position{X: 3, Y: 4}, 5) {
		t.Error("Distance 5 should not be below threshold 5 (strict)")
	}
}
