package entities

import (
	"math/rand"

	"github.com/decker502/lanedefense/pkg/config"
)

var testGrid = config.GridConfig{Rows: 5, Columns: 9, CellWidth: 110, CellHeight: 120}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func peashooterDef() *config.DefenderDef {
	return &config.DefenderDef{ID: "peashooter", Cost: 100, CooldownMs: 1400, Damage: 20, ProjectileSpeed: 6, Color: "#6fd36f"}
}
