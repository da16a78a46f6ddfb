package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/entities"
	"github.com/decker502/lanedefense/pkg/game"
)

const frameMs = 16.0

// testUnitsYAML 测试用单位数据：快速射击、高速子弹、静止僵尸
const testUnitsYAML = `
defenders:
  - id: sunflower
    cost: 50
    generator: true
    sunInterval: 4000
    sunPerInterval: 15
  - id: peashooter
    cost: 100
    rate: 160
    damage: 20
    bulletSpeed: 30
enemies:
  - id: triangle
    hp: 1000
    speed: 0
    reward: 10
    spawnWeight: 3
  - id: pentagon
    hp: 10
    speed: 0
    reward: 20
    spawnWeight: 1
`

func mustUnits(t *testing.T, data string) *config.UnitTable {
	t.Helper()
	units, err := config.ParseUnitTable([]byte(data))
	if err != nil {
		t.Fatalf("ParseUnitTable: %v", err)
	}
	return units
}

func testSettings(startingSun int) *config.Settings {
	s := config.DefaultSettings()
	s.Economy.StartingSun = startingSun
	s.Sim.Seed = 7
	return s
}

// newTestSimulation 创建没有波次的模拟
func newTestSimulation(t *testing.T, startingSun int) *Simulation {
	t.Helper()
	return NewSimulation(testSettings(startingSun), mustUnits(t, testUnitsYAML), WithRand(rand.New(rand.NewSource(1))))
}

// wallDef 既不射击也不产阳光的防御单位
var wallDef = &config.DefenderDef{ID: "wall", Cost: 50}

func mustDefender(t *testing.T, sim *Simulation, def *config.DefenderDef, row, col int) *components.Defender {
	t.Helper()
	d, ok := entities.NewDefender(sim.Entities(), def, row, col)
	if !ok {
		t.Fatalf("NewDefender(%d, %d) failed", row, col)
	}
	return d
}

// addEnemyAt 在指定行与 x 处放置僵尸
func addEnemyAt(sim *Simulation, def *config.EnemyDef, row int, x float64) *components.Enemy {
	e := entities.NewEnemy(sim.Entities(), sim.Grid(), def, row, 0)
	e.X = x
	return e
}

func runFor(sim *Simulation, totalMs float64) {
	for elapsed := 0.0; elapsed < totalMs; elapsed += frameMs {
		sim.Step(frameMs)
	}
}

type eventRecorder struct {
	events []game.Event
}

func recordEvents(sim *Simulation) *eventRecorder {
	r := &eventRecorder{}
	sim.Dispatcher().SubscribeAll(game.ListenerFunc(func(e game.Event) {
		r.events = append(r.events, e)
	}))
	return r
}

func (r *eventRecorder) count(t game.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) types() []game.EventType {
	out := make([]game.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
