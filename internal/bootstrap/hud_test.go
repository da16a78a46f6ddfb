package bootstrap

import (
	"testing"

	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Sim.Seed = 11
	s, err := New(settings, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStatus(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "Sun: 50 | Wave 1/4 | stopped", Status(s.Sim))

	s.Sim.Start()
	s.Sim.Step(16)
	assert.Equal(t, "Sun: 50 | Wave 1/4 | running", Status(s.Sim))
}

func TestStatusAllWavesOut(t *testing.T) {
	s := newTestSession(t)
	s.Sim.Start()
	for i := 0; i < 40 && !s.Sim.AllWavesCompleted(); i++ {
		s.Sim.Step(5000)
	}
	require.True(t, s.Sim.AllWavesCompleted())
	assert.Contains(t, Status(s.Sim), "Wave 4/4")
	assert.Contains(t, Status(s.Sim), "all waves out")
}

func TestSlotsFollowTableOrder(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, []types.DefenderKind{
		types.DefenderSunflower,
		types.DefenderPeashooter,
		types.DefenderRepeater,
	}, Slots(s.Units))
}

func TestCardLabel(t *testing.T) {
	assert.Equal(t, "2 Peashooter 100", CardLabel(1, &config.DefenderDef{ID: "peashooter", Name: "Peashooter", Cost: 100}))
	assert.Equal(t, "1 sunflower 50", CardLabel(0, &config.DefenderDef{ID: "sunflower", Cost: 50}))
}
