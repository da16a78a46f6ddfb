package bootstrap

import (
	"fmt"

	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/systems"
	"github.com/decker502/lanedefense/pkg/types"
)

// ControlsHelp 两个驱动共用的按键说明
const ControlsHelp = "S start  P pause  R restart  1-9 select  click place"

// Status 返回状态栏文字：阳光、波次进度、运行状态
func Status(sim *systems.Simulation) string {
	sched := sim.Scheduler()
	wave := sched.CurrentWave() + 1
	if wave > sched.WaveCount() {
		wave = sched.WaveCount()
	}
	status := fmt.Sprintf("Sun: %d | Wave %d/%d | %s", sim.Sun(), wave, sched.WaveCount(), sim.State())
	if sim.AllWavesCompleted() {
		status += " | all waves out"
	}
	return status
}

// Slots 按数据表顺序返回可选的防御单位，下标即快捷键序号减一
func Slots(units *config.UnitTable) []types.DefenderKind {
	slots := make([]types.DefenderKind, 0, len(units.Defenders))
	for _, d := range units.Defenders {
		slots = append(slots, d.Kind)
	}
	return slots
}

// CardLabel 返回卡片文字，例如 "1 Peashooter 100"
func CardLabel(slot int, def *config.DefenderDef) string {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	return fmt.Sprintf("%d %s %d", slot+1, name, def.Cost)
}
