package components

import (
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/types"
)

// Defender 已种植的防御单位（植物）
//
// 类型定义在种植时解析一次并保存为指针，之后每帧不再按字符串查表。
// 防御单位没有生命值：被僵尸啃到即被移除。
type Defender struct {
	ID types.EntityID

	// Row 所在草坪行（从上到下，0-based）
	Row int
	// Col 所在草坪列（从左到右，0-based）
	Col int

	// Def 不可变的类型定义
	Def *config.DefenderDef

	// CooldownElapsed 距上次射击经过的时间（毫秒）
	CooldownElapsed float64
	// GenerationElapsed 距上次产阳光经过的时间（毫秒），仅对产阳光类型有意义
	GenerationElapsed float64
}

// Kind 返回防御单位类型
func (d *Defender) Kind() types.DefenderKind {
	return d.Def.Kind
}
