package components

// Health 存储实体的生命值信息
// 目前只有僵尸拥有生命值
type Health struct {
	Current int // 当前生命值
	Max     int // 最大生命值
}

// IsDead 生命值 <= 0 即视为死亡
func (h Health) IsDead() bool {
	return h.Current <= 0
}

// Ratio 返回剩余生命比例 [0, 1]，用于渲染血条
func (h Health) Ratio() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}
