package components

// Lifetime 管理实体的剩余寿命
// 用于子弹的 TTL 以及效果标记的淡出
type Lifetime struct {
	RemainingMs float64 // 剩余寿命（毫秒）
}

// Tick 扣减 dt 毫秒，返回是否已过期
func (l *Lifetime) Tick(dtMs float64) bool {
	l.RemainingMs -= dtMs
	return l.RemainingMs <= 0
}

// Expired 判断是否已过期
func (l Lifetime) Expired() bool {
	return l.RemainingMs <= 0
}
