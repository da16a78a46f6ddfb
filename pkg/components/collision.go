package components

import "math"

// Collision 圆形碰撞体
// 子弹与僵尸都按中心点距离判定
type Collision struct {
	Radius float64 // 碰撞半径（像素）
}

// Overlaps 判断两个中心点距离是否小于给定阈值
func Overlaps(a, b Position, threshold float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < threshold
}
