package entities

// Rand 工厂使用的随机数来源
// *rand.Rand 满足该接口；模拟持有带种子的实例，保证同一种子下结果可复现
type Rand interface {
	Float64() float64
}

// jitter 返回 [-span/2, span/2) 内的随机偏移
func jitter(rng Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}
