package game

// RunState 模拟运行状态
type RunState int

const (
	// RunStopped 尚未开始或刚刚重新开始
	RunStopped RunState = iota
	// RunRunning 正在运行，每帧推进模拟
	RunRunning
	// RunPaused 已暂停，模拟状态冻结
	RunPaused
)

// String 返回运行状态名称
func (s RunState) String() string {
	switch s {
	case RunStopped:
		return "stopped"
	case RunRunning:
		return "running"
	case RunPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Ledger 阳光账本（唯一的货币计数器）
//
// 计数器永远非负。扣款失败是正常结果（阳光不足），不是错误：
// 调用方必须先检查 TryDebit 的返回值再执行依赖它的操作（如种植）。
type Ledger struct {
	current int
	cap     int // 0 表示不设上限
}

// NewLedger 创建账本
// cap 为 0 时不设上限（默认）；大于 0 时为可选的阳光上限
func NewLedger(starting, cap int) *Ledger {
	l := &Ledger{cap: cap}
	l.Reset(starting)
	return l
}

// Credit 增加阳光，返回实际入账的数量
// 未设上限时无条件全额入账；负数被忽略
func (l *Ledger) Credit(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := l.current
	l.current += amount
	if l.cap > 0 && l.current > l.cap {
		l.current = l.cap
	}
	return l.current - before
}

// TryDebit 扣除阳光，如果阳光不足返回 false 且不做任何修改
func (l *Ledger) TryDebit(amount int) bool {
	if amount < 0 || l.current < amount {
		return false
	}
	l.current -= amount
	return true
}

// Current 返回当前阳光值
func (l *Ledger) Current() int {
	return l.current
}

// CanAfford 判断当前阳光是否足够
func (l *Ledger) CanAfford(amount int) bool {
	return amount >= 0 && l.current >= amount
}

// Reset 重置为指定数值（重新开始时调用）
func (l *Ledger) Reset(amount int) {
	if amount < 0 {
		amount = 0
	}
	if l.cap > 0 && amount > l.cap {
		amount = l.cap
	}
	l.current = amount
}
