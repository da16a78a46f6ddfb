package game

// EventType 事件类型
type EventType string

const (
	// EventWaveStarted 新波次开始出怪，Data 为波次序号（int, 0-based）
	EventWaveStarted EventType = "wave_started"
	// EventWaveCompleted 波次出怪完毕，Data 为波次序号
	EventWaveCompleted EventType = "wave_completed"
	// EventAllWavesCompleted 所有波次已出怪完毕（仅触发一次）
	EventAllWavesCompleted EventType = "all_waves_completed"
	// EventInsufficientFunds 阳光不足导致种植失败，Data 为 PlacementData
	EventInsufficientFunds EventType = "insufficient_funds"
	// EventCellOccupied 格子已被占用导致种植失败，Data 为 PlacementData
	EventCellOccupied EventType = "cell_occupied"
	// EventDefenderPlaced 种植成功，Data 为 PlacementData
	EventDefenderPlaced EventType = "defender_placed"
	// EventEnemyKilled 僵尸被击杀，Data 为 EnemyData
	EventEnemyKilled EventType = "enemy_killed"
	// EventRowBreached 僵尸突破防线，Data 为 EnemyData
	EventRowBreached EventType = "row_breached"
	// EventDefenderEaten 防御单位被啃食，Data 为 PlacementData
	EventDefenderEaten EventType = "defender_eaten"
)

// Event 事件
type Event struct {
	Type EventType
	Data interface{}
}

// PlacementData 与某个格子相关的事件数据
type PlacementData struct {
	Row      int
	Col      int
	Defender string // 防御单位 id
}

// EnemyData 与僵尸相关的事件数据
type EnemyData struct {
	Row    int
	Enemy  string // 僵尸 id
	Reward int
	X, Y   float64
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 将普通函数适配为 Listener
type ListenerFunc func(event Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher 同步事件分发器
// 订阅与分发都在模拟所在的 goroutine 中进行，不做加锁
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher 创建事件分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Dispatch 按订阅顺序同步通知所有订阅者
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
	for _, l := range d.all {
		l.OnEvent(event)
	}
}
