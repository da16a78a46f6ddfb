package systems

import (
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/ecs"
	"github.com/decker502/lanedefense/pkg/entities"
	"github.com/decker502/lanedefense/pkg/game"
	"github.com/decker502/lanedefense/pkg/types"
	"go.uber.org/zap"
)

// PlaceResult 种植结果
// 失败是正常结果，不是错误
type PlaceResult int

const (
	// Placed 种植成功
	Placed PlaceResult = iota
	// PlaceOutOfBounds 格子越界
	PlaceOutOfBounds
	// PlaceCellOccupied 格子已被占用
	PlaceCellOccupied
	// PlaceInsufficientFunds 阳光不足
	PlaceInsufficientFunds
	// PlaceUnknownDefender 单位数据表中没有该类型
	PlaceUnknownDefender
)

// String 返回种植结果名称
func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case PlaceOutOfBounds:
		return "out of bounds"
	case PlaceCellOccupied:
		return "cell occupied"
	case PlaceInsufficientFunds:
		return "insufficient funds"
	case PlaceUnknownDefender:
		return "unknown defender"
	default:
		return "unknown"
	}
}

// OK 是否种植成功
func (r PlaceResult) OK() bool {
	return r == Placed
}

// PlacementController 种植控制器
// 模拟运行期间添加防御单位的唯一入口
type PlacementController struct {
	entities   *ecs.EntityStore
	ledger     *game.Ledger
	units      *config.UnitTable
	grid       config.GridConfig
	dispatcher *game.Dispatcher
	metrics    *Metrics
	logger     *zap.Logger
}

// NewPlacementController 创建种植控制器
func NewPlacementController(es *ecs.EntityStore, ledger *game.Ledger, units *config.UnitTable, grid config.GridConfig, dispatcher *game.Dispatcher, metrics *Metrics, logger *zap.Logger) *PlacementController {
	return &PlacementController{
		entities:   es,
		ledger:     ledger,
		units:      units,
		grid:       grid,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// TryPlace 尝试在 (row, col) 种植 kind 类型的防御单位
//
// 检查顺序：格子越界、类型存在、格子占用、阳光是否足够。
// 任一检查失败都不做任何修改；成功时扣除阳光、插入计时器为零的防御单位并产生种植脉冲。
func (c *PlacementController) TryPlace(row, col int, kind types.DefenderKind) PlaceResult {
	if !c.grid.InBounds(row, col) {
		return PlaceOutOfBounds
	}
	def, ok := c.units.Defender(kind)
	if !ok {
		return PlaceUnknownDefender
	}

	data := game.PlacementData{Row: row, Col: col, Defender: def.ID}
	if _, occupied := c.entities.DefenderAt(row, col); occupied {
		c.dispatcher.Dispatch(game.Event{Type: game.EventCellOccupied, Data: data})
		return PlaceCellOccupied
	}
	if !c.ledger.CanAfford(def.Cost) {
		c.dispatcher.Dispatch(game.Event{Type: game.EventInsufficientFunds, Data: data})
		return PlaceInsufficientFunds
	}

	// 越界与占用已检查，先插入再扣费，失败路径不触碰账本
	if _, ok := entities.NewDefender(c.entities, def, row, col); !ok {
		return PlaceCellOccupied
	}
	c.ledger.TryDebit(def.Cost)
	entities.NewPlacementPulse(c.entities, c.grid, row, col, def.Color)

	c.metrics.defenderPlaced(def.ID)
	c.logger.Debug("defender placed",
		zap.String("defender", def.ID),
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Int("sun", c.ledger.Current()))
	c.dispatcher.Dispatch(game.Event{Type: game.EventDefenderPlaced, Data: data})
	return Placed
}
