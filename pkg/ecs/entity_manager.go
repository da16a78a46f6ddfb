package ecs

import (
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/types"
)

// EntityStore 管理所有实体：防御单位、子弹、僵尸、效果标记
//
// 四类实体各自保存在有序集合中；防御单位额外维护一张草坪占用表，
// 保证每个格子至多一个防御单位。
type EntityStore struct {
	nextID uint64

	grid        *components.LawnGrid
	defenders   Store[components.Defender]
	projectiles Store[components.Projectile]
	enemies     Store[components.Enemy]
	effects     Store[components.EffectMarker]
}

// NewEntityStore 创建一个新的 EntityStore 实例
func NewEntityStore(rows, cols int) *EntityStore {
	return &EntityStore{
		nextID: 1, // ID从1开始,0保留为无效ID
		grid:   components.NewLawnGrid(rows, cols),
	}
}

// allocID 分配唯一ID
func (es *EntityStore) allocID() types.EntityID {
	id := types.EntityID(es.nextID)
	es.nextID++
	return id
}

// AddDefender 放置防御单位
// 格子越界或已被占用时返回 false 且不做任何修改
func (es *EntityStore) AddDefender(d *components.Defender) bool {
	if !es.grid.InBounds(d.Row, d.Col) || es.grid.At(d.Row, d.Col) != types.InvalidEntity {
		return false
	}
	d.ID = es.allocID()
	es.grid.Set(d.Row, d.Col, d.ID)
	es.defenders.Add(d)
	return true
}

// AddProjectile 添加子弹
func (es *EntityStore) AddProjectile(p *components.Projectile) {
	p.ID = es.allocID()
	es.projectiles.Add(p)
}

// AddEnemy 添加僵尸
func (es *EntityStore) AddEnemy(e *components.Enemy) {
	e.ID = es.allocID()
	es.enemies.Add(e)
}

// AddEffect 添加效果标记
func (es *EntityStore) AddEffect(e *components.EffectMarker) {
	e.ID = es.allocID()
	es.effects.Add(e)
}

// ForEachDefender 按插入顺序遍历防御单位
func (es *EntityStore) ForEachDefender(fn func(*components.Defender)) {
	es.defenders.Each(fn)
}

// ForEachProjectile 按插入顺序遍历子弹
func (es *EntityStore) ForEachProjectile(fn func(*components.Projectile)) {
	es.projectiles.Each(fn)
}

// ForEachEnemy 按插入顺序遍历僵尸
func (es *EntityStore) ForEachEnemy(fn func(*components.Enemy)) {
	es.enemies.Each(fn)
}

// ForEachEffect 按插入顺序遍历效果标记
func (es *EntityStore) ForEachEffect(fn func(*components.EffectMarker)) {
	es.effects.Each(fn)
}

// RemoveDefendersWhere 删除满足条件的防御单位并释放其格子
func (es *EntityStore) RemoveDefendersWhere(pred func(*components.Defender) bool) []*components.Defender {
	removed := es.defenders.RemoveWhere(pred)
	for _, d := range removed {
		if es.grid.At(d.Row, d.Col) == d.ID {
			es.grid.Set(d.Row, d.Col, types.InvalidEntity)
		}
	}
	return removed
}

// RemoveDefender 删除指定防御单位，返回是否确实删除
func (es *EntityStore) RemoveDefender(target *components.Defender) bool {
	removed := es.RemoveDefendersWhere(func(d *components.Defender) bool { return d == target })
	return len(removed) > 0
}

// RemoveProjectilesWhere 删除满足条件的子弹
func (es *EntityStore) RemoveProjectilesWhere(pred func(*components.Projectile) bool) []*components.Projectile {
	return es.projectiles.RemoveWhere(pred)
}

// RemoveEnemiesWhere 删除满足条件的僵尸
func (es *EntityStore) RemoveEnemiesWhere(pred func(*components.Enemy) bool) []*components.Enemy {
	return es.enemies.RemoveWhere(pred)
}

// RemoveEffectsWhere 删除满足条件的效果标记
func (es *EntityStore) RemoveEffectsWhere(pred func(*components.EffectMarker) bool) []*components.EffectMarker {
	return es.effects.RemoveWhere(pred)
}

// DefenderAt 返回格子上的防御单位
func (es *EntityStore) DefenderAt(row, col int) (*components.Defender, bool) {
	id := es.grid.At(row, col)
	if id == types.InvalidEntity {
		return nil, false
	}
	return es.defenders.Find(func(d *components.Defender) bool { return d.ID == id })
}

// FirstDefenderInRow 返回该行中插入最早的防御单位
func (es *EntityStore) FirstDefenderInRow(row int) (*components.Defender, bool) {
	return es.defenders.Find(func(d *components.Defender) bool { return d.Row == row })
}

// Defenders 返回防御单位只读视图
func (es *EntityStore) Defenders() []*components.Defender { return es.defenders.Items() }

// Projectiles 返回子弹只读视图
func (es *EntityStore) Projectiles() []*components.Projectile { return es.projectiles.Items() }

// Enemies 返回僵尸只读视图
func (es *EntityStore) Enemies() []*components.Enemy { return es.enemies.Items() }

// Effects 返回效果标记只读视图
func (es *EntityStore) Effects() []*components.EffectMarker { return es.effects.Items() }

// OccupiedCells 返回已占用格子数量
func (es *EntityStore) OccupiedCells() int {
	return es.grid.Occupied()
}

// Rows 返回网格行数
func (es *EntityStore) Rows() int { return es.grid.Rows }

// Columns 返回网格列数
func (es *EntityStore) Columns() int { return es.grid.Columns }

// Clear 清空所有实体（重新开始时调用）
// ID 计数器不回退，旧ID不会被复用
func (es *EntityStore) Clear() {
	es.defenders.Clear()
	es.projectiles.Clear()
	es.enemies.Clear()
	es.effects.Clear()
	es.grid.Clear()
}
