package ecs

// Store 按插入顺序保存同一类型实体的有序集合
//
// 迭代顺序稳定（插入顺序），碰撞判定的平局按此顺序决出。
// 删除统一走 RemoveWhere：先遍历、后压缩，不会在迭代中跳过或重复元素。
type Store[T any] struct {
	items []*T
}

// Add 追加一个实体
func (s *Store[T]) Add(item *T) {
	s.items = append(s.items, item)
}

// Each 按插入顺序遍历
// 遍历期间追加的元素不会在本次遍历中被访问
func (s *Store[T]) Each(fn func(*T)) {
	n := len(s.items)
	for i := 0; i < n; i++ {
		fn(s.items[i])
	}
}

// Find 返回第一个满足条件的实体
func (s *Store[T]) Find(pred func(*T) bool) (*T, bool) {
	for _, item := range s.items {
		if pred(item) {
			return item, true
		}
	}
	return nil, false
}

// RemoveWhere 删除所有满足条件的实体并返回被删除的实体
// 剩余实体保持原有相对顺序
func (s *Store[T]) RemoveWhere(pred func(*T) bool) []*T {
	var removed []*T
	kept := s.items[:0]
	for _, item := range s.items {
		if pred(item) {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	// 清除尾部引用，便于 GC 回收
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

// Len 返回实体数量
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Items 返回底层切片（只读视图，调用方不得修改切片本身）
func (s *Store[T]) Items() []*T {
	return s.items
}

// Clear 删除所有实体
func (s *Store[T]) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
