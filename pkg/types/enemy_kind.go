// Package types 定义共享的基础类型
package types

// EnemyKind 定义进攻单位（僵尸）的类型
type EnemyKind int

const (
	// EnemyUnknown 未知僵尸类型
	EnemyUnknown EnemyKind = iota
	// EnemyTriangle 三角形僵尸（基础类型，血少速度快）
	EnemyTriangle
	// EnemyPentagon 五边形僵尸（基础类型，血厚速度慢）
	EnemyPentagon
)

var enemyKindStringMap = map[EnemyKind]string{
	EnemyTriangle: "triangle",
	EnemyPentagon: "pentagon",
}

var stringToEnemyKindMap map[string]EnemyKind

func init() {
	stringToEnemyKindMap = make(map[string]EnemyKind, len(enemyKindStringMap))
	for k, s := range enemyKindStringMap {
		stringToEnemyKindMap[s] = k
	}
}

// String 返回僵尸类型的配置字符串表示
func (k EnemyKind) String() string {
	if s, ok := enemyKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// EnemyKindFromString 将配置字符串转换为 EnemyKind
func EnemyKindFromString(s string) EnemyKind {
	if k, ok := stringToEnemyKindMap[s]; ok {
		return k
	}
	return EnemyUnknown
}

// Sides 返回渲染用的多边形边数
func (k EnemyKind) Sides() int {
	switch k {
	case EnemyTriangle:
		return 3
	case EnemyPentagon:
		return 5
	default:
		return 4
	}
}
