// Package types 定义共享的基础类型
package types

// DefenderKind 定义防御单位（植物）的类型
// 封闭枚举：配置中的字符串 id 在加载时解析一次，之后只使用枚举值
type DefenderKind int

const (
	// DefenderUnknown 未知防御类型
	DefenderUnknown DefenderKind = iota
	// DefenderSunflower 向日葵（被动产生阳光）
	DefenderSunflower
	// DefenderPeashooter 豌豆射手
	DefenderPeashooter
	// DefenderRepeater 速射豌豆
	DefenderRepeater
)

var defenderKindStringMap = map[DefenderKind]string{
	DefenderSunflower:  "sunflower",
	DefenderPeashooter: "peashooter",
	DefenderRepeater:   "repeater",
}

var stringToDefenderKindMap map[string]DefenderKind

func init() {
	stringToDefenderKindMap = make(map[string]DefenderKind, len(defenderKindStringMap))
	for k, s := range defenderKindStringMap {
		stringToDefenderKindMap[s] = k
	}
}

// String 返回防御类型的配置字符串表示（用于配置文件匹配）
func (k DefenderKind) String() string {
	if s, ok := defenderKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// DefenderKindFromString 将配置字符串转换为 DefenderKind
func DefenderKindFromString(s string) DefenderKind {
	if k, ok := stringToDefenderKindMap[s]; ok {
		return k
	}
	return DefenderUnknown
}

// AllDefenderKinds 按枚举顺序返回所有已知的防御类型
func AllDefenderKinds() []DefenderKind {
	return []DefenderKind{DefenderSunflower, DefenderPeashooter, DefenderRepeater}
}
