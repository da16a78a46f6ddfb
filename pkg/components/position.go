package components

// Position 实体在世界坐标中的位置（像素）
// 原点为草坪左上角，x 向右、y 向下
type Position struct {
	X float64
	Y float64
}

// Velocity 速度（像素/参考帧）
type Velocity struct {
	VX float64
	VY float64
}
