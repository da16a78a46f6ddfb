package main

import (
	"unicode"
	"unicode/utf8"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 终端布局：每个草坪格子占 cellCols 列 × cellRows 行，草坪从第 lawnTop 行开始
const (
	cellCols = 6
	cellRows = 2
	lawnTop  = 3
)

// cellWriter 是 tcell.Screen 中绘制用到的部分
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	lawnLight = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 110, 50))
	lawnDark  = tcell.StyleDefault.Background(tcell.NewRGBColor(50, 95, 42))
	hudStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	selStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// lawnSize 返回草坪在终端中占用的列数与行数
func lawnSize(g config.GridConfig) (cols, rows int) {
	return g.Columns * cellCols, g.Rows * cellRows
}

// worldToTerm 将世界坐标映射到终端坐标
func worldToTerm(g config.GridConfig, x, y float64) (tx, ty int) {
	tx = int(x / g.CellWidth * cellCols)
	ty = lawnTop + int(y/g.CellHeight*cellRows)
	return tx, ty
}

// termToCell 将终端坐标映射到草坪格子
func termToCell(g config.GridConfig, tx, ty int) (row, col int, ok bool) {
	if tx < 0 || ty < lawnTop {
		return 0, 0, false
	}
	col = tx / cellCols
	row = (ty - lawnTop) / cellRows
	if !g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// defenderGlyph 防御单位使用名称首字母
func defenderGlyph(def *config.DefenderDef) rune {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}

// enemyGlyph 按僵尸类型选择字符
func enemyGlyph(kind types.EnemyKind) rune {
	switch kind {
	case types.EnemyTriangle:
		return '◄'
	case types.EnemyPentagon:
		return '⬟'
	default:
		return '■'
	}
}

// effectGlyph 按效果类型选择字符
func effectGlyph(kind components.EffectKind) rune {
	switch kind {
	case components.EffectSun:
		return '+'
	case components.EffectSpark:
		return '*'
	case components.EffectBite:
		return 'x'
	case components.EffectPulse:
		return 'o'
	default:
		return '·'
	}
}

// drawText 从 (x, y) 开始逐字符写入
func drawText(w cellWriter, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// render 绘制完整画面：状态栏、卡片、提示、草坪与实体
func (u *terminalUI) render(w cellWriter) {
	g := u.sim.Grid()

	drawText(w, 0, 0, bootstrap.Status(u.sim), hudStyle)

	x := 0
	units := u.sim.Units()
	for i, kind := range u.slots {
		def, ok := units.Defender(kind)
		if !ok {
			continue
		}
		style := hudStyle
		switch {
		case i == u.selected:
			style = selStyle
		case !u.sim.Affordable(kind):
			style = dimStyle
		}
		x = drawText(w, x, 1, bootstrap.CardLabel(i, def), style) + 2
	}

	notice := u.notices.Text()
	if notice == "" {
		notice = bootstrap.ControlsHelp + "  arrows/enter  q quit"
	}
	drawText(w, 0, 2, notice, hudStyle)

	cols, rows := lawnSize(g)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			style := lawnLight
			if (tx/cellCols+ty/cellRows)%2 == 1 {
				style = lawnDark
			}
			glyph := ' '
			if ty/cellRows == u.cursorRow && tx/cellCols == u.cursorCol && (tx%cellCols == 0 || tx%cellCols == cellCols-1) {
				glyph = '|'
			}
			w.SetContent(tx, lawnTop+ty, glyph, nil, style)
		}
	}

	for _, d := range u.sim.Defenders() {
		tx := d.Col*cellCols + cellCols/2
		ty := lawnTop + d.Row*cellRows
		w.SetContent(tx, ty, defenderGlyph(d.Def), nil, u.background(tx, ty).Foreground(tcell.GetColor(d.Def.Color)).Bold(true))
	}
	for _, p := range u.sim.Projectiles() {
		u.plot(w, g, p.X, p.Y, '•', tcell.ColorLightGreen, cols)
	}
	for _, e := range u.sim.Enemies() {
		u.plot(w, g, e.X, e.Y, enemyGlyph(e.Kind()), tcell.GetColor(e.Def.Color), cols)
	}
	for _, fx := range u.sim.Effects() {
		u.plot(w, g, fx.X, fx.Y, effectGlyph(fx.Kind), tcell.GetColor(fx.Color), cols)
	}
}

// plot 在世界坐标处绘制一个字符，草坪以外的位置不绘制
func (u *terminalUI) plot(w cellWriter, g config.GridConfig, x, y float64, glyph rune, fg tcell.Color, cols int) {
	tx, ty := worldToTerm(g, x, y)
	_, rows := lawnSize(g)
	if tx < 0 || tx >= cols || ty < lawnTop || ty >= lawnTop+rows {
		return
	}
	w.SetContent(tx, ty, glyph, nil, u.background(tx, ty).Foreground(fg))
}

// background 返回终端坐标处的草坪底色
func (u *terminalUI) background(tx, ty int) tcell.Style {
	if (tx/cellCols+(ty-lawnTop)/cellRows)%2 == 1 {
		return lawnDark
	}
	return lawnLight
}
