package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/components"
	"github.com/decker502/lanedefense/pkg/config"
	"github.com/decker502/lanedefense/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// cardWidth 状态栏中每张卡片的宽度
	cardWidth = 150
	// cardHeight 卡片高度
	cardHeight = 20
	// cardY 卡片行的Y坐标
	cardY = 22
)

// fallbackColor 配置颜色无法解析时使用
var fallbackColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Draw 绘制场景
// 图层顺序：草坪 → 防御单位 → 僵尸 → 子弹 → 效果 → 状态栏
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawLawn(screen)
	s.drawDefenders(screen)
	s.drawEnemies(screen)
	s.drawProjectiles(screen)
	s.drawEffects(screen)
	s.drawHUD(screen)
}

// toScreen 世界坐标转屏幕坐标
func toScreen(x, y float64) (float32, float32) {
	return float32(x + config.LawnOriginX), float32(y + config.LawnOriginY)
}

// drawLawn 绘制棋盘格草坪与悬停格子
func (s *GameScene) drawLawn(screen *ebiten.Image) {
	g := s.sim.Grid()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			clr := config.LawnLightColor
			if (row+col)%2 == 1 {
				clr = config.LawnDarkColor
			}
			x, y := toScreen(float64(col)*g.CellWidth, float64(row)*g.CellHeight)
			vector.DrawFilledRect(screen, x, y, float32(g.CellWidth), float32(g.CellHeight), clr, false)
		}
	}

	if s.hoverValid {
		x, y := toScreen(float64(s.hoverCol)*g.CellWidth, float64(s.hoverRow)*g.CellHeight)
		vector.StrokeRect(screen, x+1, y+1, float32(g.CellWidth)-2, float32(g.CellHeight)-2, 2, config.HoverCellColor, false)
	}
}

// drawDefenders 防御单位绘制为格子中心的圆
func (s *GameScene) drawDefenders(screen *ebiten.Image) {
	g := s.sim.Grid()
	for _, d := range s.sim.Defenders() {
		cx, cy := utils.CellCenter(g, d.Row, d.Col)
		x, y := toScreen(cx, cy)
		radius := float32(d.Def.Size / 2)
		if radius <= 0 {
			radius = float32(g.CellWidth / 4)
		}
		vector.DrawFilledCircle(screen, x, y, radius, utils.ParseHexColor(d.Def.Color, fallbackColor), true)
	}
}

// drawEnemies 僵尸绘制为正多边形（边数由类型决定），头顶显示血条
func (s *GameScene) drawEnemies(screen *ebiten.Image) {
	for _, e := range s.sim.Enemies() {
		x, y := toScreen(e.X, e.Y)
		s.fillPolygon(screen, x, y, config.EnemyDrawRadius, e.Kind().Sides(), utils.ParseHexColor(e.Def.Color, fallbackColor))
		drawHealthBar(screen, x, y, e.Health)
	}
}

// drawHealthBar 在 (x, y) 上方绘制血条
func drawHealthBar(screen *ebiten.Image, x, y float32, h components.Health) {
	w := float32(config.EnemyDrawRadius * 2)
	bx := x - w/2
	by := y + config.HealthBarOffsetY
	vector.DrawFilledRect(screen, bx, by, w, config.HealthBarHeight, config.HealthBarBackColor, false)
	vector.DrawFilledRect(screen, bx, by, w*float32(h.Ratio()), config.HealthBarHeight, config.HealthBarFrontColor, false)
}

// fillPolygon 以 (cx, cy) 为中心填充正多边形，第一个顶点朝左（僵尸前进方向）
func (s *GameScene) fillPolygon(screen *ebiten.Image, cx, cy, radius float32, sides int, clr color.RGBA) {
	if s.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	for i := 0; i < sides; i++ {
		angle := math.Pi + 2*math.Pi*float64(i)/float64(sides)
		px := cx + radius*float32(math.Cos(angle))
		py := cy + radius*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(clr.R) / 255
		s.vertices[i].ColorG = float32(clr.G) / 255
		s.vertices[i].ColorB = float32(clr.B) / 255
		s.vertices[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawProjectiles 子弹绘制为小圆
func (s *GameScene) drawProjectiles(screen *ebiten.Image) {
	for _, p := range s.sim.Projectiles() {
		x, y := toScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), config.ProjectileColor, true)
	}
}

// effectFadeMs 效果在最后这段时间内淡出
const effectFadeMs = 300.0

// drawEffects 效果标记绘制为逐渐淡出的圆；种植脉冲绘制为圆环
func (s *GameScene) drawEffects(screen *ebiten.Image) {
	for _, fx := range s.sim.Effects() {
		x, y := toScreen(fx.X, fx.Y)
		clr := utils.WithAlpha(utils.ParseHexColor(fx.Color, fallbackColor), fx.RemainingMs/effectFadeMs)
		radius := float32(fx.Size / 2)
		if fx.Kind == components.EffectPulse {
			vector.StrokeCircle(screen, x, y, radius, 2, clr, true)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
}

// drawHUD 绘制状态栏：状态文字、卡片、提示与按键说明
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	w, _ := config.ScreenSize(s.sim.Grid())
	vector.DrawFilledRect(screen, 0, 0, float32(w), config.HUDHeight, config.HUDBackgroundColor, false)

	ebitenutil.DebugPrintAt(screen, bootstrap.Status(s.sim), config.HUDTextX, 2)

	units := s.sim.Units()
	for i, kind := range s.slots {
		def, ok := units.Defender(kind)
		if !ok {
			continue
		}
		x := float32(config.HUDTextX + i*cardWidth)
		clr := utils.ParseHexColor(def.Color, fallbackColor)
		if !s.sim.Affordable(kind) {
			clr = config.UnaffordableColor
		}
		vector.DrawFilledRect(screen, x, cardY, cardWidth-8, cardHeight, utils.WithAlpha(clr, 0.6), false)
		if i == s.selected {
			vector.StrokeRect(screen, x, cardY, cardWidth-8, cardHeight, 2, config.SelectedCardColor, false)
		}
		ebitenutil.DebugPrintAt(screen, bootstrap.CardLabel(i, def), int(x)+4, cardY+2)
	}

	line := cardY + cardHeight + 2
	if text := s.notices.Text(); text != "" {
		ebitenutil.DebugPrintAt(screen, text, config.HUDTextX, line)
	} else {
		ebitenutil.DebugPrintAt(screen, bootstrap.ControlsHelp, config.HUDTextX, line)
	}
}
