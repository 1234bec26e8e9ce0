package systems

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/depth"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// entityDrawer draws one entity given the camera translation.
type entityDrawer func(screen *ebiten.Image, e *donburi.Entry, sp *components.SpatialData, camX, camY float64)

// drawers dispatches on the entity kind. Kinds without an entry fall back to
// drawBody.
var drawers = map[cfg.Kind]entityDrawer{
	cfg.KindPlayer:  drawPlayer,
	cfg.KindEnemy:   drawEnemy,
	cfg.KindItem:    drawItem,
	cfg.KindScenery: drawBody,
}

// viewRect returns the world area visible on a screen of the given size,
// grown by the cull padding.
func viewRect(e *ecs.ECS, width, height int) spatial.Rect {
	camX, camY := cameraOffset(e, width, height)
	pad := int32(cfg.Render.CullPadding)
	return spatial.Rect{
		X: int32(-camX) - pad,
		Y: int32(-camY) - pad,
		W: uint32(width) + uint32(2*pad),
		H: uint32(height) + uint32(2*pad),
	}
}

// spriteRect is the world area the entity's sprite covers.
func spriteRect(sp *components.SpatialData, scale spatial.Scale) spatial.Rect {
	origin := sp.RenderOrigin(scale)
	size := sp.Type.SpriteSize()
	return spatial.Rect{
		X: origin.X,
		Y: origin.Y,
		W: size.W * uint32(scale),
		H: size.H * uint32(scale),
	}
}

// entityDrawable adapts a world entity to the depth pass.
type entityDrawable struct {
	entry *donburi.Entry
	sp    *components.SpatialData
	draw  func(*donburi.Entry, *components.SpatialData)
}

func (d entityDrawable) DepthKey() int32 { return d.sp.DepthKey() }
func (d entityDrawable) Render()         { d.draw(d.entry, d.sp) }

// visibleDrawables returns every visible entity inside view in spawn order,
// so that equal depth keys keep the same order every frame. Sprites that
// touch view without overlapping it are culled.
func visibleDrawables(e *ecs.ECS, view spatial.Rect, draw func(*donburi.Entry, *components.SpatialData)) []depth.Drawable {
	scale := cfg.C.Scale()

	var visible []*donburi.Entry
	components.Spatial.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spatial.Get(entry)
		if sp.Type == nil {
			return
		}
		if entry.HasComponent(components.Visual) && components.Visual.Get(entry).Hidden {
			return
		}
		if !spatial.Intersects(view, spriteRect(sp, scale)) {
			return
		}
		visible = append(visible, entry)
	})
	slices.SortFunc(visible, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Spatial.Get(a).Seq, components.Spatial.Get(b).Seq)
	})

	items := make([]depth.Drawable, 0, len(visible))
	for _, entry := range visible {
		items = append(items, entityDrawable{entry: entry, sp: components.Spatial.Get(entry), draw: draw})
	}
	return items
}

// DrawEntities renders every world entity back to front by anchor Y.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(e, width, height)
	scale := cfg.C.Scale()

	depth.RenderAll(visibleDrawables(e, viewRect(e, width, height), func(entry *donburi.Entry, sp *components.SpatialData) {
		if entry.HasComponent(components.Sprite) {
			if img := components.Sprite.Get(entry).Image; img != nil {
				x, y := spriteScreenPos(entry, sp, camX, camY)
				drawSprite(screen, entry, img, x, y, scale)
				return
			}
		}

		draw, ok := drawers[sp.Kind()]
		if !ok {
			draw = drawBody
		}
		draw(screen, entry, sp, camX, camY)
	}))
}

// spriteScreenPos returns the screen position of the sprite's top-left
// corner with visual offsets applied.
func spriteScreenPos(e *donburi.Entry, sp *components.SpatialData, camX, camY float64) (float64, float64) {
	origin := sp.RenderOrigin(cfg.C.Scale())
	x, y := float64(origin.X)+camX, float64(origin.Y)+camY
	if e.HasComponent(components.Visual) {
		v := components.Visual.Get(e)
		x += v.OffsetX
		y += v.OffsetY
	}
	return x, y
}

// drawSprite draws a texture supplied for the entity, flipped when facing
// left and tinted by an active flash.
func drawSprite(screen *ebiten.Image, e *donburi.Entry, img *ebiten.Image, x, y float64, scale spatial.Scale) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	s := float64(scale)
	if e.HasComponent(components.Visual) && components.Visual.Get(e).FacingLeft {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Scale(s, s)
	drawOp.GeoM.Translate(x, y)

	if r, g, b, ok := flashTint(e); ok {
		drawOp.ColorScale.Scale(r, g, b, 1)
	}
	screen.DrawImage(img, drawOp)
}

// flashTint returns the active flash multipliers for e.
func flashTint(e *donburi.Entry) (r, g, b float32, ok bool) {
	if !e.HasComponent(components.Flash) {
		return 1, 1, 1, false
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 {
		return 1, 1, 1, false
	}
	return flash.R, flash.G, flash.B, true
}

// bodyColor is the entity's catalog color with any flash applied.
func bodyColor(e *donburi.Entry, sp *components.SpatialData) color.RGBA {
	c := sp.Type.RGBA()
	if r, g, b, ok := flashTint(e); ok {
		c.R = scaleChannel(c.R, r*2)
		c.G = scaleChannel(c.G, g*2)
		c.B = scaleChannel(c.B, b*2)
	}
	return c
}

func scaleChannel(v uint8, f float32) uint8 {
	return uint8(min(255, float32(v)*f))
}

// drawShadow marks the anchor on the ground. It ignores visual offsets so a
// bobbing or hopping sprite visibly leaves the ground.
func drawShadow(screen *ebiten.Image, sp *components.SpatialData, camX, camY float64) {
	w := float32(sp.Type.Sprite.W) * float32(cfg.C.Scale()) / 3
	vector.DrawFilledCircle(screen,
		float32(float64(sp.Anchor.X)+camX), float32(float64(sp.Anchor.Y)+camY),
		w, color.RGBA{A: 60}, false)
}

func spriteSize(sp *components.SpatialData) (float32, float32) {
	scale := float32(cfg.C.Scale())
	return float32(sp.Type.Sprite.W) * scale, float32(sp.Type.Sprite.H) * scale
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, sp *components.SpatialData, camX, camY float64) {
	x, y := spriteScreenPos(e, sp, camX, camY)
	w, h := spriteSize(sp)
	vector.FillRect(screen, float32(x), float32(y), w, h, bodyColor(e, sp), false)
}

func drawPlayer(screen *ebiten.Image, e *donburi.Entry, sp *components.SpatialData, camX, camY float64) {
	player := components.Player.Get(e)
	// Flicker while invulnerable
	if player.InvulnFrames > 0 && player.InvulnFrames%4 < 2 {
		return
	}
	drawShadow(screen, sp, camX, camY)
	drawBody(screen, e, sp, camX, camY)

	// Facing marker on the leading side of the head
	x, y := spriteScreenPos(e, sp, camX, camY)
	w, _ := spriteSize(sp)
	markX := float32(x) + w - w/4
	if components.Visual.Get(e).FacingLeft {
		markX = float32(x)
	}
	vector.FillRect(screen, markX, float32(y)+w/4, w/4, w/4, cfg.White, false)
}

func drawEnemy(screen *ebiten.Image, e *donburi.Entry, sp *components.SpatialData, camX, camY float64) {
	enemy := components.Enemy.Get(e)
	if enemy.InvulnFrames > 0 && enemy.InvulnFrames%4 < 2 {
		x, y := spriteScreenPos(e, sp, camX, camY)
		w, h := spriteSize(sp)
		vector.FillRect(screen, float32(x), float32(y), w, h, cfg.LightRed, false)
		return
	}
	drawBody(screen, e, sp, camX, camY)
}

func drawItem(screen *ebiten.Image, e *donburi.Entry, sp *components.SpatialData, camX, camY float64) {
	drawShadow(screen, sp, camX, camY)

	x, y := spriteScreenPos(e, sp, camX, camY)
	w, h := spriteSize(sp)
	vector.DrawFilledCircle(screen, float32(x)+w/2, float32(y)+h/2, min(w, h)/2, bodyColor(e, sp), true)
}

// DrawHealthBars draws a bar above every entity that was recently hurt.
func DrawHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(e, width, height)
	view := viewRect(e, width, height)
	scale := cfg.C.Scale()

	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Health) || !entry.HasComponent(components.Spatial) {
			return
		}
		sp := components.Spatial.Get(entry)
		if !spatial.Intersects(view, spriteRect(sp, scale)) {
			return
		}
		x, y := healthBarPosition(sp, scale)
		drawBar(screen, x+camX, y+camY, cfg.Render.HealthBarWidth, cfg.Render.HealthBarHeight,
			components.Health.Get(entry).Fraction(), cfg.Red, cfg.Green)
	})
}

// healthBarPosition is the world position of the bar's top-left corner,
// centered over the anchor just above the sprite.
func healthBarPosition(sp *components.SpatialData, scale spatial.Scale) (float64, float64) {
	origin := sp.RenderOrigin(scale)
	x := float64(sp.Anchor.X) - cfg.Render.HealthBarWidth/2
	y := float64(origin.Y) - cfg.Render.HealthBarGap - cfg.Render.HealthBarHeight
	return x, y
}

func drawBar(screen *ebiten.Image, x, y, w, h, fraction float64, back, front color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), back, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), front, false)
}
