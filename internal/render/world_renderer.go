// internal/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/app"
	"karai-survival/internal/assets"
	"karai-survival/internal/camera"
	"karai-survival/internal/config"
	"karai-survival/internal/effect"
	"karai-survival/internal/entity"
	"karai-survival/internal/types"
	"karai-survival/internal/weapon"
	maprender "karai-survival/pkg/render"
	"karai-survival/pkg/tilemap"
)

const playerRadius = config.PlayerHitboxSize * 0.45

// WorldRenderer рисует всё, что живёт в мировых координатах: фон, предметы,
// врагов, игрока, снаряды и эффекты. Объекты вне экрана не рисуются.
type WorldRenderer struct {
	tiles   *maprender.TileRenderer
	sprites *assets.SpriteManager
	op      ebiten.DrawImageOptions

	// смещение текущего кадра: камера плюс тряска
	offset types.Vec2
	cam    *camera.Camera
}

func NewWorldRenderer(tm *tilemap.TileMap, sprites *assets.SpriteManager) *WorldRenderer {
	return &WorldRenderer{
		tiles:   maprender.NewTileRenderer(tm, maprender.DefaultMapColors()),
		sprites: sprites,
	}
}

// Draw рисует мир текущей сессии.
func (r *WorldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	r.cam = g.Camera
	r.offset = g.Camera.Offset.Sub(g.Camera.ShakeOffset())

	screen.Fill(config.BackgroundColor)
	r.tiles.Draw(screen, r.offset, g.Camera.ViewWidth, g.Camera.ViewHeight)

	for _, p := range g.CombatSystem.Pickups() {
		r.drawPickup(screen, p)
	}
	for _, e := range g.SpawnSystem.Enemies() {
		r.drawEnemy(screen, e)
	}
	r.drawPlayer(screen, g.Player)
	for _, w := range g.Player.Weapons {
		for _, p := range w.Projectiles() {
			r.drawProjectile(screen, p, w.Def.Sprite)
		}
		for _, e := range w.Effects() {
			r.drawEffect(screen, e)
		}
	}
	for _, e := range g.CombatSystem.Effects() {
		r.drawEffect(screen, e)
	}
}

func (r *WorldRenderer) visible(p types.Vec2) bool {
	return r.cam.IsVisible(p, config.CullMargin)
}

func (r *WorldRenderer) screenPos(p types.Vec2) (float32, float32) {
	s := p.Sub(r.offset)
	return float32(s.X), float32(s.Y)
}

// drawSprite рисует спрайт по центру точки, вписывая его в квадрат size.
func (r *WorldRenderer) drawSprite(screen, img *ebiten.Image, p types.Vec2, size, rotation float64) {
	b := img.Bounds()
	scale := size / math.Max(float64(b.Dx()), float64(b.Dy()))
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	r.op.GeoM.Scale(scale, scale)
	r.op.GeoM.Rotate(rotation)
	x, y := r.screenPos(p)
	r.op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &r.op)
}

func (r *WorldRenderer) drawPickup(screen *ebiten.Image, p *entity.Pickup) {
	if p.Collected || !r.visible(p.Pos) {
		return
	}
	x, y := r.screenPos(p.Pos)
	y += float32(p.FloatOffset())
	switch p.Kind {
	case entity.PickupHealth:
		c := config.HealthOrbColor
		vector.DrawFilledRect(screen, x-6, y-2, 12, 4, c, false)
		vector.DrawFilledRect(screen, x-2, y-6, 4, 12, c, false)
	default:
		vector.DrawFilledCircle(screen, x, y, 5, config.XPOrbColor, true)
		vector.StrokeCircle(screen, x, y, 5, 1, maprender.DarkenColor(config.XPOrbColor), true)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	if !e.IsAlive() || !r.visible(e.Pos) {
		return
	}
	size := float64(e.Hitbox().Dx())
	if img, ok := r.sprites.Get(e.Def.Sprite); ok {
		r.drawSprite(screen, img, e.Pos, size, 0)
	} else {
		v := e.Def.Visuals
		factor := v.RadiusFactor
		if factor <= 0 {
			factor = 0.5
		}
		radius := float32(size * factor)
		x, y := r.screenPos(e.Pos)
		vector.DrawFilledCircle(screen, x, y, radius, v.RGBA(), true)
		stroke := float32(v.StrokeWidth)
		if stroke <= 0 {
			stroke = config.StrokeWidth
		}
		vector.StrokeCircle(screen, x, y, radius, stroke, maprender.DarkenColor(v.RGBA()), true)
		// глаз смотрит в сторону движения
		eye := e.Dir.Scale(float64(radius) * 0.5)
		vector.DrawFilledCircle(screen, x+float32(eye.X), y+float32(eye.Y), radius*0.2, config.TextLightColor, true)
	}
	if e.Def.Boss || e.Health.Current < e.Health.Max {
		r.drawBar(screen, e.Pos, size, e.Health.Ratio(), config.HealthBarColor, config.HealthBarBack)
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p *entity.Player) {
	x, y := r.screenPos(p.Pos)
	clr := config.PlayerColor
	// мигание во время неуязвимости
	if p.IsInvulnerable() && int(p.SurvivalTime*20)%2 == 0 {
		clr = config.PlayerHurtColor
	}
	if p.IsRegenerating() {
		vector.StrokeCircle(screen, x, y, playerRadius+6, 2, maprender.WithAlpha(config.RegenColor, 0.6), true)
	}
	vector.DrawFilledCircle(screen, x, y, playerRadius, clr, true)
	vector.StrokeCircle(screen, x, y, playerRadius, config.StrokeWidth, maprender.DarkenColor(config.PlayerColor), true)

	// радиус сбора
	vector.StrokeCircle(screen, x, y, float32(p.CollectionRadius), 1, color.RGBA{255, 255, 255, 20}, true)
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p *weapon.Projectile, sprite string) {
	if p.ShouldRemove() || !r.visible(p.Pos) {
		return
	}
	rot := p.Rotation
	if img, ok := r.sprites.Get(sprite); ok {
		r.drawSprite(screen, img, p.Pos, config.ProjectileHitboxSize, rot)
		return
	}
	x, y := r.screenPos(p.Pos)
	half := config.ProjectileHitboxSize / 2.0
	dx, dy := math.Cos(rot)*half, math.Sin(rot)*half
	vector.StrokeLine(screen, x-float32(dx), y-float32(dy), x+float32(dx), y+float32(dy), 4, config.ProjectileColor, true)
	vector.StrokeLine(screen, x+float32(dy), y-float32(dx), x-float32(dy), y+float32(dx), 2, config.ProjectileColor, true)
}

func (r *WorldRenderer) drawEffect(screen *ebiten.Image, e effect.Effect) {
	if e.Completed() || !r.visible(e.Position()) {
		return
	}
	switch fx := e.(type) {
	case *effect.Ring:
		x, y := r.screenPos(fx.Center)
		vector.StrokeCircle(screen, x, y, float32(fx.Radius), 3, maprender.WithAlpha(fx.Color, fx.Alpha/255), true)
	case *effect.Flash:
		x, y := r.screenPos(fx.Pos)
		k := fx.Progress()
		vector.DrawFilledCircle(screen, x, y, float32(fx.Size*(0.5+k)), maprender.WithAlpha(config.ImpactColor, 1-k), true)
	case *effect.Burst:
		for _, p := range fx.Particles {
			if !fx.Alive(p) {
				continue
			}
			x, y := r.screenPos(p.Pos)
			vector.DrawFilledRect(screen, x-1.5, y-1.5, 3, 3, maprender.WithAlpha(fx.Color, fx.Fade(p)), false)
		}
	}
}

// drawBar рисует полоску над объектом шириной width.
func (r *WorldRenderer) drawBar(screen *ebiten.Image, p types.Vec2, width, ratio float64, fg, bg color.RGBA) {
	x, y := r.screenPos(p)
	w := float32(width)
	top := y - w/2 - 8
	vector.DrawFilledRect(screen, x-w/2, top, w, 4, bg, false)
	vector.DrawFilledRect(screen, x-w/2, top, w*float32(ratio), 4, fg, false)
}

// Cleanup освобождает картинки фона.
func (r *WorldRenderer) Cleanup() {
	r.tiles.Cleanup()
}
