// pkg/render/tile_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/types"
	"karai-survival/pkg/tilemap"
)

// TileRenderer рисует фон карты. Каждый вид тайла рисуется один раз
// в отдельную картинку, а кадр собирается только из видимых тайлов.
type TileRenderer struct {
	tiles  *tilemap.TileMap
	colors MapColors
	images map[tilemap.Kind]*ebiten.Image
	op     ebiten.DrawImageOptions
}

func NewTileRenderer(tm *tilemap.TileMap, colors MapColors) *TileRenderer {
	r := &TileRenderer{
		tiles:  tm,
		colors: colors,
		images: make(map[tilemap.Kind]*ebiten.Image, len(tilemap.Kinds)),
	}
	for _, k := range tilemap.Kinds {
		r.images[k] = r.renderTile(k)
	}
	return r
}

func (r *TileRenderer) renderTile(k tilemap.Kind) *ebiten.Image {
	size := int(r.tiles.TileSize)
	s := float32(r.tiles.TileSize)
	img := ebiten.NewImage(size, size)

	switch k {
	case tilemap.GrassTall:
		img.Fill(r.colors.GrassTallColor)
		blade := r.colors.GrassColor
		for i := 0; i < 4; i++ {
			x := s * (0.15 + 0.22*float32(i))
			vector.StrokeLine(img, x, s*0.7, x+s*0.05, s*0.45, r.colors.StrokeWidth, blade, true)
		}
	case tilemap.GrassFlowers:
		img.Fill(r.colors.GrassColor)
		vector.DrawFilledCircle(img, s*0.3, s*0.35, s*0.05, r.colors.FlowerColor, true)
		vector.DrawFilledCircle(img, s*0.7, s*0.6, s*0.05, r.colors.FlowerColor, true)
	case tilemap.Dirt:
		img.Fill(r.colors.DirtColor)
		vector.DrawFilledCircle(img, s*0.25, s*0.7, s*0.04, r.colors.PebbleColor, true)
		vector.DrawFilledCircle(img, s*0.65, s*0.3, s*0.03, r.colors.PebbleColor, true)
	default:
		img.Fill(r.colors.GrassColor)
	}
	// лёгкая сетка, чтобы было видно движение
	vector.StrokeRect(img, 0, 0, s, s, 1, color.RGBA{0, 0, 0, 24}, false)
	return img
}

// Draw рисует тайлы, попадающие в окно камеры. offset - левый верхний угол
// окна в мировых координатах с учётом тряски.
func (r *TileRenderer) Draw(screen *ebiten.Image, offset types.Vec2, viewW, viewH float64) {
	x0, y0, x1, y1 := r.tiles.VisibleRange(offset, offset.Add(types.Vec2{X: viewW, Y: viewH}))
	ts := r.tiles.TileSize
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.op.GeoM.Reset()
			r.op.GeoM.Translate(float64(x)*ts-offset.X, float64(y)*ts-offset.Y)
			screen.DrawImage(r.images[r.tiles.At(x, y)], &r.op)
		}
	}
}

// Cleanup освобождает картинки тайлов.
func (r *TileRenderer) Cleanup() {
	for k, img := range r.images {
		img.Deallocate()
		delete(r.images, k)
	}
}
