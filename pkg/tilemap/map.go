// pkg/tilemap/map.go
package tilemap

import (
	"math"

	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// Kind - вид тайла. Только оформление, на движение не влияет.
type Kind uint8

const (
	Grass Kind = iota
	GrassTall
	GrassFlowers
	Dirt
)

// Kinds - все виды тайлов в порядке отрисовки.
var Kinds = []Kind{Grass, GrassTall, GrassFlowers, Dirt}

// TileMap - прямоугольная карта фона.
type TileMap struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    []Kind
}

// grassWeights - доли обычной травы, высокой травы и травы с цветами.
var grassWeights = []float64{70, 20, 10}

// New генерирует карту: случайные варианты травы и круглые пятна земли.
// Одинаковый seed даёт одинаковую карту.
func New(width, height int, tileSize float64, seed int64) *TileMap {
	m := &TileMap{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    make([]Kind, width*height),
	}
	rng := utils.NewPRNGService(seed)
	for i := range m.Tiles {
		m.Tiles[i] = Kind(rng.ChooseWeighted(grassWeights))
	}
	m.generateDirtPatches(rng)
	return m
}

func (m *TileMap) generateDirtPatches(rng *utils.PRNGService) {
	patches := m.Width * m.Height / 200
	for p := 0; p < patches; p++ {
		cx := rng.Intn(m.Width)
		cy := rng.Intn(m.Height)
		r := 1 + rng.Intn(3)
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy > r*r || !m.InBounds(x, y) {
					continue
				}
				m.Tiles[y*m.Width+x] = Dirt
			}
		}
	}
}

// InBounds - лежит ли тайл внутри карты.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At возвращает вид тайла. За пределами карты - обычная трава.
func (m *TileMap) At(x, y int) Kind {
	if !m.InBounds(x, y) {
		return Grass
	}
	return m.Tiles[y*m.Width+x]
}

// TileAt переводит мировую точку в координаты тайла.
func (m *TileMap) TileAt(p types.Vec2) (int, int) {
	return int(math.Floor(p.X / m.TileSize)), int(math.Floor(p.Y / m.TileSize))
}

// VisibleRange - включительный диапазон тайлов, покрывающих прямоугольник
// [min, max], обрезанный по границам карты.
func (m *TileMap) VisibleRange(min, max types.Vec2) (x0, y0, x1, y1 int) {
	x0, y0 = m.TileAt(min)
	x1, y1 = m.TileAt(max)
	x0 = utils.ClampInt(x0, 0, m.Width-1)
	y0 = utils.ClampInt(y0, 0, m.Height-1)
	x1 = utils.ClampInt(x1, 0, m.Width-1)
	y1 = utils.ClampInt(y1, 0, m.Height-1)
	return x0, y0, x1, y1
}

// Count - сколько тайлов данного вида на карте.
func (m *TileMap) Count(k Kind) int {
	n := 0
	for _, t := range m.Tiles {
		if t == k {
			n++
		}
	}
	return n
}
