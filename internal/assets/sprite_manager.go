// internal/assets/sprite_manager.go
package assets

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

const placeholderSize = 16

// SpriteManager загружает и кэширует спрайты из каталога <dir>/<name>.png.
// Спрайты необязательны: без файла рендер рисует фигуры. Повреждённый файл
// заменяется пурпурной шахматкой, чтобы ошибку было видно на экране.
type SpriteManager struct {
	dir         string
	sprites     map[string]*ebiten.Image
	placeholder *ebiten.Image
	logger      zerolog.Logger
}

// NewSpriteManager создаёт менеджер. Пустой dir - спрайты отключены.
func NewSpriteManager(dir string, logger zerolog.Logger) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[string]*ebiten.Image),
		logger:  logger,
	}
}

// SpritePath - путь к файлу спрайта.
func SpritePath(dir, name string) string {
	return filepath.Join(dir, name+".png")
}

// Load загружает перечисленные спрайты и возвращает число найденных файлов.
func (m *SpriteManager) Load(names ...string) int {
	if m.dir == "" {
		return 0
	}
	loaded := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := m.sprites[name]; ok {
			continue
		}
		path := SpritePath(m.dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			m.logger.Warn().Err(err).Str("sprite", name).Msg("failed to load sprite, using placeholder")
			m.sprites[name] = m.Placeholder()
			loaded++
			continue
		}
		m.sprites[name] = img
		loaded++
	}
	m.logger.Debug().Int("loaded", loaded).Str("dir", m.dir).Msg("sprites loaded")
	return loaded
}

// Get возвращает спрайт, если он загружен.
func (m *SpriteManager) Get(name string) (*ebiten.Image, bool) {
	img, ok := m.sprites[name]
	return img, ok
}

// Placeholder - пурпурно-чёрная шахматка, создаётся при первом обращении.
func (m *SpriteManager) Placeholder() *ebiten.Image {
	if m.placeholder != nil {
		return m.placeholder
	}
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	magenta := color.RGBA{255, 0, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			if (x/4+y/4)%2 == 0 {
				img.Set(x, y, magenta)
			} else {
				img.Set(x, y, black)
			}
		}
	}
	m.placeholder = img
	return img
}

// Cleanup освобождает все загруженные спрайты.
func (m *SpriteManager) Cleanup() {
	for name, img := range m.sprites {
		if img != m.placeholder {
			img.Deallocate()
		}
		delete(m.sprites, name)
	}
	if m.placeholder != nil {
		m.placeholder.Deallocate()
		m.placeholder = nil
	}
}
