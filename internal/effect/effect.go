// internal/effect/effect.go
package effect

import (
	"image/color"
	"math"

	"karai-survival/internal/config"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// Effect - чисто визуальный объект с ограниченным временем жизни.
type Effect interface {
	Update(dt float64)
	Completed() bool
	Position() types.Vec2
}

// Ring - расширяющееся и тающее кольцо (удар по площади, взмах).
type Ring struct {
	Center    types.Vec2
	Radius    float64
	MaxRadius float64
	Alpha     float64 // 0..255
	Color     color.RGBA
}

// NewRing создаёт кольцо, растущее от нуля до maxRadius.
func NewRing(center types.Vec2, maxRadius float64, clr color.RGBA) *Ring {
	return &Ring{Center: center, MaxRadius: maxRadius, Alpha: 255, Color: clr}
}

func (r *Ring) Update(dt float64) {
	r.Radius += config.RingExpandSpeed * dt
	r.Alpha -= config.RingFadeSpeed * dt
	if r.Radius > r.MaxRadius {
		r.Radius = r.MaxRadius
	}
	if r.Alpha < 0 {
		r.Alpha = 0
	}
}

func (r *Ring) Completed() bool { return r.Radius >= r.MaxRadius || r.Alpha <= 0 }

func (r *Ring) Position() types.Vec2 { return r.Center }

// Flash - короткая вспышка в точке попадания.
type Flash struct {
	Pos      types.Vec2
	Elapsed  float64
	Duration float64
	Size     float64
}

// NewFlash создаёт вспышку размера size на duration секунд.
func NewFlash(pos types.Vec2, size, duration float64) *Flash {
	return &Flash{Pos: pos, Size: size, Duration: duration}
}

func (f *Flash) Update(dt float64) { f.Elapsed += dt }

func (f *Flash) Completed() bool { return f.Elapsed >= f.Duration }

func (f *Flash) Position() types.Vec2 { return f.Pos }

// Progress - доля прожитого времени в [0, 1].
func (f *Flash) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return math.Min(1, f.Elapsed/f.Duration)
}

// Particle - одна частица взрыва.
type Particle struct {
	Pos  types.Vec2
	Vel  types.Vec2
	Life float64
}

// Burst - разлёт частиц (смерть врага, подбор предмета).
type Burst struct {
	Origin    types.Vec2
	Particles []Particle
	Color     color.RGBA
	Lifetime  float64
	elapsed   float64
}

// NewBurst разбрасывает count частиц со скоростью до speed px/s.
func NewBurst(rng *utils.PRNGService, origin types.Vec2, count int, speed, lifetime float64, clr color.RGBA) *Burst {
	b := &Burst{Origin: origin, Color: clr, Lifetime: lifetime}
	for i := 0; i < count; i++ {
		angle := rng.Range(0, 2*math.Pi)
		v := rng.Range(speed*0.3, speed)
		b.Particles = append(b.Particles, Particle{
			Pos:  origin,
			Vel:  types.Vec2{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
			Life: rng.Range(lifetime*0.5, lifetime),
		})
	}
	return b
}

func (b *Burst) Update(dt float64) {
	b.elapsed += dt
	for i := range b.Particles {
		p := &b.Particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(math.Max(0, 1-3*dt)) // трение
	}
}

func (b *Burst) Completed() bool { return b.elapsed >= b.Lifetime }

func (b *Burst) Position() types.Vec2 { return b.Origin }

// Alive - жива ли частица на текущий момент.
func (b *Burst) Alive(p Particle) bool { return b.elapsed < p.Life }

// Fade - прозрачность частицы в [0, 1].
func (b *Burst) Fade(p Particle) float64 {
	if p.Life <= 0 {
		return 0
	}
	return math.Max(0, 1-b.elapsed/p.Life)
}

// UpdateAll продвигает эффекты и выбрасывает завершённые, переиспользуя срез.
func UpdateAll(effects []Effect, dt float64) []Effect {
	kept := effects[:0]
	for _, e := range effects {
		e.Update(dt)
		if !e.Completed() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(effects); i++ {
		effects[i] = nil
	}
	return kept
}
