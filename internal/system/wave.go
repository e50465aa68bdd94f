// internal/system/wave.go
package system

import "karai-survival/internal/defs"

// WaveCycle - циклическая машина фаз CALM -> HORDE -> REST -> CALM ...
// Фаза заканчивается, когда её время достигает длительности (>=);
// излишек переносится в следующую фазу.
type WaveCycle struct {
	phases  []defs.PhaseDefinition
	index   int
	elapsed float64
	cycle   int
}

// NewWaveCycle начинает с первой фазы первого цикла.
func NewWaveCycle(phases []defs.PhaseDefinition) *WaveCycle {
	return &WaveCycle{phases: phases, cycle: 1}
}

// Advance продвигает время и возвращает фазы, в которые машина вошла
// на этом тике, - каждый переход ровно один раз, даже если длинный тик
// пересёк несколько границ.
func (w *WaveCycle) Advance(dt float64) []defs.PhaseDefinition {
	if len(w.phases) == 0 {
		return nil
	}
	w.elapsed += dt
	var entered []defs.PhaseDefinition
	for {
		cur := w.phases[w.index]
		if cur.Duration <= 0 || w.elapsed < cur.Duration {
			break
		}
		w.elapsed -= cur.Duration
		w.index = (w.index + 1) % len(w.phases)
		if w.index == 0 {
			w.cycle++
		}
		entered = append(entered, w.phases[w.index])
	}
	return entered
}

// Current - текущая фаза.
func (w *WaveCycle) Current() defs.PhaseDefinition {
	if len(w.phases) == 0 {
		return defs.PhaseDefinition{Name: defs.PhaseCalm, SpawnRate: 1, CountMultiplier: 1}
	}
	return w.phases[w.index]
}

// PhaseElapsed - время, проведённое в текущей фазе.
func (w *WaveCycle) PhaseElapsed() float64 { return w.elapsed }

// PhaseRemaining - сколько осталось до смены фазы.
func (w *WaveCycle) PhaseRemaining() float64 {
	return w.Current().Duration - w.elapsed
}

// Cycle - номер текущего цикла, начиная с 1.
func (w *WaveCycle) Cycle() int { return w.cycle }
