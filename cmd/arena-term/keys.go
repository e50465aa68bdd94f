// cmd/arena-term/keys.go
package main

import (
	"time"

	"karai-survival/internal/input"
)

// holdWindow - сколько клавиша считается зажатой после последнего события.
// Терминал не сообщает об отпускании, только об автоповторе нажатия.
const holdWindow = 180 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// heldKeys эмулирует зажатые клавиши по времени последнего нажатия.
type heldKeys struct {
	last    [dirCount]time.Time
	trigger bool
}

func (h *heldKeys) press(d direction, now time.Time) {
	h.last[d] = now
	// противоположное направление отпускаем сразу
	switch d {
	case dirUp:
		h.last[dirDown] = time.Time{}
	case dirDown:
		h.last[dirUp] = time.Time{}
	case dirLeft:
		h.last[dirRight] = time.Time{}
	case dirRight:
		h.last[dirLeft] = time.Time{}
	}
}

func (h *heldKeys) pressTrigger() { h.trigger = true }

func (h *heldKeys) held(d direction, now time.Time) bool {
	return !h.last[d].IsZero() && now.Sub(h.last[d]) <= holdWindow
}

// snapshot собирает ввод на тик. Ручная атака срабатывает один раз на нажатие.
func (h *heldKeys) snapshot(now time.Time) input.Snapshot {
	s := input.Snapshot{
		Up:      h.held(dirUp, now),
		Down:    h.held(dirDown, now),
		Left:    h.held(dirLeft, now),
		Right:   h.held(dirRight, now),
		Trigger: h.trigger,
	}
	h.trigger = false
	return s
}

func (h *heldKeys) reset() {
	*h = heldKeys{}
}
