package component

// Health - компонент здоровья. Инвариант: 0 <= Current <= Max.
type Health struct {
	Current float64
	Max     float64
}

// NewHealth создаёт полный запас здоровья.
func NewHealth(max float64) Health {
	if max < 0 {
		max = 0
	}
	return Health{Current: max, Max: max}
}

// Alive - жива ли сущность.
func (h Health) Alive() bool { return h.Current > 0 }

// Ratio - доля оставшегося здоровья в [0, 1].
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Damage снимает здоровье и возвращает фактически снятое значение.
// died == true только на переходе из живого в мёртвое состояние.
func (h *Health) Damage(amount float64) (applied float64, died bool) {
	if amount <= 0 || h.Current <= 0 {
		return 0, false
	}
	before := h.Current
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return before - h.Current, h.Current == 0
}

// Heal восстанавливает здоровье, не выходя за максимум.
func (h *Health) Heal(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// Refill восстанавливает здоровье до максимума.
func (h *Health) Refill() { h.Current = h.Max }

// GrowMax увеличивает максимум и текущий запас на одну величину.
func (h *Health) GrowMax(amount float64) {
	h.Max += amount
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
