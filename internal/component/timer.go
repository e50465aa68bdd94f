package component

// Timer - таймер-накопитель для окон фиксированной длины
// (неуязвимость, регенерация). Время копится только при вызове Tick,
// поэтому пауза игрового цикла автоматически останавливает все таймеры.
type Timer struct {
	Elapsed  float64
	Duration float64
	Active   bool
}

// Start (пере)запускает окно заданной длины.
func (t *Timer) Start(duration float64) {
	t.Elapsed = 0
	t.Duration = duration
	t.Active = duration > 0
}

// Tick продвигает таймер. Возвращает true на тике, когда окно закрылось.
func (t *Timer) Tick(dt float64) bool {
	if !t.Active {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Active = false
		return true
	}
	return false
}

// Stop закрывает окно досрочно.
func (t *Timer) Stop() {
	t.Active = false
	t.Elapsed = 0
}

// Remaining - сколько осталось до закрытия окна.
func (t Timer) Remaining() float64 {
	if !t.Active {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Cooldown - перезарядка: после срабатывания копит время до Duration,
// затем снова становится готовой.
type Cooldown struct {
	Duration float64
	Elapsed  float64
	Ready    bool
}

// NewCooldown создаёт готовую к срабатыванию перезарядку.
func NewCooldown(duration float64) Cooldown {
	return Cooldown{Duration: duration, Ready: true}
}

// Tick продвигает перезарядку.
func (c *Cooldown) Tick(dt float64) {
	if c.Ready {
		return
	}
	c.Elapsed += dt
	if c.Elapsed >= c.Duration {
		c.Ready = true
		c.Elapsed = 0
	}
}

// Trigger тратит готовность и запускает отсчёт заново.
func (c *Cooldown) Trigger() {
	c.Ready = false
	c.Elapsed = 0
}

// Progress - доля пройденной перезарядки в [0, 1].
func (c Cooldown) Progress() float64 {
	if c.Ready || c.Duration <= 0 {
		return 1
	}
	p := c.Elapsed / c.Duration
	if p > 1 {
		p = 1
	}
	return p
}
