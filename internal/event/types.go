// internal/event/types.go
package event

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг погиб, сфера опыта создана
	PickupCollected  EventType = "PickupCollected"  // Игрок подобрал предмет
	PlayerDamaged    EventType = "PlayerDamaged"    // Игрок получил урон
	PlayerDied       EventType = "PlayerDied"       // Конец забега
	LevelUp          EventType = "LevelUp"          // Новый уровень игрока
	WeaponFired      EventType = "WeaponFired"      // Оружие сработало
	EnemyHit         EventType = "EnemyHit"         // Оружие попало по врагам
	WavePhaseChanged EventType = "WavePhaseChanged" // Смена фазы волны
	BossWaveSpawned  EventType = "BossWaveSpawned"  // Появилась босс-волна
	UpgradeChosen    EventType = "UpgradeChosen"
	GameStarted      EventType = "GameStarted"
)

// WavePhaseData - данные события WavePhaseChanged.
type WavePhaseData struct {
	Phase string
	Cycle int
}

// WeaponData - данные события WeaponFired.
type WeaponData struct {
	WeaponID string
	Hits     int
}

// PickupData - данные события PickupCollected.
type PickupData struct {
	Health bool
	Value  int
}
