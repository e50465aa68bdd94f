// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TileSize     = 64
	MapTilesX    = 100
	MapTilesY    = 100
	WorldWidth   = TileSize * MapTilesX
	WorldHeight  = TileSize * MapTilesY
	MaxDeltaTime = 0.06

	CameraFollowRate = 5.0 // скорость сглаживания камеры, 1/с
	CullMargin       = 64.0
	ThreatRadius     = 250.0 // «опасная» дистанция для индикатора угрозы

	// Ограничения коллекций - мягкие: лишнее просто не добавляется
	MaxEnemies     = 300
	MaxPickups     = 500
	MaxWeapons     = 6
	MaxProjectiles = 200
	MaxLevel       = 100

	PlayerMaxHealth        = 100.0
	PlayerSpeed            = 200.0
	PlayerCollectionRadius = 50.0
	PlayerHitboxSize       = 50
	InvulnerabilityTime    = 0.5

	EnemyHitboxSize      = 40
	BossHitboxSize       = 64
	EnemyAttackCooldown  = 1.0
	SpawnMargin          = 100.0
	BossWaveMinionCount  = 10
	BossWaveMinionSpread = 200.0

	PickupHitboxSize   = 10
	PickupAttractSpeed = 300.0
	PickupFloatSpeed   = 3.0
	PickupFloatHeight  = 2.0
	HealthDropChance   = 0.05
	HealthDropValue    = 20.0

	ProjectileHitboxSize = 20
	ProjectileSpeed      = 400.0
	ProjectileMaxRange   = 500.0
	ProjectileSpin       = 4 * math.Pi // радиан в секунду, только для отрисовки

	RingExpandSpeed = 500.0
	RingFadeSpeed   = 850.0

	UpgradeChoiceCount = 3
	UpgradeHealth      = 20.0
	UpgradeSpeed       = 20.0
	UpgradeCollection  = 20.0
)

var (
	BackgroundColor  = color.RGBA{20, 30, 20, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{70, 130, 220, 255}
	PlayerHurtColor  = color.RGBA{255, 255, 255, 255}
	HealthBarColor   = color.RGBA{200, 40, 40, 255}
	HealthBarBack    = color.RGBA{60, 20, 20, 220}
	XPBarColor       = color.RGBA{70, 180, 240, 255}
	XPBarBack        = color.RGBA{20, 40, 60, 220}
	XPOrbColor       = color.RGBA{90, 220, 255, 255}
	HealthOrbColor   = color.RGBA{240, 80, 100, 255}
	ProjectileColor  = color.RGBA{200, 160, 90, 255}
	ImpactColor      = color.RGBA{255, 240, 200, 255}
	RegenColor       = color.RGBA{120, 230, 120, 255}
	PanelColor       = color.RGBA{10, 10, 15, 200}
	CardColor        = color.RGBA{40, 50, 60, 235}
	CardHoverColor   = color.RGBA{70, 90, 110, 245}
	CalmPhaseColor   = color.RGBA{70, 130, 180, 220}
	HordePhaseColor  = color.RGBA{220, 60, 60, 220}
	RestPhaseColor   = color.RGBA{90, 170, 90, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	BossWaveColor    = color.RGBA{255, 80, 40, 255}
	CooldownBarColor = color.RGBA{230, 200, 80, 255}
	StrokeWidth      = float32(2.0)
)
