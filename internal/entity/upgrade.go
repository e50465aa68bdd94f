// internal/entity/upgrade.go
package entity

import (
	"fmt"

	"karai-survival/internal/config"
	"karai-survival/internal/utils"
)

// UpgradeKind - вид улучшения при повышении уровня.
type UpgradeKind int

const (
	UpgradeNewWeapon UpgradeKind = iota
	UpgradeWeaponLevel
	UpgradeMaxHealth
	UpgradeSpeed
	UpgradeCollection
)

// Upgrade - один вариант на экране выбора улучшения.
type Upgrade struct {
	Kind        UpgradeKind
	WeaponID    string
	Amount      float64
	Title       string
	Description string
}

func passiveUpgrades() []Upgrade {
	return []Upgrade{
		{Kind: UpgradeMaxHealth, Amount: config.UpgradeHealth, Title: "Vitality", Description: fmt.Sprintf("+%.0f max health", config.UpgradeHealth)},
		{Kind: UpgradeSpeed, Amount: config.UpgradeSpeed, Title: "Swiftness", Description: fmt.Sprintf("+%.0f move speed", config.UpgradeSpeed)},
		{Kind: UpgradeCollection, Amount: config.UpgradeCollection, Title: "Magnet", Description: fmt.Sprintf("+%.0f pickup radius", config.UpgradeCollection)},
	}
}

// UpgradePool собирает всех кандидатов: новое оружие (если есть слот),
// повышения уровня неполного оружия и пассивные бонусы.
func (p *Player) UpgradePool() []Upgrade {
	var pool []Upgrade
	if len(p.Weapons) < config.MaxWeapons {
		for _, id := range p.lib.WeaponOrder {
			if p.Weapon(id) != nil {
				continue
			}
			def := p.lib.Weapons[id]
			pool = append(pool, Upgrade{Kind: UpgradeNewWeapon, WeaponID: id, Title: def.Name, Description: "New: " + def.Description})
		}
	}
	for _, w := range p.Weapons {
		if w.Level >= w.MaxLevel() {
			continue
		}
		pool = append(pool, Upgrade{
			Kind:        UpgradeWeaponLevel,
			WeaponID:    w.ID(),
			Title:       w.Def.Name,
			Description: fmt.Sprintf("Level %d -> %d", w.Level, w.Level+1),
		})
	}
	return append(pool, passiveUpgrades()...)
}

// GenerateUpgradeChoices выбирает ровно три разных варианта без повторов,
// дополняя пассивным бонусом здоровья, если кандидатов меньше трёх.
func (p *Player) GenerateUpgradeChoices(rng *utils.PRNGService) []Upgrade {
	pool := p.UpgradePool()
	choices := make([]Upgrade, 0, config.UpgradeChoiceCount)
	for _, idx := range rng.Sample(len(pool), config.UpgradeChoiceCount) {
		choices = append(choices, pool[idx])
	}
	for len(choices) < config.UpgradeChoiceCount {
		choices = append(choices, passiveUpgrades()[0])
	}
	return choices
}

// ApplyUpgrade применяет выбранное улучшение. Возвращает false, если
// улучшение уже неприменимо (нет слота, оружие на максимуме).
func (p *Player) ApplyUpgrade(u Upgrade) bool {
	switch u.Kind {
	case UpgradeNewWeapon:
		return p.AddWeapon(u.WeaponID)
	case UpgradeWeaponLevel:
		w := p.Weapon(u.WeaponID)
		return w != nil && w.LevelUp()
	case UpgradeMaxHealth:
		p.Health.GrowMax(u.Amount)
	case UpgradeSpeed:
		p.Speed += u.Amount
	case UpgradeCollection:
		p.CollectionRadius += u.Amount
	default:
		return false
	}
	return true
}
