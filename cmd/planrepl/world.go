package main

import (
	"fmt"
	"os"

	"github.com/turnforge/tacticalplanner/lib"
)

// unitTemplate mirrors planctl's stand-in race/class stat table: the
// scenario format only names a unit type string, and the actual stat
// lookup is an external collaborator — opaque to the core planner.
type unitTemplate struct {
	MaxHealth       int
	BaseAttack      int
	AttacksPerRound int
	MovementSpeed   int
	Defense         int
	Resistances     lib.Resistances
	Attacks         []lib.Attack
}

var unitTemplates = map[string]unitTemplate{
	"Warrior": {
		MaxHealth: 30, BaseAttack: 8, AttacksPerRound: 1, MovementSpeed: 2, Defense: 40,
		Attacks: []lib.Attack{{Name: "Slash", Damage: 8, Range: 1, AttackTimes: 1, DamageType: lib.DamageSlash}},
	},
	"Archer": {
		MaxHealth: 20, BaseAttack: 6, AttacksPerRound: 1, MovementSpeed: 3, Defense: 25,
		Attacks: []lib.Attack{{Name: "Arrow", Damage: 6, Range: 3, AttackTimes: 1, DamageType: lib.DamagePierce}},
	},
	"Mage": {
		MaxHealth: 15, BaseAttack: 10, AttacksPerRound: 1, MovementSpeed: 2, Defense: 15,
		Attacks: []lib.Attack{{Name: "Fire Bolt", Damage: 10, Range: 2, AttackTimes: 1, DamageType: lib.DamageFire}},
	},
	"Brute": {
		MaxHealth: 45, BaseAttack: 12, AttacksPerRound: 1, MovementSpeed: 1, Defense: 55,
		Attacks: []lib.Attack{{Name: "Crush", Damage: 12, Range: 1, AttackTimes: 1, DamageType: lib.DamageCrush}},
	},
}

var defaultTemplate = unitTemplate{
	MaxHealth: 20, BaseAttack: 5, AttacksPerRound: 1, MovementSpeed: 2, Defense: 30,
	Attacks: []lib.Attack{{Name: "Strike", Damage: 5, Range: 1, AttackTimes: 1, DamageType: lib.DamageBlunt}},
}

func materializeUnit(su *lib.ScenarioUnit, pos lib.AxialCoord) *lib.Unit {
	tmpl, ok := unitTemplates[su.UnitType]
	if !ok {
		tmpl = defaultTemplate
	}

	u := lib.NewUnit(su.Team, pos)
	u.MaxHealth = tmpl.MaxHealth
	u.Health = tmpl.MaxHealth
	u.BaseAttack = tmpl.BaseAttack
	u.AttacksPerRound = tmpl.AttacksPerRound
	u.MovementSpeed = tmpl.MovementSpeed
	u.MovesLeft = tmpl.MovementSpeed
	u.Defense = tmpl.Defense
	u.Resistances = tmpl.Resistances
	u.Attacks = tmpl.Attacks
	u.Class = su.UnitType
	return u
}

func terrainMoveCost(sprite string) int {
	switch sprite {
	case "Mountain", "Wall":
		return lib.MoveCostImpassable
	case "Forest", "Forest2", "Hills", "HauntedWoods":
		return 2
	case "Swamp":
		return 3
	default:
		return 1
	}
}

func loadScenarioFile(path string) (*lib.GameWorld, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	scenario, err := lib.ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	world := lib.NewGameWorld(0)
	for _, cell := range scenario.Cells {
		world.SetTerrain(lib.TerrainTile{
			Pos:        cell.HexCoord,
			SpriteType: cell.SpriteType,
			MoveCost:   terrainMoveCost(cell.SpriteType),
		})
		if cell.Unit != nil {
			world.AddUnit(materializeUnit(cell.Unit, cell.HexCoord))
		}
	}

	return world, nil
}
