package cmd

import "github.com/turnforge/tacticalplanner/lib"

// unitTemplate is a stat block keyed by the scenario file's UnitType
// string. Race/class tables are an external collaborator, opaque to the
// core planner and used only to compute defense and default damage type;
// this is the CLI's stand-in table for turning a scenario
// cell's unit type name into concrete stats, not a core component.
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

// defaultTemplate is used for any unit type not in the table above, so an
// unrecognized scenario unit type still produces a playable unit.
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
