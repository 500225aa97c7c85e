package lib

// =============================================================================
// Combat resolution
// =============================================================================
// Ground: lib/combat_formula.go's pure-function shape (explicit RNG
// parameter rather than a package-level global, so results are
// reproducible in tests) and original_source/Game/src/world.rs's
// initiate_combat orchestration: the attacker strikes up to
// attacks_per_round times; between strikes the defender counters if still
// alive and in range.

// RNG is the minimal randomness surface the combat resolver needs. Satisfied
// by *rand.Rand; callers inject a seeded one in tests for determinism.
type RNG interface {
	Float64() float64
}

// CombatStats is the subset of Unit a combat resolution needs, decoupled
// from the full Unit type so the resolver can be exercised without a
// GameWorld.
type CombatStats struct {
	Defense     int // 0-100, to-be-hit chance input
	Resistances Resistances
}

func statsOf(u *Unit) CombatStats {
	return CombatStats{Defense: u.Defense, Resistances: u.Resistances}
}

// CombatResult accumulates every strike of one resolved exchange.
// AttackerHit/DefenderHit report only the attacker's FIRST strike and the
// defender's FIRST counter; the damage totals are summed over every strike
// and counter.
type CombatResult struct {
	AttackerHit         bool
	DefenderDamageDealt int // total damage the attacker's strikes dealt to the defender
	DefenderHit         bool
	AttackerDamageDealt int // total damage the defender's counters dealt to the attacker
}

// hitChance clamps defense into [10,95] and expresses it as a probability:
// a defender's "defense" stat IS the to-be-hit chance, not an inverted
// evasion stat.
func hitChance(defense int) float64 {
	d := defense
	if d < 10 {
		d = 10
	}
	if d > 95 {
		d = 95
	}
	return float64(d) / 100.0
}

// damageAfterResistance applies the resistance multiplier for dt, floored
// at 1 so a hit always deals at least 1 damage.
func damageAfterResistance(baseDamage int, resistances Resistances, dt DamageType) int {
	mult := 1.0 - float64(resistances.Of(dt))/100.0
	if mult < 0 {
		mult = 0
	}
	dmg := int(float64(baseDamage) * mult)
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// Combatant bundles what ResolveCombat needs from one side: its stats,
// remaining health, attacks-per-round budget, and a counter-attack
// (HasCounter=false means "cannot counter").
type Combatant struct {
	Stats           CombatStats
	Health          int
	AttacksPerRound int
	Attack          Attack
	CounterAttack   Attack
	HasCounter      bool
}

// ResolveCombat resolves a full exchange: the attacker strikes with its
// attack up to attacker.AttacksPerRound times (stopping early if the
// defender dies), and between strikes the defender counters with
// CounterAttack if HasCounter and still alive. attacker/defender health are
// NOT mutated — callers apply DefenderDamageDealt/AttackerDamageDealt
// themselves (GameWorld.ExecutePendingCombat does this, then handles kill
// propagation).
func ResolveCombat(attacker, defender Combatant, rng RNG) *CombatResult {
	result := &CombatResult{}

	defenderHealth := defender.Health
	attackerHealth := attacker.Health

	strikes := attacker.AttacksPerRound
	if strikes < 1 {
		strikes = 1
	}

	for i := 0; i < strikes; i++ {
		if defenderHealth <= 0 {
			break
		}

		hit := rng.Float64() < hitChance(defender.Stats.Defense)
		dealt := 0
		if hit {
			dealt = damageAfterResistance(attacker.Attack.Damage, defender.Stats.Resistances, attacker.Attack.DamageType)
		}
		if i == 0 {
			result.AttackerHit = hit
		}
		result.DefenderDamageDealt += dealt
		defenderHealth -= dealt

		if attackerHealth <= 0 || defenderHealth <= 0 || !defender.HasCounter {
			continue
		}

		counterHit := rng.Float64() < hitChance(attacker.Stats.Defense)
		counterDealt := 0
		if counterHit {
			counterDealt = damageAfterResistance(defender.CounterAttack.Damage, attacker.Stats.Resistances, defender.CounterAttack.DamageType)
		}
		if i == 0 {
			result.DefenderHit = counterHit
		}
		result.AttackerDamageDealt += counterDealt
		attackerHealth -= counterDealt
	}

	return result
}
