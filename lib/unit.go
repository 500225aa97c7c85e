package lib

import "github.com/google/uuid"

// =============================================================================
// Data model
// =============================================================================
// Ground: original_source (uuid::Uuid unit ids throughout AI/Game crates)
// and lib/game.go's receiver-method-heavy struct style. Units here are plain
// Go structs rather than protobuf-generated types: there's no wire/RPC
// boundary in this repo to justify generated code.

// Team identifies which side a unit or structure belongs to.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
	TeamNeutral
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "Player"
	case TeamEnemy:
		return "Enemy"
	case TeamNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// ParseTeam maps a team string; anything not recognized falls back to
// Player (the caller decides whether that's the right default for units
// vs. structures).
func ParseTeam(s string) Team {
	switch s {
	case "Enemy":
		return TeamEnemy
	case "Neutral":
		return TeamNeutral
	case "Player":
		return TeamPlayer
	default:
		return TeamPlayer
	}
}

// DamageType is one of the six resistance categories.
type DamageType int

const (
	DamageBlunt DamageType = iota
	DamagePierce
	DamageFire
	DamageDark
	DamageSlash
	DamageCrush
)

func (d DamageType) String() string {
	switch d {
	case DamageBlunt:
		return "Blunt"
	case DamagePierce:
		return "Pierce"
	case DamageFire:
		return "Fire"
	case DamageDark:
		return "Dark"
	case DamageSlash:
		return "Slash"
	case DamageCrush:
		return "Crush"
	default:
		return "Unknown"
	}
}

// Resistances holds one percentage (0-100) per damage type. The multiplier
// on hit is 1 - resistance/100, clamped so damage on hit is never below 1.
type Resistances struct {
	Blunt  int
	Pierce int
	Fire   int
	Dark   int
	Slash  int
	Crush  int
}

func (r Resistances) Of(dt DamageType) int {
	switch dt {
	case DamageBlunt:
		return r.Blunt
	case DamagePierce:
		return r.Pierce
	case DamageFire:
		return r.Fire
	case DamageDark:
		return r.Dark
	case DamageSlash:
		return r.Slash
	case DamageCrush:
		return r.Crush
	default:
		return 0
	}
}

// Attack describes one of a unit's attacks.
type Attack struct {
	Name        string
	Damage      int
	Range       int
	AttackTimes int
	DamageType  DamageType
}

// Unit is the game-side combat participant. Race and class are opaque to
// the core: they feed a terrain/defense table and a default damage type,
// but never drive core behavior directly.
type Unit struct {
	ID     uuid.UUID
	Team   Team
	Pos    AxialCoord
	Race   string
	Class  string

	MaxHealth        int
	Health           int
	BaseAttack       int
	AttacksPerRound  int
	AttackedThisTurn bool
	Resistances      Resistances
	MovementSpeed    int
	MovesLeft        int
	Attacks          []Attack

	Defense int // 0-100, read by the combat resolver as a to-be-hit chance
}

// NewUnit constructs a unit with a fresh id, team, and position. Every stat
// (health, moves_left, attacks, ...) is left at its zero value for the
// caller to set.
func NewUnit(team Team, pos AxialCoord) *Unit {
	return &Unit{
		ID:   uuid.New(),
		Team: team,
		Pos:  pos,
	}
}

func (u *Unit) Alive() bool { return u.Health > 0 }

// MaxAttackRange returns the max of the unit's attack ranges, defaulting to
// 1 if the unit has no attacks (matches the projector's AttackRange fact).
func (u *Unit) MaxAttackRange() int {
	best := 1
	for _, a := range u.Attacks {
		if a.Range > best {
			best = a.Range
		}
	}
	return best
}

// TerrainTile is a single hex of terrain.
type TerrainTile struct {
	Pos            AxialCoord
	SpriteType     string
	MoveCost       int // MoveCostImpassable for blocked terrain
	BlocksMovement bool
}

// MoveCostImpassable marks a tile as impassable regardless of MoveCost's
// numeric value.
const MoveCostImpassable = -1

func (t TerrainTile) Passable() bool {
	return !t.BlocksMovement && t.MoveCost != MoveCostImpassable
}
