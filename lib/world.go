package lib

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// =============================================================================
// Game world operations
// =============================================================================
// Ground: lib/game.go's Game/World controller-method shape (Move/Attack/
// EndTurn returning change lists) and original_source/Game/src/world.rs's
// GameWorld::move_unit/initiate_combat exact semantics.

var (
	ErrInvalidMove       = errors.New("invalid move: blocked, out of radius, or occupied by an ally")
	ErrUnitNotFound      = errors.New("unit not found")
	ErrCombatNotPossible = errors.New("attacker already attacked this turn")
)

// InteractiveObject is a blocking or non-blocking world object other than a
// unit or terrain tile (race/class flavor content beyond this is an
// external collaborator, opaque to the core planner).
type InteractiveObject struct {
	ID             uuid.UUID
	Pos            AxialCoord
	BlocksMovement bool
}

// PendingCombat is a snapshot of both participants' display stats, their
// attack lists, and a selected-attack index. It exists only between
// RequestCombat and ExecutePendingCombat.
type PendingCombat struct {
	AttackerID uuid.UUID
	DefenderID uuid.UUID
	Attacker   Combatant
	Defender   Combatant
}

// GameWorld owns the unit, terrain, and interactive-object indices for one
// match, plus the turn system and event queue.
type GameWorld struct {
	Radius int // 0 means unbounded

	units      map[uuid.UUID]*Unit
	objects    map[uuid.UUID]*InteractiveObject
	terrain    map[AxialCoord]TerrainTile
	objectAt   map[AxialCoord]uuid.UUID

	Turn *TurnSystem

	pending *PendingCombat

	lastKnownTeam Team
	started       bool

	Events *EventQueue
}

// NewGameWorld constructs an empty world with a fresh turn system.
func NewGameWorld(radius int) *GameWorld {
	return &GameWorld{
		Radius:  radius,
		units:   make(map[uuid.UUID]*Unit),
		objects: make(map[uuid.UUID]*InteractiveObject),
		terrain: make(map[AxialCoord]TerrainTile),
		objectAt: make(map[AxialCoord]uuid.UUID),
		Turn:    NewTurnSystem(),
		Events:  NewEventQueue(),
	}
}

// AddUnit registers a unit in the world, keyed by its own id.
func (w *GameWorld) AddUnit(u *Unit) {
	w.units[u.ID] = u
}

// RemoveUnit removes a unit from the world, if present.
func (w *GameWorld) RemoveUnit(id uuid.UUID) {
	delete(w.units, id)
}

// UnitByID looks up a unit by id.
func (w *GameWorld) UnitByID(id uuid.UUID) (*Unit, bool) {
	u, ok := w.units[id]
	return u, ok
}

// Units returns all units (iteration order unspecified, the caller sorts
// when a stable order matters).
func (w *GameWorld) Units() []*Unit {
	out := make([]*Unit, 0, len(w.units))
	for _, u := range w.units {
		out = append(out, u)
	}
	return out
}

// UnitAt returns the unit occupying pos, if any.
func (w *GameWorld) UnitAt(pos AxialCoord) *Unit {
	for _, u := range w.units {
		if u.Pos == pos {
			return u
		}
	}
	return nil
}

// SetTerrain registers the terrain tile at its own position.
func (w *GameWorld) SetTerrain(t TerrainTile) {
	w.terrain[t.Pos] = t
}

// TerrainAt returns the terrain tile at pos, defaulting to an open, cost-1
// tile if none was set.
func (w *GameWorld) TerrainAt(pos AxialCoord) TerrainTile {
	if t, ok := w.terrain[pos]; ok {
		return t
	}
	return TerrainTile{Pos: pos, MoveCost: 1}
}

// InRadius reports whether pos lies within the world's radius (a radius of
// 0 means unbounded).
func (w *GameWorld) InRadius(pos AxialCoord) bool {
	if w.Radius <= 0 {
		return true
	}
	return AxialCoord{}.Distance(pos) <= w.Radius
}

// ObjectBlockingAt returns true if an interactive object at pos blocks
// movement.
func (w *GameWorld) ObjectBlockingAt(pos AxialCoord) bool {
	id, ok := w.objectAt[pos]
	if !ok {
		return false
	}
	obj, ok := w.objects[id]
	return ok && obj.BlocksMovement
}

// AddObject registers an interactive object at its own position.
func (w *GameWorld) AddObject(o *InteractiveObject) {
	w.objects[o.ID] = o
	w.objectAt[o.Pos] = o.ID
}

// =============================================================================
// Movement & combat initiation
// =============================================================================

// MoveUnit attempts to move unitID to dest.
//
// If dest is occupied: an enemy occupant means combat is initiated (the
// move itself is consumed by combat initiation, matching world.rs's
// move_unit); a same-team occupant is an error. Otherwise the destination
// must be inside the radius, not blocked by terrain or a blocking object,
// and not occupied by another friendly unit.
//
// On success the unit's position is updated; moves_left is NOT decremented
// here — reachability already bounded the candidate set before this call
// (see reachability.go).
func (w *GameWorld) MoveUnit(unitID uuid.UUID, dest AxialCoord) error {
	mover, ok := w.units[unitID]
	if !ok {
		return ErrUnitNotFound
	}

	if occupant := w.UnitAt(dest); occupant != nil && occupant.ID != unitID {
		if occupant.Team != mover.Team {
			return w.initiateCombat(mover.ID, occupant.ID)
		}
		return fmt.Errorf("%w: destination occupied by a friendly unit", ErrInvalidMove)
	}

	if !w.InRadius(dest) {
		return fmt.Errorf("%w: destination outside world radius", ErrInvalidMove)
	}
	tile := w.TerrainAt(dest)
	if !tile.Passable() {
		return fmt.Errorf("%w: destination terrain blocks movement", ErrInvalidMove)
	}
	if w.ObjectBlockingAt(dest) {
		return fmt.Errorf("%w: destination blocked by an object", ErrInvalidMove)
	}

	mover.Pos = dest
	w.Events.Push(Event{Kind: EventUnitMoved, UnitID: unitID, Pos: dest})
	return nil
}

// initiateCombat is the shared path for both explicit RequestCombat calls
// and the implicit combat triggered by moving into an enemy-occupied tile.
func (w *GameWorld) initiateCombat(attackerID, defenderID uuid.UUID) error {
	return w.RequestCombat(attackerID, defenderID)
}

// RequestCombat stages a PendingCombat for attackerID vs defenderID. If the
// attacker has already attacked this turn, this is a silent no-op (Ok,
// no PendingCombat created) — the driver checks for a PendingCombat before
// executing.
func (w *GameWorld) RequestCombat(attackerID, defenderID uuid.UUID) error {
	attacker, ok := w.units[attackerID]
	if !ok {
		return ErrUnitNotFound
	}
	defender, ok := w.units[defenderID]
	if !ok {
		return ErrUnitNotFound
	}

	if attacker.AttackedThisTurn {
		w.pending = nil
		return nil
	}

	attack, ok := bestAttackInRange(attacker, defender.Pos)
	if !ok {
		attack = attacker.Attacks[0]
	}
	counter, hasCounter := bestAttackInRange(defender, attacker.Pos)

	w.pending = &PendingCombat{
		AttackerID: attackerID,
		DefenderID: defenderID,
		Attacker: Combatant{
			Stats:           statsOf(attacker),
			Health:          attacker.Health,
			AttacksPerRound: attacker.AttacksPerRound,
			Attack:          attack,
		},
		Defender: Combatant{
			Stats:         statsOf(defender),
			Health:        defender.Health,
			CounterAttack: counter,
			HasCounter:    hasCounter,
		},
	}
	return nil
}

// HasPendingCombat reports whether a combat is staged and awaiting
// execution.
func (w *GameWorld) HasPendingCombat() bool { return w.pending != nil }

// ExecutePendingCombat invokes the combat resolver, applies damage, and
// handles kill propagation: a dead defender is removed and the attacker is
// relocated onto its hex; a dead attacker (killed by a counter) is removed.
// Clears PendingCombat on return, successful or not.
func (w *GameWorld) ExecutePendingCombat(rng RNG) (*CombatResult, error) {
	pc := w.pending
	if pc == nil {
		return nil, fmt.Errorf("%w: no pending combat", ErrCombatNotPossible)
	}
	defer func() { w.pending = nil }()

	attacker, ok := w.units[pc.AttackerID]
	if !ok {
		return nil, ErrUnitNotFound
	}
	defender, ok := w.units[pc.DefenderID]
	if !ok {
		return nil, ErrUnitNotFound
	}

	pc.Attacker.Health = attacker.Health
	pc.Defender.Health = defender.Health

	result := ResolveCombat(pc.Attacker, pc.Defender, rng)

	attacker.AttackedThisTurn = true
	defender.Health -= result.DefenderDamageDealt
	attacker.Health -= result.AttackerDamageDealt

	w.Events.Push(Event{Kind: EventUnitAttacked, UnitID: attacker.ID, TargetID: defender.ID})

	if defender.Health <= 0 {
		destPos := defender.Pos
		w.RemoveUnit(defender.ID)
		attacker.Pos = destPos
		w.Events.Push(Event{Kind: EventUnitKilled, UnitID: defender.ID})
	}
	if attacker.Health <= 0 {
		w.RemoveUnit(attacker.ID)
		w.Events.Push(Event{Kind: EventUnitKilled, UnitID: attacker.ID})
	}

	return result, nil
}

// bestAttackInRange returns the first attack in u.Attacks whose range
// covers target, if any.
func bestAttackInRange(u *Unit, target AxialCoord) (Attack, bool) {
	for _, a := range u.Attacks {
		if CubeDistance(u.Pos, target) <= a.Range {
			return a, true
		}
	}
	return Attack{}, false
}

// =============================================================================
// Turn rotation hooks (driver responsibility)
// =============================================================================

// SyncTeamRotation compares the turn system's current team against the
// world's last-known-team; on a change it resets moves_left and
// attacked_this_turn for every unit on the newly-current team. Must be
// called by the driver once per update, before acting on behalf of the
// current team.
func (w *GameWorld) SyncTeamRotation() {
	current := w.Turn.CurrentTeam()
	if w.started && current == w.lastKnownTeam {
		return
	}
	w.started = true
	w.lastKnownTeam = current

	for _, u := range w.units {
		if u.Team == current {
			u.MovesLeft = u.MovementSpeed
			u.AttackedThisTurn = false
		}
	}
}

// VictoryTeam returns the sole remaining team, if exactly one team has any
// units left in the world's unit index. Health is not checked: a unit counts
// until it is removed (combat removes units it kills).
func (w *GameWorld) VictoryTeam() (Team, bool) {
	seen := map[Team]bool{}
	for _, u := range w.units {
		seen[u.Team] = true
	}
	if len(seen) != 1 {
		return 0, false
	}
	for t := range seen {
		return t, true
	}
	return 0, false
}
