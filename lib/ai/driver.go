// Package ai drives AI-controlled teams: it projects world state, grounds
// actions, assigns goals, calls the planner, and dispatches the resulting
// plan back into the game world.
package ai

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/turnforge/tacticalplanner/lib"
)

// =============================================================================
// AI driver
// =============================================================================
// Ground: _examples/turnforge-weewar/lib/ai/basic_advisor.go's advisor
// struct shape (a single entry point wrapping the game's rules engine),
// rewritten around the planner/grounder/projector rather than a
// difficulty-tiered move-suggestion strategy table — this domain has one
// planning strategy, not four.

// Driver runs one AI team's turn against a GameWorld.
type Driver struct {
	log     *slog.Logger
	weights lib.GroundingWeights

	// NodeCap bounds each agent's A* search.
	NodeCap int

	// LongTermGoals optionally overrides the default closest-enemy goal for
	// a unit, keyed by unit id string.
	LongTermGoals map[string]lib.LongTermGoal
}

// NewDriver returns a driver with a sane default node cap (5,000) and
// grounding weights.
func NewDriver(log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		log:           log,
		weights:       lib.DefaultGroundingWeights,
		NodeCap:       5000,
		LongTermGoals: make(map[string]lib.LongTermGoal),
	}
}

// SetLongTermGoal assigns an overriding long-term goal to unitID.
func (d *Driver) SetLongTermGoal(unitID uuid.UUID, goal lib.LongTermGoal) {
	d.LongTermGoals[unitID.String()] = goal
}

// RunTurn executes one full AI turn for the turn system's current team. If
// that team is player-controlled, it returns immediately without touching
// the world.
func (d *Driver) RunTurn(world *lib.GameWorld, rng lib.RNG) {
	if !world.Turn.IsAIControlled() {
		return
	}
	team := world.Turn.CurrentTeam()

	ws := lib.ProjectDetailed(world, team)
	actions := lib.GroundActionsForTeam(world, team, d.weights)

	var agentOrder []string
	teamUnits := make(map[string]*lib.Unit)
	for _, u := range world.Units() {
		if u.Team != team || !u.Alive() {
			continue
		}
		id := u.ID.String()
		agentOrder = append(agentOrder, id)
		teamUnits[id] = u
	}
	// Deterministic dispatch order.
	sort.Strings(agentOrder)

	goals := d.buildGoals(world, ws, team, agentOrder, teamUnits)

	plans := lib.PlanForTeam(ws, actions, goals, agentOrder, d.NodeCap)

	for _, agentID := range agentOrder {
		unit := teamUnits[agentID]
		agentActions := filterActionsForAgent(actions, agentID)
		plan := plans[agentID]

		if len(plan) == 0 {
			d.fallbackMoveTowardNearestEnemy(world, unit, agentActions, rng)
			continue
		}

		for _, idx := range plan {
			d.dispatch(world, agentActions[idx], rng)
		}
	}

	world.Turn.EndTurn()
}

// buildGoals assigns each agent's goal list: a long-term-goal decomposition
// if one is set and still unachieved, else the default closest-living-enemy
// Alive=false goal.
func (d *Driver) buildGoals(
	world *lib.GameWorld,
	ws *lib.WorldState,
	team lib.Team,
	agentOrder []string,
	teamUnits map[string]*lib.Unit,
) map[string][]lib.Goal {
	goals := make(map[string][]lib.Goal, len(agentOrder))

	for _, agentID := range agentOrder {
		unit := teamUnits[agentID]

		if ltg, ok := d.LongTermGoals[agentID]; ok && !ltg.IsAchieved(ws, agentID, world) {
			if g := ltg.Decompose(ws, agentID, world); g != nil {
				goals[agentID] = []lib.Goal{*g}
				continue
			}
		}

		if enemy, ok := closestEnemy(world, unit); ok {
			goals[agentID] = []lib.Goal{{
				Key:   "Unit:" + enemy.ID.String() + ":Alive",
				Value: lib.BoolFact(false),
			}}
		}
	}

	return goals
}

// closestEnemy returns the living enemy unit nearest to unit.
func closestEnemy(world *lib.GameWorld, unit *lib.Unit) (*lib.Unit, bool) {
	var best *lib.Unit
	bestDist := -1
	for _, other := range world.Units() {
		if other.Team == unit.Team || !other.Alive() {
			continue
		}
		dist := lib.CubeDistance(unit.Pos, other.Pos)
		if bestDist == -1 || dist < bestDist {
			best = other
			bestDist = dist
		}
	}
	return best, best != nil
}

// dispatch executes one grounded action by its name-prefix contract.
func (d *Driver) dispatch(world *lib.GameWorld, action lib.ActionInstance, rng lib.RNG) {
	switch {
	case strings.HasPrefix(action.Name, "Move-"):
		d.dispatchMove(world, action)
	case strings.HasPrefix(action.Name, "Attack-"):
		d.dispatchAttack(world, action, rng)
	default:
		d.log.Warn("unrecognized action name prefix", "name", action.Name)
	}
}

func (d *Driver) dispatchMove(world *lib.GameWorld, action lib.ActionInstance) {
	for _, e := range action.Effects {
		if !strings.HasSuffix(e.Key, ":At") || e.Value.Kind != lib.FactStr {
			continue
		}
		dest, err := lib.ParseCoordKey(e.Value.Str)
		if err != nil {
			d.log.Warn("malformed move destination", "action", action.Name, "err", err)
			return
		}
		unitID, err := agentUUID(action.Agent)
		if err != nil {
			d.log.Warn("malformed agent id", "action", action.Name, "err", err)
			return
		}
		if err := world.MoveUnit(unitID, dest); err != nil {
			d.log.Info("move failed", "action", action.Name, "err", err)
		}
		return
	}
}

func (d *Driver) dispatchAttack(world *lib.GameWorld, action lib.ActionInstance, rng lib.RNG) {
	attackerID, err := agentUUID(action.Agent)
	if err != nil {
		d.log.Warn("malformed agent id", "action", action.Name, "err", err)
		return
	}

	for _, e := range action.Effects {
		if !strings.HasSuffix(e.Key, ":Alive") {
			continue
		}
		targetIDStr := strings.TrimSuffix(strings.TrimPrefix(e.Key, "Unit:"), ":Alive")
		targetID, err := uuid.Parse(targetIDStr)
		if err != nil {
			d.log.Warn("malformed attack target id", "action", action.Name, "err", err)
			return
		}

		if err := world.RequestCombat(attackerID, targetID); err != nil {
			d.log.Info("combat request failed", "action", action.Name, "err", err)
			return
		}
		if world.HasPendingCombat() {
			if _, err := world.ExecutePendingCombat(rng); err != nil {
				d.log.Info("combat execution failed", "action", action.Name, "err", err)
			}
		}
		return
	}
}

// fallbackMoveTowardNearestEnemy covers the case where an agent's plan is
// empty but it has actions available: pick the Move action whose
// destination minimizes distance to the nearest enemy.
func (d *Driver) fallbackMoveTowardNearestEnemy(world *lib.GameWorld, unit *lib.Unit, actions []lib.ActionInstance, rng lib.RNG) {
	enemy, ok := closestEnemy(world, unit)
	if !ok {
		return
	}

	var best *lib.ActionInstance
	bestDist := -1
	for i := range actions {
		a := &actions[i]
		if !strings.HasPrefix(a.Name, "Move-") {
			continue
		}
		for _, e := range a.Effects {
			if e.Value.Kind != lib.FactStr {
				continue
			}
			dest, err := lib.ParseCoordKey(e.Value.Str)
			if err != nil {
				continue
			}
			dist := lib.CubeDistance(dest, enemy.Pos)
			if bestDist == -1 || dist < bestDist {
				best = a
				bestDist = dist
			}
		}
	}

	if best != nil {
		d.dispatchMove(world, *best)
	}
}

func agentUUID(agent string) (uuid.UUID, error) {
	return uuid.Parse(agent)
}

func filterActionsForAgent(actions []lib.ActionInstance, agent string) []lib.ActionInstance {
	filtered := make([]lib.ActionInstance, 0, len(actions))
	for _, a := range actions {
		if a.BelongsTo(agent) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
