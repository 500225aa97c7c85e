package lib

import "strings"

// =============================================================================
// Action grounder
// =============================================================================
// Ground: original_source/Game/src/scenario_instance.rs's Move/Attack
// action-grounding loop, reimplemented over Reachable/ReachableEmptyHexes.

// GroundingWeights tunes the Attack cost formula; exact values are
// configuration, not contract.
type GroundingWeights struct {
	W             float64
	MinActionCost float64
}

// DefaultGroundingWeights holds sane default weights for the cost formula.
var DefaultGroundingWeights = GroundingWeights{W: 0.1, MinActionCost: 0.1}

// attackNameSlug turns "Fire Breath" into "Fire_Breath" for the dispatch
// name.
func attackNameSlug(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// GroundActionsForUnit produces every Move and Attack ActionInstance
// available to unit against the current world, owned by unit.ID.String().
func GroundActionsForUnit(world *GameWorld, unit *Unit, weights GroundingWeights) []ActionInstance {
	if !unit.Alive() {
		return nil
	}

	agentID := unit.ID.String()
	startKey := CoordKeyFromAxial(unit.Pos)
	atKey := unitAtKey(agentID)

	reachable := Reachable(world, unit)
	empty := ReachableEmptyHexes(world, unit)

	var actions []ActionInstance

	for coord, cost := range empty {
		destKey := CoordKeyFromAxial(coord)
		name := "Move-" + agentID + "->" + destKey
		actions = append(actions, NewActionInstance(
			name,
			[]FactPair{{Key: atKey, Value: StrFact(startKey)}},
			[]FactPair{{Key: atKey, Value: StrFact(destKey)}},
			float64(cost),
			agentID,
		))
	}

	for _, enemy := range world.Units() {
		if enemy.Team == unit.Team || !enemy.Alive() {
			continue
		}
		enemyAliveKey := unitAliveKey(enemy.ID.String())

		for _, atk := range unit.Attacks {
			candidates := map[AxialCoord]int{unit.Pos: 0}
			for coord, cost := range reachable {
				if coord == unit.Pos {
					continue
				}
				candidates[coord] = cost
			}

			for from, moveCost := range candidates {
				if CubeDistance(from, enemy.Pos) > atk.Range {
					continue
				}
				if from != unit.Pos {
					if _, ok := reachable[from]; !ok {
						continue
					}
					moveCost = reachable[from]
				} else {
					moveCost = 0
				}

				hitProb := hitChance(enemy.Defense)
				rawDamage := float64(atk.Damage) * (1.0 - float64(enemy.Resistances.Of(atk.DamageType))/100.0)
				if rawDamage < 1 {
					rawDamage = 1
				}
				expectedDamage := hitProb * rawDamage

				cost := float64(moveCost) + 1 - weights.W*expectedDamage
				if cost < weights.MinActionCost {
					cost = weights.MinActionCost
				}

				fromKey := CoordKeyFromAxial(from)
				name := "Attack-" + agentID + "-" + enemy.ID.String() + "-" + attackNameSlug(atk.Name) + "-from-" + fromKey

				actions = append(actions, NewActionInstance(
					name,
					[]FactPair{
						{Key: atKey, Value: StrFact(fromKey)},
						{Key: enemyAliveKey, Value: BoolFact(true)},
					},
					[]FactPair{
						{Key: enemyAliveKey, Value: BoolFact(false)},
					},
					cost,
					agentID,
				))
			}
		}
	}

	return actions
}

// GroundActionsForTeam grounds actions for every living unit on team,
// concatenated into one slice (each action's Agent field disambiguates
// ownership for the team planner's per-agent filter).
func GroundActionsForTeam(world *GameWorld, team Team, weights GroundingWeights) []ActionInstance {
	var all []ActionInstance
	for _, u := range world.Units() {
		if u.Team != team || !u.Alive() {
			continue
		}
		all = append(all, GroundActionsForUnit(world, u, weights)...)
	}
	return all
}
