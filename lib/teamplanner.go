package lib

// =============================================================================
// Sequential team planner
// =============================================================================
// Ground: original_source/AI/src/lib.rs's plan_for_team. Plans agents in a
// fixed order, applying each chosen plan's effects to a shared snapshot
// before the next agent plans — captures simple cooperation (A clears a
// path for B) but not joint optimization.

// PlanForTeam plans for each agent in agentOrder, in order, against a
// shared evolving world-state snapshot. Returns a map from agent id to its
// plan (an empty plan if no goal could be planned for that agent).
//
// Indices in a returned plan are into that agent's filtered action list
// (actions whose Agent equals the agent, or is unset/global) — not the
// global actions slice. Callers must reconstruct the same filter to
// interpret a plan.
func PlanForTeam(
	start *WorldState,
	actions []ActionInstance,
	goalsPerAgent map[string][]Goal,
	agentOrder []string,
	maxNodesPerAgent int,
) map[string]Plan {
	result := make(map[string]Plan, len(agentOrder))
	current := start.Clone()

	for _, agent := range agentOrder {
		agentActions := filterActionsForAgent(actions, agent)

		goals, ok := goalsPerAgent[agent]
		if !ok {
			result[agent] = Plan{}
			continue
		}

		var chosen Plan
		found := false
		for _, goal := range goals {
			if plan, ok := PlanInstances(current, agentActions, goal, maxNodesPerAgent); ok {
				chosen = plan
				found = true
				break
			}
		}

		if !found {
			result[agent] = Plan{}
			continue
		}

		for _, actionIndex := range chosen {
			current.ApplyEffects(agentActions[actionIndex].Effects)
		}
		result[agent] = chosen
	}

	return result
}

// filterActionsForAgent returns the actions visible to agent, preserving
// order (global actions interleaved as they occur in the source slice).
func filterActionsForAgent(actions []ActionInstance, agent string) []ActionInstance {
	filtered := make([]ActionInstance, 0, len(actions))
	for _, a := range actions {
		if a.BelongsTo(agent) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
