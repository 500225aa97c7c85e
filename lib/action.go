package lib

// =============================================================================
// Action model
// =============================================================================
// Ground: original_source/AI/src/lib.rs's ActionTemplate/ActionInstance.
// An ActionInstance is a pure value; it carries no hidden state.

// ActionInstance is a grounded (parameterized) action: concrete
// preconditions/effects computed against a specific world, plus a name that
// encodes its dispatch kind via a "Move-"/"Attack-" prefix.
type ActionInstance struct {
	Name           string
	Preconditions  []FactPair
	Effects        []FactPair
	Cost           float64
	Agent          string // owning agent id; "" means global (visible to every agent)
	hasAgent       bool
}

// NewActionInstance constructs an action with an explicit owning agent.
func NewActionInstance(name string, preconditions, effects []FactPair, cost float64, agent string) ActionInstance {
	return ActionInstance{
		Name:          name,
		Preconditions: preconditions,
		Effects:       effects,
		Cost:          cost,
		Agent:         agent,
		hasAgent:      agent != "",
	}
}

// IsApplicable returns true iff every precondition is satisfied by state.
func (a ActionInstance) IsApplicable(state *WorldState) bool {
	for _, p := range a.Preconditions {
		if !state.Satisfies(p.Key, p.Value) {
			return false
		}
	}
	return true
}

// BelongsTo reports whether this action is visible to the given agent: it
// either has no owning agent (global) or matches exactly.
func (a ActionInstance) BelongsTo(agent string) bool {
	return !a.hasAgent || a.Agent == agent
}

// Plan is an ordered sequence of indices into the action list it was
// produced from. A plan is only meaningful relative to that specific list.
type Plan []int
