package lib

import "testing"

// twoStepMoveActions builds a tiny linear chain of Move actions taking an
// agent from position 0 to position 2 one hex at a time.
func twoStepMoveActions(agent string) []ActionInstance {
	return []ActionInstance{
		NewActionInstance(
			"Move-"+agent+"->1",
			[]FactPair{{Key: "Unit:" + agent + ":At", Value: IntFact(0)}},
			[]FactPair{{Key: "Unit:" + agent + ":At", Value: IntFact(1)}},
			1.0, agent,
		),
		NewActionInstance(
			"Move-"+agent+"->2",
			[]FactPair{{Key: "Unit:" + agent + ":At", Value: IntFact(1)}},
			[]FactPair{{Key: "Unit:" + agent + ":At", Value: IntFact(2)}},
			1.0, agent,
		),
	}
}

func TestPlanInstancesTwoStepMove(t *testing.T) {
	start := NewWorldState()
	start.Insert("Unit:a:At", IntFact(0))

	actions := twoStepMoveActions("a")
	goal := Goal{Key: "Unit:a:At", Value: IntFact(2)}

	plan, ok := PlanInstances(start, actions, goal, 1000)
	if !ok {
		t.Fatal("expected a plan to be found")
	}
	if len(plan) != 2 {
		t.Fatalf("expected a 2-step plan, got %d steps: %v", len(plan), plan)
	}
	if actions[plan[0]].Name != "Move-a->1" || actions[plan[1]].Name != "Move-a->2" {
		t.Errorf("unexpected plan order: %v", plan)
	}
}

func TestPlanInstancesNodeCapTriggersEmptyPlan(t *testing.T) {
	start := NewWorldState()
	start.Insert("Unit:a:At", IntFact(0))

	actions := twoStepMoveActions("a")
	goal := Goal{Key: "Unit:a:At", Value: IntFact(2)}

	// Scenario S4: an unreasonably small node cap must make the search give
	// up instead of ever finding (or panicking its way to) the goal.
	plan, ok := PlanInstances(start, actions, goal, 0)
	if ok || plan != nil {
		t.Fatalf("expected no plan under a near-zero node cap, got %v", plan)
	}
}

func TestPlanInstancesGoalAlreadySatisfied(t *testing.T) {
	start := NewWorldState()
	start.Insert("Unit:a:At", IntFact(2))

	goal := Goal{Key: "Unit:a:At", Value: IntFact(2)}
	plan, ok := PlanInstances(start, nil, goal, 10)
	if !ok {
		t.Fatal("expected immediate success when goal already holds")
	}
	if len(plan) != 0 {
		t.Errorf("expected an empty plan, got %v", plan)
	}
}

func TestPlanInstancesUnreachableGoal(t *testing.T) {
	start := NewWorldState()
	start.Insert("Unit:a:At", IntFact(0))

	goal := Goal{Key: "Unit:a:At", Value: IntFact(99)}
	plan, ok := PlanInstances(start, twoStepMoveActions("a"), goal, 500)
	if ok || plan != nil {
		t.Fatalf("expected no plan for an unreachable goal, got %v", plan)
	}
}
