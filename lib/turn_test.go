package lib

import "testing"

func TestNewTurnSystemDefaults(t *testing.T) {
	ts := NewTurnSystem()
	if ts.CurrentTeam() != TeamPlayer {
		t.Errorf("expected rotation to start on Player, got %s", ts.CurrentTeam())
	}
	if ts.IsAIControlled() {
		t.Error("Player should not be AI-controlled by default")
	}
	if ts.Phase() != PhaseNotStarted {
		t.Errorf("expected initial phase NotStarted, got %s", ts.Phase())
	}
}

func TestEndTurnRotatesThroughAllTeams(t *testing.T) {
	ts := NewTurnSystem()
	order := []Team{TeamPlayer, TeamEnemy, TeamNeutral}
	for i, want := range order {
		if got := ts.CurrentTeam(); got != want {
			t.Fatalf("step %d: current team = %s, want %s", i, got, want)
		}
		ts.EndTurn()
	}
	if ts.CurrentTeam() != TeamPlayer {
		t.Errorf("rotation should wrap back to Player, got %s", ts.CurrentTeam())
	}
}

func TestEndTurnReturnsToActivePhase(t *testing.T) {
	ts := NewTurnSystem()
	ts.StartTurn()
	ts.EndTurn()
	if ts.Phase() != PhaseActive {
		t.Errorf("expected EndTurn to leave the system in Active phase, got %s", ts.Phase())
	}
}

func TestEndTurnClearsActedSet(t *testing.T) {
	ts := NewTurnSystem()
	ts.StartTurn()
	id := [16]byte{4, 5, 6}
	ts.MarkActed(id)
	ts.EndTurn()
	if ts.HasActed(id) {
		t.Error("EndTurn should clear the acted-this-turn set")
	}
}

func TestEndTurnIncrementsTurnCountOnWrap(t *testing.T) {
	ts := NewTurnSystem()
	if ts.TurnCount() != 0 {
		t.Fatalf("expected turn count 0 at start, got %d", ts.TurnCount())
	}
	ts.EndTurn() // Player -> Enemy
	if ts.TurnCount() != 0 {
		t.Errorf("turn count should not increment mid-rotation, got %d", ts.TurnCount())
	}
	ts.EndTurn() // Enemy -> Neutral
	ts.EndTurn() // Neutral -> Player (wraps)
	if ts.TurnCount() != 1 {
		t.Errorf("turn count should increment to 1 after a full rotation, got %d", ts.TurnCount())
	}
}

func TestMarkActedAndHasActed(t *testing.T) {
	ts := NewTurnSystem()
	ts.StartTurn()
	id := [16]byte{1, 2, 3}
	if ts.HasActed(id) {
		t.Error("unit should not have acted at turn start")
	}
	ts.MarkActed(id)
	if !ts.HasActed(id) {
		t.Error("unit should be marked as acted")
	}
}

func TestStartTurnClearsActedSet(t *testing.T) {
	ts := NewTurnSystem()
	ts.StartTurn()
	id := [16]byte{9, 9}
	ts.MarkActed(id)
	ts.StartTurn()
	if ts.HasActed(id) {
		t.Error("StartTurn should clear the acted-this-turn set")
	}
}

func TestSetControlledByAI(t *testing.T) {
	ts := NewTurnSystem()
	ts.SetControlledByAI(TeamPlayer, true)
	if !ts.IsAIControlled() {
		t.Error("Player should be AI-controlled after SetControlledByAI(true)")
	}
}
