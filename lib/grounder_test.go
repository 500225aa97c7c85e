package lib

import (
	"strings"
	"testing"
)

func TestGroundActionsMoveOnlyTouchesAtFact(t *testing.T) {
	world := NewGameWorld(0)
	u := NewUnit(TeamPlayer, AxialCoord{0, 0})
	u.MovesLeft = 3
	world.AddUnit(u)

	actions := GroundActionsForUnit(world, u, DefaultGroundingWeights)
	found := false
	for _, a := range actions {
		if !strings.HasPrefix(a.Name, "Move-") {
			continue
		}
		found = true
		if len(a.Preconditions) != 1 || len(a.Effects) != 1 {
			t.Fatalf("move action %q should have exactly one precondition and one effect, got %d/%d",
				a.Name, len(a.Preconditions), len(a.Effects))
		}
		if a.Preconditions[0].Key != "Unit:"+u.ID.String()+":At" {
			t.Errorf("move action %q precondition key = %q, want the unit's At fact", a.Name, a.Preconditions[0].Key)
		}
		if a.Effects[0].Key != "Unit:"+u.ID.String()+":At" {
			t.Errorf("move action %q effect key = %q, want the unit's At fact", a.Name, a.Effects[0].Key)
		}
	}
	if !found {
		t.Fatal("expected at least one Move action to be grounded")
	}
}

func TestGroundActionsAttackRespectsRange(t *testing.T) {
	world := NewGameWorld(0)
	attacker := NewUnit(TeamPlayer, AxialCoord{0, 0})
	attacker.MovesLeft = 2
	attacker.Attacks = []Attack{{Name: "Strike", Damage: 5, Range: 1, AttackTimes: 1}}
	world.AddUnit(attacker)

	enemy := NewUnit(TeamEnemy, AxialCoord{5, 0}) // far outside range even with moves
	enemy.Health = 10
	world.AddUnit(enemy)

	actions := GroundActionsForUnit(world, attacker, DefaultGroundingWeights)
	for _, a := range actions {
		if strings.HasPrefix(a.Name, "Attack-") {
			t.Errorf("no attack action should be grounded against an out-of-range enemy, got %q", a.Name)
		}
	}
}

func TestGroundActionsAttackFromPositionIsReachable(t *testing.T) {
	world := NewGameWorld(0)
	attacker := NewUnit(TeamPlayer, AxialCoord{0, 0})
	attacker.MovesLeft = 3
	attacker.Attacks = []Attack{{Name: "Strike", Damage: 5, Range: 1, AttackTimes: 1}}
	world.AddUnit(attacker)

	enemy := NewUnit(TeamEnemy, AxialCoord{2, 0})
	enemy.Health = 10
	world.AddUnit(enemy)

	actions := GroundActionsForUnit(world, attacker, DefaultGroundingWeights)
	var attackActions []ActionInstance
	for _, a := range actions {
		if strings.HasPrefix(a.Name, "Attack-") {
			attackActions = append(attackActions, a)
		}
	}
	if len(attackActions) == 0 {
		t.Fatal("expected at least one grounded attack action against an adjacent-reachable enemy")
	}

	reachable := Reachable(world, attacker)
	for _, a := range attackActions {
		// The from-position precondition's fact must correspond to a hex
		// the attacker can reach (or its start) and that is within
		// attacker.Attacks[0].Range of the enemy.
		fromKeyFact := a.Preconditions[0].Value.Str
		fromCoord, err := ParseCoordKey(fromKeyFact)
		if err != nil {
			t.Fatalf("could not parse from-position %q: %v", fromKeyFact, err)
		}
		if _, ok := reachable[fromCoord]; !ok {
			t.Errorf("attack action %q stages from %v, which is not reachable", a.Name, fromCoord)
		}
		if CubeDistance(fromCoord, enemy.Pos) > attacker.Attacks[0].Range {
			t.Errorf("attack action %q stages from %v, out of range of enemy at %v", a.Name, fromCoord, enemy.Pos)
		}
	}
}

func TestGroundActionsNoAttackAgainstDeadEnemy(t *testing.T) {
	world := NewGameWorld(0)
	attacker := NewUnit(TeamPlayer, AxialCoord{0, 0})
	attacker.MovesLeft = 3
	attacker.Attacks = []Attack{{Name: "Strike", Damage: 5, Range: 1, AttackTimes: 1}}
	world.AddUnit(attacker)

	enemy := NewUnit(TeamEnemy, AxialCoord{1, 0})
	enemy.Health = 0 // dead
	world.AddUnit(enemy)

	actions := GroundActionsForUnit(world, attacker, DefaultGroundingWeights)
	for _, a := range actions {
		if strings.HasPrefix(a.Name, "Attack-") {
			t.Errorf("no attack should be grounded against a dead enemy, got %q", a.Name)
		}
	}
}
