package ai

import (
	"testing"

	"github.com/turnforge/tacticalplanner/lib"
)

// zeroRNG always reports a hit.
type zeroRNG struct{}

func (zeroRNG) Float64() float64 { return 0 }

func TestRunTurnSkipsPlayerControlledTeam(t *testing.T) {
	world := lib.NewGameWorld(0)
	u := lib.NewUnit(lib.TeamPlayer, lib.AxialCoord{0, 0})
	u.MovementSpeed = 3
	world.AddUnit(u)
	world.Turn.StartTurn()
	world.SyncTeamRotation()

	before := u.Pos
	driver := NewDriver(nil)
	driver.RunTurn(world, zeroRNG{})

	if u.Pos != before {
		t.Error("RunTurn should not move a unit on a player-controlled team")
	}
	if world.Turn.CurrentTeam() != lib.TeamPlayer {
		t.Error("RunTurn should not advance turns for a player-controlled team")
	}
}

func TestRunTurnMovesTowardNearestEnemyWhenNoPlanFound(t *testing.T) {
	world := lib.NewGameWorld(0)

	enemyUnit := lib.NewUnit(lib.TeamEnemy, lib.AxialCoord{0, 0})
	enemyUnit.MovementSpeed = 2
	enemyUnit.MovesLeft = 2
	enemyUnit.Health, enemyUnit.MaxHealth = 10, 10
	world.AddUnit(enemyUnit)

	player := lib.NewUnit(lib.TeamPlayer, lib.AxialCoord{5, 0})
	player.Health, player.MaxHealth = 10, 10
	world.AddUnit(player)

	world.Turn.SetControlledByAI(lib.TeamPlayer, true)
	world.Turn.EndTurn() // Player -> Enemy
	world.Turn.StartTurn()
	world.SyncTeamRotation()

	driver := NewDriver(nil)
	driver.RunTurn(world, zeroRNG{})

	if enemyUnit.Pos == (lib.AxialCoord{0, 0}) {
		t.Error("expected the enemy unit to have moved toward the player via the fallback path")
	}
	if lib.CubeDistance(enemyUnit.Pos, player.Pos) >= lib.CubeDistance(lib.AxialCoord{0, 0}, player.Pos) {
		t.Error("fallback move should strictly reduce distance to the nearest enemy")
	}
}

func TestRunTurnEndsTurnAfterDispatch(t *testing.T) {
	world := lib.NewGameWorld(0)
	enemyUnit := lib.NewUnit(lib.TeamEnemy, lib.AxialCoord{0, 0})
	enemyUnit.MovementSpeed = 1
	enemyUnit.MovesLeft = 1
	enemyUnit.Health, enemyUnit.MaxHealth = 10, 10
	world.AddUnit(enemyUnit)

	world.Turn.SetControlledByAI(lib.TeamPlayer, true)
	world.Turn.EndTurn()
	world.Turn.StartTurn()
	world.SyncTeamRotation()

	driver := NewDriver(nil)
	driver.RunTurn(world, zeroRNG{})

	if world.Turn.CurrentTeam() != lib.TeamNeutral {
		t.Errorf("expected rotation to advance past Enemy to Neutral, got %s", world.Turn.CurrentTeam())
	}
}

func TestRunTurnAttacksAdjacentEnemy(t *testing.T) {
	world := lib.NewGameWorld(0)

	attacker := lib.NewUnit(lib.TeamEnemy, lib.AxialCoord{0, 0})
	attacker.MovementSpeed = 1
	attacker.MovesLeft = 1
	attacker.Health, attacker.MaxHealth = 20, 20
	attacker.AttacksPerRound = 1
	attacker.Attacks = []lib.Attack{{Name: "Strike", Damage: 50, Range: 1, AttackTimes: 1}}
	attacker.Defense = 50
	world.AddUnit(attacker)

	defender := lib.NewUnit(lib.TeamPlayer, lib.AxialCoord{1, 0})
	defender.Health, defender.MaxHealth = 5, 5
	defender.Defense = 50
	world.AddUnit(defender)

	world.Turn.SetControlledByAI(lib.TeamPlayer, true)
	world.Turn.EndTurn() // Player -> Enemy
	world.Turn.StartTurn()
	world.SyncTeamRotation()

	driver := NewDriver(nil)
	driver.RunTurn(world, zeroRNG{})

	if _, ok := world.UnitByID(defender.ID); ok {
		t.Error("expected the adjacent low-health defender to have been killed")
	}
}
