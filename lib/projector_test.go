package lib

import "testing"

func TestProjectBasicFacts(t *testing.T) {
	world := NewGameWorld(0)
	u := NewUnit(TeamPlayer, AxialCoord{1, 2})
	u.Health = 5
	world.AddUnit(u)

	ws := ProjectBasic(world)
	id := u.ID.String()

	at, ok := ws.Get("Unit:" + id + ":At")
	if !ok || at.Str != CoordKeyFromAxial(AxialCoord{1, 2}) {
		t.Errorf("At fact = %+v, want hex {1,2}", at)
	}
	alive, ok := ws.Get("Unit:" + id + ":Alive")
	if !ok || !alive.Bool {
		t.Errorf("Alive fact = %+v, want true", alive)
	}
	team, ok := ws.Get("Unit:" + id + ":Team")
	if !ok || team.Str != "Player" {
		t.Errorf("Team fact = %+v, want Player", team)
	}
}

func TestThreatLevelFormula(t *testing.T) {
	u := NewUnit(TeamPlayer, AxialCoord{0, 0})
	u.BaseAttack = 10
	u.AttacksPerRound = 2
	u.MaxHealth = 20
	u.Health = 20
	u.Attacks = []Attack{{Range: 1}}

	// base_attack(10) * attacks_per_round(2) = 20; range is 1 so no 1.5x;
	// health/max_health = 1.0 -> 20.
	if got := threatLevel(u); got != 20 {
		t.Errorf("threatLevel = %d, want 20", got)
	}

	u.Attacks = []Attack{{Range: 3}}
	if got := threatLevel(u); got != 30 {
		t.Errorf("threatLevel with range>1 = %d, want 30 (1.5x)", got)
	}

	u.Health = 10 // half health
	if got := threatLevel(u); got != 15 {
		t.Errorf("threatLevel at half health = %d, want 15", got)
	}
}

func TestProjectDetailedIsFriendlyRelativeToRequestingTeam(t *testing.T) {
	world := NewGameWorld(0)
	player := NewUnit(TeamPlayer, AxialCoord{0, 0})
	player.MaxHealth, player.Health = 10, 10
	world.AddUnit(player)

	enemy := NewUnit(TeamEnemy, AxialCoord{3, 0})
	enemy.MaxHealth, enemy.Health = 10, 10
	world.AddUnit(enemy)

	ws := ProjectDetailed(world, TeamPlayer)

	pf, _ := ws.Get("Unit:" + player.ID.String() + ":IsFriendly")
	if !pf.Bool {
		t.Error("player should be friendly when requesting team is Player")
	}
	ef, _ := ws.Get("Unit:" + enemy.ID.String() + ":IsFriendly")
	if ef.Bool {
		t.Error("enemy should not be friendly when requesting team is Player")
	}

	allyCount, _ := ws.Get("Team:AllyCount")
	if allyCount.Int != 1 {
		t.Errorf("Team:AllyCount = %d, want 1", allyCount.Int)
	}
	enemyCount, _ := ws.Get("Team:EnemyCount")
	if enemyCount.Int != 1 {
		t.Errorf("Team:EnemyCount = %d, want 1", enemyCount.Int)
	}
}

func TestProjectDetailedIsWoundedThreshold(t *testing.T) {
	world := NewGameWorld(0)
	u := NewUnit(TeamPlayer, AxialCoord{0, 0})
	u.MaxHealth = 10
	u.Health = 4 // 40% < 50%
	world.AddUnit(u)

	ws := ProjectDetailed(world, TeamPlayer)
	wounded, _ := ws.Get("Unit:" + u.ID.String() + ":IsWounded")
	if !wounded.Bool {
		t.Error("unit at 40% health should be marked wounded")
	}
}
