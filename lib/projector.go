package lib

import "fmt"

// =============================================================================
// World-state projector
// =============================================================================
// Ground: original_source/AI/src/world_state.rs's project_basic/
// project_detailed pair and lib/game.go's per-unit fact-building loops.

// ProjectBasic emits Unit:<id>:At, Unit:<id>:Alive, Unit:<id>:Team for every
// unit in world, regardless of team.
func ProjectBasic(world *GameWorld) *WorldState {
	ws := NewWorldState()
	for _, u := range world.Units() {
		projectUnitBasic(ws, u)
	}
	return ws
}

func projectUnitBasic(ws *WorldState, u *Unit) {
	id := u.ID.String()
	ws.Insert(unitAtKey(id), StrFact(CoordKeyFromAxial(u.Pos)))
	ws.Insert(unitAliveKey(id), BoolFact(u.Alive()))
	ws.Insert("Unit:"+id+":Team", StrFact(u.Team.String()))
}

// ProjectDetailed emits everything ProjectBasic does, plus per-unit combat
// and positional derivatives, per-occupied-hex terrain facts, and team
// aggregates, all relative to requestingTeam (drives IsFriendly).
func ProjectDetailed(world *GameWorld, requestingTeam Team) *WorldState {
	ws := NewWorldState()
	units := world.Units()

	var allyHealth, allyCount, enemyCount int

	for _, u := range units {
		projectUnitBasic(ws, u)
		id := u.ID.String()

		healthPct := 0
		if u.MaxHealth > 0 {
			healthPct = (u.Health * 100) / u.MaxHealth
		}

		ws.Insert("Unit:"+id+":Health", IntFact(int32(u.Health)))
		ws.Insert("Unit:"+id+":MaxHealth", IntFact(int32(u.MaxHealth)))
		ws.Insert("Unit:"+id+":HealthPercent", IntFact(int32(healthPct)))
		ws.Insert("Unit:"+id+":IsWounded", BoolFact(healthPct < 50))
		ws.Insert("Unit:"+id+":MovesLeft", IntFact(int32(u.MovesLeft)))
		ws.Insert("Unit:"+id+":MovementSpeed", IntFact(int32(u.MovementSpeed)))
		ws.Insert("Unit:"+id+":AttackPower", IntFact(int32(u.BaseAttack)))
		ws.Insert("Unit:"+id+":AttackedThisTurn", BoolFact(u.AttackedThisTurn))
		ws.Insert("Unit:"+id+":AttackRange", IntFact(int32(u.MaxAttackRange())))
		ws.Insert("Unit:"+id+":ThreatLevel", IntFact(int32(threatLevel(u))))
		ws.Insert("Unit:"+id+":Defense", IntFact(int32(u.Defense)))
		ws.Insert("Unit:"+id+":IsFriendly", BoolFact(u.Team == requestingTeam))

		nearbyAllies := 0
		nearestEnemyDist := -1
		enemiesInRange := 0
		attackRange := u.MaxAttackRange()

		for _, other := range units {
			if other.ID == u.ID || !other.Alive() {
				continue
			}
			dist := CubeDistance(u.Pos, other.Pos)
			if other.Team == u.Team && dist <= 2 {
				nearbyAllies++
			}
			if other.Team != u.Team {
				if nearestEnemyDist == -1 || dist < nearestEnemyDist {
					nearestEnemyDist = dist
				}
				if dist <= attackRange {
					enemiesInRange++
				}
			}
		}

		ws.Insert("Unit:"+id+":NearbyAllies", IntFact(int32(nearbyAllies)))
		ws.Insert("Unit:"+id+":IsIsolated", BoolFact(nearbyAllies == 0))
		if nearestEnemyDist == -1 {
			nearestEnemyDist = 0
		}
		ws.Insert("Unit:"+id+":NearestEnemyDist", IntFact(int32(nearestEnemyDist)))
		ws.Insert("Unit:"+id+":EnemiesInRange", IntFact(int32(enemiesInRange)))

		if !u.Alive() {
			continue
		}
		if u.Team == requestingTeam {
			allyCount++
			allyHealth += u.Health
		} else {
			enemyCount++
		}
	}

	seen := map[AxialCoord]bool{}
	for _, u := range units {
		if seen[u.Pos] {
			continue
		}
		seen[u.Pos] = true
		tile := world.TerrainAt(u.Pos)
		key := CoordKeyFromAxial(u.Pos)
		ws.Insert("Terrain:"+key+":Type", StrFact(tile.SpriteType))
		ws.Insert("Terrain:"+key+":MoveCost", IntFact(int32(tile.MoveCost)))
	}

	ws.Insert("Team:AllyCount", IntFact(int32(allyCount)))
	ws.Insert("Team:EnemyCount", IntFact(int32(enemyCount)))
	avgHealth := 0
	if allyCount > 0 {
		avgHealth = allyHealth / allyCount
	}
	ws.Insert("Team:AverageHealth", IntFact(int32(avgHealth)))
	ws.Insert("Team:CurrentTeam", StrFact(requestingTeam.String()))

	return ws
}

// threatLevel computes a unit's threat score:
//
//	t = base_attack * attacks_per_round
//	t = t * 1.5 if max_attack_range > 1
//	t = t * (health / max(1, max_health))
//	ThreatLevel = floor(t)
func threatLevel(u *Unit) int {
	t := float64(u.BaseAttack * u.AttacksPerRound)
	if u.MaxAttackRange() > 1 {
		t *= 1.5
	}
	maxHealth := u.MaxHealth
	if maxHealth < 1 {
		maxHealth = 1
	}
	t *= float64(u.Health) / float64(maxHealth)
	return int(t)
}

// unitAliveKey and unitAtKey build the two fact keys every unit carries,
// shared by the projector and the grounder so both stay in sync.
func unitAliveKey(id string) string { return fmt.Sprintf("Unit:%s:Alive", id) }
func unitAtKey(id string) string    { return fmt.Sprintf("Unit:%s:At", id) }
