package cmd

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnforge/tacticalplanner/lib"
)

const twoUnitScenario = `[
  {"HexCoord":{"q":0,"r":0},"SpriteType":"Grass","Unit":["Warrior","Player"]},
  {"HexCoord":{"q":1,"r":0},"SpriteType":"Grass","Unit":["Archer","Enemy"]},
  {"HexCoord":{"q":2,"r":0},"SpriteType":"Grass"}
]`

func writeScenarioFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWorldMaterializesUnitsAndTerrain(t *testing.T) {
	path := writeScenarioFile(t, twoUnitScenario)

	world, err := loadWorld(path)
	require.NoError(t, err)
	assert.Len(t, world.Units(), 2)

	playerUnit := world.UnitAt(lib.AxialCoord{Q: 0, R: 0})
	require.NotNil(t, playerUnit)
	assert.Equal(t, lib.TeamPlayer, playerUnit.Team)
	assert.Equal(t, "Warrior", playerUnit.Class)
	assert.Equal(t, 30, playerUnit.MaxHealth)

	enemyUnit := world.UnitAt(lib.AxialCoord{Q: 1, R: 0})
	require.NotNil(t, enemyUnit)
	assert.Equal(t, lib.TeamEnemy, enemyUnit.Team)
	assert.Equal(t, "Archer", enemyUnit.Class)

	emptyTile := world.TerrainAt(lib.AxialCoord{Q: 2, R: 0})
	assert.Equal(t, "Grass", emptyTile.SpriteType)
}

func TestLoadWorldUnknownUnitTypeFallsBackToDefaultTemplate(t *testing.T) {
	path := writeScenarioFile(t, `[{"HexCoord":{"q":0,"r":0},"SpriteType":"Grass","Unit":["Griffin","Enemy"]}]`)

	world, err := loadWorld(path)
	require.NoError(t, err)
	u := world.UnitAt(lib.AxialCoord{Q: 0, R: 0})
	require.NotNil(t, u)
	assert.Equal(t, defaultTemplate.MaxHealth, u.MaxHealth)
}

func TestSimulateRunsToAVictorOrMaxTurns(t *testing.T) {
	path := writeScenarioFile(t, twoUnitScenario)
	world, err := loadWorld(path)
	require.NoError(t, err)

	world.Turn.SetControlledByAI(lib.TeamPlayer, true)

	savedMaxTurns := maxTurns
	maxTurns = 50
	defer func() { maxTurns = savedMaxTurns }()

	rng := rand.New(rand.NewSource(1))
	err = simulate(world, rng)
	require.NoError(t, err)

	// The simulation must terminate: either one team wins (one unit or
	// fewer teams remain) or it exhausts max-turns without erroring.
	assert.LessOrEqual(t, world.Turn.TurnCount(), maxTurns)
}
