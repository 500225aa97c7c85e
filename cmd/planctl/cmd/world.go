package cmd

import (
	"fmt"
	"os"

	"github.com/turnforge/tacticalplanner/lib"
)

// loadWorld reads and parses path, then materializes every cell's terrain
// and unit into a fresh GameWorld.
func loadWorld(path string) (*lib.GameWorld, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	scenario, err := lib.ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	world := lib.NewGameWorld(0)

	for _, cell := range scenario.Cells {
		world.SetTerrain(lib.TerrainTile{
			Pos:        cell.HexCoord,
			SpriteType: cell.SpriteType,
			MoveCost:   terrainMoveCost(cell.SpriteType),
		})
		if cell.Unit != nil {
			world.AddUnit(materializeUnit(cell.Unit, cell.HexCoord))
		}
	}

	return world, nil
}

// terrainMoveCost is the CLI's stand-in terrain table over the sprite names
// a scenario file can use (grassland and unknown sprites=1, forest/hills
// costlier, mountain and wall impassable).
func terrainMoveCost(sprite string) int {
	switch sprite {
	case "Mountain":
		return lib.MoveCostImpassable
	case "Wall":
		return lib.MoveCostImpassable
	case "Forest", "Forest2", "Hills", "HauntedWoods":
		return 2
	case "Swamp":
		return 3
	default:
		return 1
	}
}
