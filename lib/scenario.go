package lib

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Scenario map loading
// =============================================================================
// Ground: lib/world_migration.go's map-keyed-by-CoordKey storage idiom and
// legacy-format tolerance pattern (old vs. new WorldData shapes
// reconciled in one pass), adapted to a scenario file that's either a bare
// array of cells, or an object with Scenario/Teams/Map keys.

// ScenarioCell is one hex's worth of map data as found in either scenario
// format.
type ScenarioCell struct {
	HexCoord   AxialCoord
	SpriteType string
	Unit       *ScenarioUnit
	Item       *ScenarioItem
	Structure  *ScenarioStructure
}

// ScenarioUnit is the resolved (post-parse) unit placement for a cell.
type ScenarioUnit struct {
	UnitType string
	Team     Team
	Name     string
}

// ScenarioItem is a free-form item placement; Definition takes precedence
// over Name/Description when both are present.
type ScenarioItem struct {
	Definition  string
	Name        string
	Description string
}

// ScenarioStructure is a neutral-by-default world object.
type ScenarioStructure struct {
	StructureType string
	Team          Team
}

// Scenario is a fully parsed map: its cells plus scenario/team metadata.
type Scenario struct {
	Name  string
	Teams []string
	Cells []ScenarioCell
}

// rawCell mirrors the JSON shape of one cell before the Unit/Item/Structure
// unions are resolved. HexCoord/SpriteType are shared by both the legacy
// array format and the object format.
type rawCell struct {
	HexCoord struct {
		Q int `json:"q"`
		R int `json:"r"`
	} `json:"HexCoord"`
	SpriteType string          `json:"SpriteType"`
	Unit       json.RawMessage `json:"Unit"`
	Item       json.RawMessage `json:"Item"`
	Structure  json.RawMessage `json:"Structure"`
}

// rawScenarioDoc mirrors the object format: {Scenario, Teams, Map}.
type rawScenarioDoc struct {
	Scenario string    `json:"Scenario"`
	Teams    []string  `json:"Teams"`
	Map      []rawCell `json:"Map"`
}

// ParseScenario parses either the legacy bare-array format or the object
// format with Scenario/Teams/Map keys.
func ParseScenario(data []byte) (*Scenario, error) {
	var asArray []rawCell
	if err := json.Unmarshal(data, &asArray); err == nil {
		return buildScenario("", nil, asArray)
	}

	var doc rawScenarioDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenario: not a legacy array or a {Scenario,Teams,Map} object: %w", err)
	}
	return buildScenario(doc.Scenario, doc.Teams, doc.Map)
}

func buildScenario(name string, teams []string, rawCells []rawCell) (*Scenario, error) {
	s := &Scenario{Name: name, Teams: teams, Cells: make([]ScenarioCell, 0, len(rawCells))}

	for _, rc := range rawCells {
		cell := ScenarioCell{
			HexCoord:   AxialCoord{Q: rc.HexCoord.Q, R: rc.HexCoord.R},
			SpriteType: rc.SpriteType,
		}

		if len(rc.Unit) > 0 && string(rc.Unit) != "null" {
			u, err := parseScenarioUnit(rc.Unit)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell.HexCoord, err)
			}
			cell.Unit = u
		}
		if len(rc.Item) > 0 && string(rc.Item) != "null" {
			it, err := parseScenarioItem(rc.Item)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell.HexCoord, err)
			}
			cell.Item = it
		}
		if len(rc.Structure) > 0 && string(rc.Structure) != "null" {
			st, err := parseScenarioStructure(rc.Structure)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell.HexCoord, err)
			}
			cell.Structure = st
		}

		s.Cells = append(s.Cells, cell)
	}

	return s, nil
}

// parseScenarioUnit handles both the new ["UnitType", "Team"] array form and
// the legacy {"type"/"unit_type", "name", "team"} object form. Unknown team
// strings fall back to Player.
func parseScenarioUnit(raw json.RawMessage) (*ScenarioUnit, error) {
	var asPair []string
	if err := json.Unmarshal(raw, &asPair); err == nil {
		if len(asPair) < 1 {
			return nil, fmt.Errorf("unit: empty array form")
		}
		team := TeamPlayer
		if len(asPair) >= 2 {
			team = ParseTeam(asPair[1])
		}
		return &ScenarioUnit{UnitType: asPair[0], Team: team}, nil
	}

	var legacy struct {
		Type     string `json:"type"`
		UnitType string `json:"unit_type"`
		Name     string `json:"name"`
		Team     string `json:"team"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("unit: unrecognized form: %w", err)
	}
	unitType := legacy.UnitType
	if unitType == "" {
		unitType = legacy.Type
	}
	return &ScenarioUnit{UnitType: unitType, Name: legacy.Name, Team: ParseTeam(legacy.Team)}, nil
}

func parseScenarioItem(raw json.RawMessage) (*ScenarioItem, error) {
	var it struct {
		Definition  string `json:"definition"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, fmt.Errorf("item: %w", err)
	}
	return &ScenarioItem{Definition: it.Definition, Name: it.Name, Description: it.Description}, nil
}

// parseScenarioStructure handles a bare string ("Castle"), an
// [type, team] array, or an object form; team defaults to Neutral when
// absent.
func parseScenarioStructure(raw json.RawMessage) (*ScenarioStructure, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return &ScenarioStructure{StructureType: asString, Team: TeamNeutral}, nil
	}

	var asPair []string
	if err := json.Unmarshal(raw, &asPair); err == nil {
		if len(asPair) < 1 {
			return nil, fmt.Errorf("structure: empty array form")
		}
		team := TeamNeutral
		if len(asPair) >= 2 {
			team = parseStructureTeam(asPair[1])
		}
		return &ScenarioStructure{StructureType: asPair[0], Team: team}, nil
	}

	var obj struct {
		Type string `json:"type"`
		Team string `json:"team"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("structure: unrecognized form: %w", err)
	}
	return &ScenarioStructure{StructureType: obj.Type, Team: parseStructureTeam(obj.Team)}, nil
}

// parseStructureTeam defaults to Neutral (not Player, unlike ParseTeam)
// when the team string is unrecognized or absent — structures default to
// neutral ownership.
func parseStructureTeam(s string) Team {
	switch s {
	case "Player":
		return TeamPlayer
	case "Enemy":
		return TeamEnemy
	default:
		return TeamNeutral
	}
}
