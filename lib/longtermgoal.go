package lib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Long-term goal decomposition
// =============================================================================
// Ground: original_source/AI/src/long_term_goals.rs's LongTermGoal enum,
// decompose/is_achieved methods, and canonical wire-string form.

// LongTermGoalKind discriminates the LongTermGoal tagged union.
type LongTermGoalKind int

const (
	GoalReachPosition LongTermGoalKind = iota
	GoalEliminateTarget
	GoalStayInFormation
	GoalControlZone
	GoalProtectAlly
	GoalKillAllEnemies
	GoalSiegeCastle
	GoalCustom
)

// LongTermGoal is a multi-turn objective assigned to one agent. Only the
// fields relevant to Kind are populated; the zero value of the rest is
// ignored.
type LongTermGoal struct {
	Kind LongTermGoalKind

	Target          AxialCoord // ReachPosition, ControlZone
	Reason          string     // ReachPosition
	TargetID        string     // EliminateTarget, ProtectAlly (unit id string)
	MaxDistance     int        // StayInFormation, ProtectAlly
	Radius          int        // ControlZone
	SearchRadius    int        // KillAllEnemies, when HasSearchRadius is set
	HasSearchRadius bool       // KillAllEnemies: whether SearchRadius was given
	CastleID        string     // SiegeCastle
	Description     string     // Custom
}

// String renders the canonical one-line wire form.
func (g LongTermGoal) String() string {
	switch g.Kind {
	case GoalReachPosition:
		return fmt.Sprintf("ReachPosition:%d,%d:%s", g.Target.Q, g.Target.R, g.Reason)
	case GoalEliminateTarget:
		return fmt.Sprintf("EliminateTarget:%s", g.TargetID)
	case GoalStayInFormation:
		return fmt.Sprintf("StayInFormation:%d", g.MaxDistance)
	case GoalControlZone:
		return fmt.Sprintf("ControlZone:%d,%d:%d", g.Target.Q, g.Target.R, g.Radius)
	case GoalProtectAlly:
		return fmt.Sprintf("ProtectAlly:%s:%d", g.TargetID, g.MaxDistance)
	case GoalKillAllEnemies:
		if g.HasSearchRadius {
			return fmt.Sprintf("KillAllEnemies:%d", g.SearchRadius)
		}
		return "KillAllEnemies"
	case GoalSiegeCastle:
		return fmt.Sprintf("SiegeCastle:%s", g.CastleID)
	case GoalCustom:
		return fmt.Sprintf("Custom:%s", g.Description)
	default:
		return ""
	}
}

// ParseLongTermGoal parses the canonical wire form back into a LongTermGoal.
func ParseLongTermGoal(s string) (LongTermGoal, error) {
	parts := strings.SplitN(s, ":", 2)
	kind := parts[0]
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}

	switch kind {
	case "ReachPosition":
		fields := strings.SplitN(rest, ":", 2)
		coord, err := ParseCoordKey(fields[0])
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("ReachPosition: %w", err)
		}
		reason := ""
		if len(fields) == 2 {
			reason = fields[1]
		}
		return LongTermGoal{Kind: GoalReachPosition, Target: coord, Reason: reason}, nil

	case "EliminateTarget":
		return LongTermGoal{Kind: GoalEliminateTarget, TargetID: rest}, nil

	case "StayInFormation":
		d, err := strconv.Atoi(rest)
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("StayInFormation: %w", err)
		}
		return LongTermGoal{Kind: GoalStayInFormation, MaxDistance: d}, nil

	case "ControlZone":
		fields := strings.SplitN(rest, ":", 2)
		if len(fields) != 2 {
			return LongTermGoal{}, fmt.Errorf("ControlZone: malformed %q", s)
		}
		coord, err := ParseCoordKey(fields[0])
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("ControlZone: %w", err)
		}
		radius, err := strconv.Atoi(fields[1])
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("ControlZone: %w", err)
		}
		return LongTermGoal{Kind: GoalControlZone, Target: coord, Radius: radius}, nil

	case "ProtectAlly":
		fields := strings.SplitN(rest, ":", 2)
		if len(fields) != 2 {
			return LongTermGoal{}, fmt.Errorf("ProtectAlly: malformed %q", s)
		}
		d, err := strconv.Atoi(fields[1])
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("ProtectAlly: %w", err)
		}
		return LongTermGoal{Kind: GoalProtectAlly, TargetID: fields[0], MaxDistance: d}, nil

	case "KillAllEnemies":
		if rest == "" {
			return LongTermGoal{Kind: GoalKillAllEnemies}, nil
		}
		radius, err := strconv.Atoi(rest)
		if err != nil {
			return LongTermGoal{}, fmt.Errorf("KillAllEnemies: %w", err)
		}
		return LongTermGoal{Kind: GoalKillAllEnemies, SearchRadius: radius, HasSearchRadius: true}, nil

	case "SiegeCastle":
		return LongTermGoal{Kind: GoalSiegeCastle, CastleID: rest}, nil

	case "Custom":
		return LongTermGoal{Kind: GoalCustom, Description: rest}, nil

	default:
		return LongTermGoal{}, fmt.Errorf("unknown long-term goal kind %q", kind)
	}
}

// clampDelta clamps a coordinate delta to +/-3, the intermediate-position
// rule for distant ReachPosition targets.
func clampDelta(d int) int {
	if d > 3 {
		return 3
	}
	if d < -3 {
		return -3
	}
	return d
}

// intermediatePosition computes the next waypoint toward target when it's
// further than 3 hexes away: clamp each axial delta to +/-3.
func intermediatePosition(from, target AxialCoord) AxialCoord {
	return AxialCoord{
		Q: from.Q + clampDelta(target.Q-from.Q),
		R: from.R + clampDelta(target.R-from.R),
	}
}

// Decompose maps a LongTermGoal to at most one short-term Goal for this
// turn, given the current detailed world state and the planning agent's id.
// ControlZone, KillAllEnemies, SiegeCastle, and Custom all decompose to nil
// — ControlZone/KillAllEnemies have no single-fact short-term encoding
// under this world state's fact vocabulary, and Custom's embedded goal is
// out-of-band.
func (g LongTermGoal) Decompose(ws *WorldState, agentID string, world *GameWorld) *Goal {
	unit, ok := unitByIDString(world, agentID)
	if !ok {
		return nil
	}

	switch g.Kind {
	case GoalReachPosition:
		pos := g.Target
		if CubeDistance(unit.Pos, g.Target) > 3 {
			pos = intermediatePosition(unit.Pos, g.Target)
		}
		return &Goal{Key: "Unit:" + agentID + ":At", Value: StrFact(CoordKeyFromAxial(pos))}

	case GoalEliminateTarget:
		target, ok := unitByIDString(world, g.TargetID)
		if !ok {
			return nil
		}
		attackRange := unit.MaxAttackRange()
		if CubeDistance(unit.Pos, target.Pos) <= attackRange {
			return &Goal{Key: "Unit:" + g.TargetID + ":Alive", Value: BoolFact(false)}
		}
		return &Goal{Key: "Unit:" + agentID + ":At", Value: StrFact(CoordKeyFromAxial(target.Pos))}

	case GoalProtectAlly:
		ally, ok := unitByIDString(world, g.TargetID)
		if !ok {
			return nil
		}
		if CubeDistance(unit.Pos, ally.Pos) > g.MaxDistance {
			return &Goal{Key: "Unit:" + agentID + ":At", Value: StrFact(CoordKeyFromAxial(ally.Pos))}
		}
		return nil

	default:
		return nil
	}
}

// IsAchieved reports whether g is already satisfied by the current state,
// symmetric with Decompose's semantics.
func (g LongTermGoal) IsAchieved(ws *WorldState, agentID string, world *GameWorld) bool {
	unit, ok := unitByIDString(world, agentID)
	if !ok {
		return false
	}

	switch g.Kind {
	case GoalReachPosition:
		return unit.Pos == g.Target

	case GoalEliminateTarget:
		target, ok := unitByIDString(world, g.TargetID)
		return !ok || !target.Alive()

	case GoalStayInFormation:
		return false // formation-keeping has no terminal condition; always "ongoing"

	case GoalProtectAlly:
		ally, ok := unitByIDString(world, g.TargetID)
		if !ok {
			return true
		}
		return CubeDistance(unit.Pos, ally.Pos) <= g.MaxDistance

	case GoalKillAllEnemies:
		for _, u := range world.Units() {
			if u.Team != unit.Team && u.Alive() {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func unitByIDString(world *GameWorld, id string) (*Unit, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	return world.UnitByID(parsed)
}
