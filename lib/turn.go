package lib

import "time"

// =============================================================================
// Turn state machine
// =============================================================================
// Ground: original_source/Game/src/turn_system.rs's TurnSystem, ported
// near-verbatim: team rotation order, an AI turn delay so AI moves are
// visible rather than instantaneous, and a distinct per-turn
// units-acted-this-turn set (narrower than the driver's moves_left/attacked
// reset, which fires on team-rotation boundaries — see GameWorld.SyncTeamRotation).

// TurnPhase is where in a single team's turn the system currently is.
type TurnPhase int

const (
	PhaseNotStarted TurnPhase = iota
	PhaseActive
	PhaseEnding
)

func (p TurnPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseActive:
		return "Active"
	case PhaseEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// DefaultAITurnDelay is the initial TurnSystem.AITurnDelay. The turn system
// only stores it; nothing in this package or the AI driver waits on it.
const DefaultAITurnDelay = 3 * time.Second

// TurnSystem tracks whose turn it is, what phase that turn is in, and which
// units have already acted this turn.
type TurnSystem struct {
	teams            []Team
	playerControlled  map[Team]bool
	currentTeamIndex int
	phase            TurnPhase
	turnTimer        time.Duration
	AITurnDelay      time.Duration
	turnCount        int

	unitsActedThisTurn map[[16]byte]bool
}

// NewTurnSystem returns a turn system with the default Player -> Enemy ->
// Neutral rotation, Player controlled by a human and the rest by AI.
func NewTurnSystem() *TurnSystem {
	return &TurnSystem{
		teams:              []Team{TeamPlayer, TeamEnemy, TeamNeutral},
		playerControlled:   map[Team]bool{TeamPlayer: true},
		currentTeamIndex:   0,
		phase:              PhaseNotStarted,
		AITurnDelay:        DefaultAITurnDelay,
		unitsActedThisTurn: make(map[[16]byte]bool),
	}
}

// WithTeams overrides the rotation order (also resets the current index to
// 0); used by scenario loading when a match doesn't use all three teams.
func (ts *TurnSystem) WithTeams(teams []Team) {
	ts.teams = teams
	ts.currentTeamIndex = 0
}

// SetControlledByAI marks team as AI-controlled (the default for every team
// but Player).
func (ts *TurnSystem) SetControlledByAI(team Team, ai bool) {
	ts.playerControlled[team] = !ai
}

// CurrentTeam returns the team whose turn it currently is.
func (ts *TurnSystem) CurrentTeam() Team {
	if len(ts.teams) == 0 {
		return TeamPlayer
	}
	return ts.teams[ts.currentTeamIndex]
}

// IsAIControlled reports whether the current team is driven by the AI
// rather than direct player input.
func (ts *TurnSystem) IsAIControlled() bool {
	return !ts.playerControlled[ts.CurrentTeam()]
}

// Phase returns the current turn phase.
func (ts *TurnSystem) Phase() TurnPhase { return ts.phase }

// TurnCount returns the number of completed full rotations.
func (ts *TurnSystem) TurnCount() int { return ts.turnCount }

// StartTurn transitions NotStarted/Ending -> Active for the current team,
// clearing the acted-this-turn set.
func (ts *TurnSystem) StartTurn() {
	ts.phase = PhaseActive
	ts.turnTimer = 0
	ts.unitsActedThisTurn = make(map[[16]byte]bool)
}

// MarkActed records that unit has acted this turn. The AI driver does not
// consult this set when grounding or planning.
func (ts *TurnSystem) MarkActed(unitID [16]byte) {
	ts.unitsActedThisTurn[unitID] = true
}

// HasActed reports whether unit has already acted this turn.
func (ts *TurnSystem) HasActed(unitID [16]byte) bool {
	return ts.unitsActedThisTurn[unitID]
}

// Tick advances the turn timer by dt; once phase is Active and the AI
// delay has elapsed for an AI team, the caller (driver) is expected to ask
// the turn system to end the turn.
func (ts *TurnSystem) Tick(dt time.Duration) {
	ts.turnTimer += dt
}

// ElapsedSinceStart returns how long the current turn has been active.
func (ts *TurnSystem) ElapsedSinceStart() time.Duration { return ts.turnTimer }

// EndTurn advances to the next team in rotation, incrementing turnCount
// when the rotation wraps back to the first team. It clears the
// acted-this-turn set and resets the turn timer, then returns the phase to
// Active for the new current team.
func (ts *TurnSystem) EndTurn() {
	ts.unitsActedThisTurn = make(map[[16]byte]bool)

	ts.phase = PhaseEnding
	ts.currentTeamIndex = (ts.currentTeamIndex + 1) % len(ts.teams)
	if ts.currentTeamIndex == 0 {
		ts.turnCount++
	}

	ts.turnTimer = 0
	ts.phase = PhaseActive
}
