package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turnforge/tacticalplanner/lib"
	"github.com/turnforge/tacticalplanner/lib/ai"
)

var maxTurns int

var runCmd = &cobra.Command{
	Use:   "run <scenario.json>",
	Short: "Run a scenario to completion or until --max-turns is reached",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&maxTurns, "max-turns", 200, "stop after this many full team rotations")
	rootCmd.AddCommand(runCmd)
}

func runRun(c *cobra.Command, args []string) error {
	path := args[0]
	if rootCmd.PersistentFlags().Changed("scenario") {
		path = getScenarioPath()
	}

	world, err := loadWorld(path)
	if err != nil {
		return err
	}
	// planctl has no human input channel: every team is AI-driven so a
	// scenario can run to completion unattended.
	world.Turn.SetControlledByAI(lib.TeamPlayer, true)

	rng := rand.New(rand.NewSource(getSeed()))
	return simulate(world, rng)
}

// simulate drives the turn system to completion (or until maxTurns full
// rotations have elapsed), logging each AI turn's outcome.
func simulate(world *lib.GameWorld, rng *rand.Rand) error {
	driver := ai.NewDriver(nil)

	world.Turn.StartTurn()
	for world.Turn.TurnCount() < maxTurns {
		world.SyncTeamRotation()

		if winner, ok := world.VictoryTeam(); ok {
			report(world, fmt.Sprintf("%s wins", winner.String()))
			return nil
		}

		driver.RunTurn(world, rng)
		world.Turn.StartTurn()
		drainEvents(world)
	}

	report(world, fmt.Sprintf("reached max-turns (%d) with no winner", maxTurns))
	return nil
}

func drainEvents(world *lib.GameWorld) {
	for _, e := range world.Events.Drain() {
		if isJSONOutput() {
			continue
		}
		if isVerbose() {
			printEvent(e)
		}
	}
}

func printEvent(e lib.Event) {
	switch e.Kind {
	case lib.EventUnitMoved:
		color.Cyan("  moved -> %s", e.Pos)
	case lib.EventUnitAttacked:
		color.Yellow("  attack resolved")
	case lib.EventUnitKilled:
		color.Red("  unit killed")
	}
}

func report(world *lib.GameWorld, outcome string) {
	if isJSONOutput() {
		data := map[string]any{
			"outcome":    outcome,
			"turn_count": world.Turn.TurnCount(),
			"units_left": len(world.Units()),
		}
		b, _ := json.MarshalIndent(data, "", "  ")
		fmt.Println(string(b))
		return
	}

	color.Green("Simulation finished: %s", outcome)
	fmt.Printf("Turns elapsed: %d\n", world.Turn.TurnCount())
	fmt.Printf("Units remaining: %d\n", len(world.Units()))
}
