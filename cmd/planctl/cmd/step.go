package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/turnforge/tacticalplanner/lib"
	"github.com/turnforge/tacticalplanner/lib/ai"
)

var stepCmd = &cobra.Command{
	Use:   "step <scenario.json>",
	Short: "Advance exactly one AI team's turn and print the resulting events",
	Args:  cobra.ExactArgs(1),
	RunE:  runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func runStep(c *cobra.Command, args []string) error {
	path := args[0]
	if rootCmd.PersistentFlags().Changed("scenario") {
		path = getScenarioPath()
	}

	world, err := loadWorld(path)
	if err != nil {
		return err
	}
	world.Turn.SetControlledByAI(lib.TeamPlayer, true)
	world.Turn.StartTurn()
	world.SyncTeamRotation()

	team := world.Turn.CurrentTeam()
	fmt.Printf("Stepping team %s (turn %d)\n", team.String(), world.Turn.TurnCount())

	driver := ai.NewDriver(nil)
	driver.RunTurn(world, rand.New(rand.NewSource(getSeed())))

	for _, e := range world.Events.Drain() {
		printEvent(e)
	}

	return nil
}
