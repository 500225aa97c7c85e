// Command planrepl is an interactive stepper over a scenario file: each
// line advances or inspects the world one command at a time, backed by the
// same GameWorld/AI driver the planctl scenario runner uses.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"github.com/chzyer/readline"

	"github.com/turnforge/tacticalplanner/lib"
	"github.com/turnforge/tacticalplanner/lib/ai"
)

const Version = "0.1.0"

func main() {
	var (
		help = flag.Bool("help", false, "Show help information")
		seed = flag.Int64("seed", 1, "RNG seed for combat resolution")
	)
	flag.Parse()

	if *help || len(flag.Args()) == 0 {
		showHelp()
		return
	}

	scenarioPath := flag.Args()[0]
	session, err := NewSession(scenarioPath, *seed)
	if err != nil {
		log.Fatalf("failed to load scenario: %v", err)
	}
	defer session.Close()

	fmt.Printf("planrepl - scenario %s loaded\n", scenarioPath)
	fmt.Println("Type 'help' for available commands, 'quit' to exit")

	for _, cmd := range flag.Args()[1:] {
		fmt.Printf("> %s\n", cmd)
		result := session.Execute(cmd)
		if result == "quit" {
			return
		}
		fmt.Println(result)
	}

	startREPL(session)
}

func showHelp() {
	fmt.Printf("planrepl v%s - interactive tactical planner stepper\n\n", Version)
	fmt.Println("USAGE:")
	fmt.Println("  planrepl <scenario.json> [commands...]")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("  step                 Run the current team's AI turn")
	fmt.Println("  status               Show turn count, current team, units remaining")
	fmt.Println("  units                List all living units and positions")
	fmt.Println("  help                 Show this help")
	fmt.Println("  quit                 Exit")
}

func startREPL(session *Session) {
	for {
		line, err := session.readline.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nGoodbye!")
				return
			}
			log.Printf("error reading input: %v", err)
			return
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}

		result := session.Execute(command)
		if result == "quit" {
			fmt.Println("Goodbye!")
			return
		}
		fmt.Println(result)
	}
}

// Session wraps one scenario's world, driver, and readline instance.
type Session struct {
	world    *lib.GameWorld
	driver   *ai.Driver
	rng      *rand.Rand
	readline *readline.Instance
}

func NewSession(scenarioPath string, seed int64) (*Session, error) {
	world, err := loadScenarioFile(scenarioPath)
	if err != nil {
		return nil, err
	}
	world.Turn.SetControlledByAI(lib.TeamPlayer, true)
	world.Turn.StartTurn()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "planrepl> ",
		HistoryFile: "/tmp/planrepl_history.tmp",
	})
	if err != nil {
		return nil, fmt.Errorf("readline: %w", err)
	}

	return &Session{
		world:    world,
		driver:   ai.NewDriver(nil),
		rng:      rand.New(rand.NewSource(seed)),
		readline: rl,
	}, nil
}

func (s *Session) Close() {
	s.readline.Close()
}

func (s *Session) Execute(command string) string {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ""
	}

	switch parts[0] {
	case "quit", "exit":
		return "quit"

	case "help":
		return "commands: step, status, units, quit"

	case "step":
		s.world.SyncTeamRotation()
		team := s.world.Turn.CurrentTeam()
		s.driver.RunTurn(s.world, s.rng)
		s.world.Turn.StartTurn()
		return fmt.Sprintf("stepped team %s (turn %d now)", team.String(), s.world.Turn.TurnCount())

	case "status":
		return fmt.Sprintf("turn %d, current team %s, %d units remaining",
			s.world.Turn.TurnCount(), s.world.Turn.CurrentTeam().String(), len(s.world.Units()))

	case "units":
		var sb strings.Builder
		for _, u := range s.world.Units() {
			fmt.Fprintf(&sb, "%s [%s/%s] at %s hp=%d/%d\n", u.ID.String()[:8], u.Team.String(), u.Class, u.Pos.String(), u.Health, u.MaxHealth)
		}
		return sb.String()

	default:
		return fmt.Sprintf("unknown command %q (try 'help')", parts[0])
	}
}
