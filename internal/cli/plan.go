package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
	"github.com/matzehuels/metroroute/pkg/planner"
)

// planCommand creates the interactive route planning command.
func (c *CLI) planCommand() *cobra.Command {
	var useTUI bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan routes interactively",
		Long: `Plan routes interactively.

Lists the stations of every line, asks for a source and a destination and
prints the cheapest route with its fare, travel time and any line change.
Repeats until you answer anything but Y.`,
		Example: `  metroroute plan
  metroroute plan --tui
  metroroute plan --network mynetwork.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := c.loadPlanner(ctx)
			if err != nil {
				return err
			}
			s := &session{planner: p, in: bufio.NewReader(c.in), out: c.out}
			if useTUI {
				s.pick = func(ctx context.Context, title string) (string, error) {
					return runStationPicker(ctx, title, p.Graph().Stations(), c.in, c.out)
				}
			}
			return s.run(ctx)
		},
	}

	cmd.Flags().BoolVar(&useTUI, "tui", false, "pick stations from an interactive list")

	return cmd
}

// session is one interactive planning loop.
type session struct {
	planner *planner.Planner
	in      *bufio.Reader
	out     io.Writer

	// pick, when set, replaces the typed prompts with a station picker.
	pick func(ctx context.Context, title string) (string, error)
}

func (s *session) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		from, to, err := s.ask(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, errPickerCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		j, err := s.planner.Plan(ctx, from, to)
		switch {
		case err == nil:
			s.printJourney(j)
		case merrors.Recoverable(err):
			fmt.Fprintln(s.out, merrors.UserMessage(err))
		default:
			return err
		}

		// The picker is its own loop: esc ends the session.
		if s.pick != nil {
			continue
		}
		again, err := s.again()
		if err != nil || !again {
			return nil
		}
	}
}

// ask reads a source and a destination.
func (s *session) ask(ctx context.Context) (from, to string, err error) {
	if s.pick != nil {
		if from, err = s.pick(ctx, "Source station"); err != nil {
			return "", "", err
		}
		if to, err = s.pick(ctx, "Destination station"); err != nil {
			return "", "", err
		}
		return from, to, nil
	}

	s.printStations()
	fmt.Fprint(s.out, "\nEnter the source station: ")
	if from, err = s.readLine(); err != nil {
		return "", "", err
	}
	fmt.Fprint(s.out, "Enter the destination station: ")
	if to, err = s.readLine(); err != nil {
		return "", "", err
	}
	return from, to, nil
}

// again asks whether to continue. Only the first non-blank character of
// the answer counts; blank lines are skipped.
func (s *session) again() (bool, error) {
	fmt.Fprint(s.out, "\nDo you want to plan another route? (Y/N): ")
	for {
		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		if answer := strings.TrimSpace(line); answer != "" {
			return answer[0] == 'Y' || answer[0] == 'y', nil
		}
	}
}

// readLine returns the next input line without its terminator. A final
// line without a newline is still returned; io.EOF is reported only when
// nothing was read.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *session) printStations() {
	for i, l := range s.planner.Lines().Lines() {
		if i > 0 {
			fmt.Fprintln(s.out)
		}
		fmt.Fprintf(s.out, "Available Stations on %s Line:\n", l.Name)
		for _, st := range l.Stations {
			fmt.Fprintln(s.out, st)
		}
	}
}

func (s *session) printJourney(j *planner.Journey) {
	fmt.Fprintf(s.out, "Stations along the route: %s\n", routeText(j.Stations))
	fmt.Fprintf(s.out, "Total number of stations: %d\n", j.StationCount)
	fmt.Fprintf(s.out, "Fare for the route: %s\n", j.FareText)
	fmt.Fprintf(s.out, "Estimated time: %d minutes\n", j.Minutes)
	if !j.ChangeRequired {
		return
	}
	fmt.Fprintln(s.out, "You will need to change lines during your journey.")
	fmt.Fprintln(s.out, "You can change at the following intersections:")
	for i, name := range j.Interchanges {
		fmt.Fprintf(s.out, "%d. %s (Change Line)\n", i+1, name)
	}
}
