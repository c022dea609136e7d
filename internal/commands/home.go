package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/home"
)

func homeCmd(c *cli) *cobra.Command {
	var (
		query       string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the home feed, optionally filtered by product name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			vm := home.NewViewModel(c.api)
			vm.SetQuery(query)
			vm.Load(cmd.Context())

			if err := home.Render(out, vm.State()); err != nil {
				return err
			}
			if !interactive {
				return nil
			}

			// each line typed replaces the query; the screen is redrawn from
			// the view model's state stream
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			states := vm.Watch(ctx)
			<-states

			fmt.Fprintln(out, "\nType to filter, empty line clears, Ctrl-D quits.")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				q := scanner.Text()
				vm.SetQuery(q)
				st, ok := awaitQuery(states, q)
				if !ok {
					return ctx.Err()
				}
				if err := home.Render(out, st); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "case-insensitive product name filter")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries from stdin and re-render on each line")
	return cmd
}

// awaitQuery skips states emitted before q took effect.
func awaitQuery(states <-chan home.State, q string) (home.State, bool) {
	for st := range states {
		if st.Query == q {
			return st, true
		}
	}
	return home.State{}, false
}
