package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/assistant/tools"
	"github.com/trendify-core/client/internal/home"
)

func toolCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tool <name> [json-args]",
		Short: "Invoke a shop tool (search_product, get_product_details, toggle_favorite, toggle_cart)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			all := tools.GetShopTools(c.api, home.NewViewModel(c.api))
			t, err := tools.Find(ctx, all, args[0])
			if err != nil {
				return err
			}
			input := "{}"
			if len(args) == 2 {
				input = args[1]
			}
			out, err := t.InvokableRun(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
