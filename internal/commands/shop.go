package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trendify-core/client/internal/model"
)

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func favoritesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.GetFavorites(cmd.Context())
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			items := res.Body.Data.Data
			products := make([]model.Product, 0, len(items))
			for _, it := range items {
				products = append(products, it.Product)
			}
			return writeProducts(cmd.OutOrStdout(), products, nil)
		},
	}
}

func favoriteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <product-id>",
		Short: "Add a product to favorites or remove it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			res, err := c.api.AddOrDeleteFavorite(cmd.Context(), model.AddOrDeleteFavRequest{ProductID: id})
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (product %d)\n", res.Body.Message, id)
			return nil
		},
	}
}

func cartCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.GetCarts(cmd.Context())
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			data := res.Body.Data
			products := make([]model.Product, 0, len(data.CartItems))
			qty := make([]int, 0, len(data.CartItems))
			for _, it := range data.CartItems {
				products = append(products, it.Product)
				qty = append(qty, it.Quantity)
			}
			out := cmd.OutOrStdout()
			if err := writeProducts(out, products, qty); err != nil {
				return err
			}
			total := data.Total
			if total.IsZero() {
				total = data.ComputeTotal()
			}
			fmt.Fprintf(out, "Total: %s\n", total.StringFixed(2))
			return nil
		},
	}
}

func cartToggleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cart-toggle <product-id>",
		Short: "Put a product in the cart or take it out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			res, err := c.api.AddOrDeleteCart(cmd.Context(), model.AddOrDeleteCartRequest{ProductID: id})
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (product %d)\n", res.Body.Message, id)
			return nil
		},
	}
}

// writeProducts prints a table; qty, when non-nil, adds a quantity column.
func writeProducts(w io.Writer, products []model.Product, qty []int) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if qty != nil {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tOLD PRICE")
	}
	for i, p := range products {
		if qty != nil {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.StringFixed(2), qty[i])
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.OldPrice.StringFixed(2))
	}
	return tw.Flush()
}
