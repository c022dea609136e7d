package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/trendify-core/client/internal/model"
)

func summaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Fetch feed, favorites and cart together and print counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				feed  *model.HomeData
				favs  *model.FavoritesData
				carts *model.CartsData
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				res, err := c.api.GetHome(ctx)
				if err != nil {
					return err
				}
				if err := res.Err(); err != nil {
					return fmt.Errorf("home: %w", err)
				}
				feed = &res.Body.Data
				return nil
			})
			g.Go(func() error {
				res, err := c.api.GetFavorites(ctx)
				if err != nil {
					return err
				}
				if err := res.Err(); err != nil {
					return fmt.Errorf("favorites: %w", err)
				}
				favs = &res.Body.Data
				return nil
			})
			g.Go(func() error {
				res, err := c.api.GetCarts(ctx)
				if err != nil {
					return err
				}
				if err := res.Err(); err != nil {
					return fmt.Errorf("cart: %w", err)
				}
				carts = &res.Body.Data
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Products: %d\n", len(feed.Products))
			fmt.Fprintf(out, "Banners: %d\n", len(feed.Banners))
			fmt.Fprintf(out, "Favorites: %d\n", len(favs.Data))
			fmt.Fprintf(out, "Cart items: %d (total %s)\n", len(carts.CartItems), carts.ComputeTotal().StringFixed(2))
			return nil
		},
	}
}
