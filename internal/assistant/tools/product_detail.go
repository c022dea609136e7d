package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/trendify-core/client/internal/home"
)

type GetProductDetailsInput struct {
	ProductID int64 `json:"product_id"`
}

type GetProductDetailsOutput struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	OldPrice        string `json:"old_price"`
	DiscountPercent int    `json:"discount_percent"`
	Image           string `json:"image"`
	InFavorites     bool   `json:"in_favorites"`
	InCart          bool   `json:"in_cart"`
}

func createGetProductDetailsTool(vm *home.ViewModel) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        "get_product_details",
			Desc:        "Get price, old price, discount and favorite/cart status for one product of the home feed. Use after search_product when the customer asks about a specific item.",
			ParamsOneOf: schema.NewParamsOneOfByParams(productIDParam),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if in.ProductID <= 0 {
				return nil, fmt.Errorf("product_id is required")
			}

			vm.Load(ctx)
			feed := vm.Feed()
			if feed == nil {
				return nil, ErrFeedUnavailable
			}

			for _, p := range feed.Products {
				if p.ID != in.ProductID {
					continue
				}
				return &GetProductDetailsOutput{
					ID:              p.ID,
					Name:            p.Name,
					Description:     p.Description,
					Price:           p.Price.StringFixed(2),
					OldPrice:        p.OldPrice.StringFixed(2),
					DiscountPercent: p.DiscountPercent(),
					Image:           p.Image,
					InFavorites:     p.InFavorites,
					InCart:          p.InCart,
				}, nil
			}

			return nil, fmt.Errorf("product not found: %d", in.ProductID)
		},
	)
}
