package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/model"
)

type ToggleInput struct {
	ProductID int64 `json:"product_id"`
}

type ToggleOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
}

var productIDParam = map[string]*schema.ParameterInfo{
	"product_id": {
		Type:     "integer",
		Desc:     "Product ID obtained from search_product results. Must be an exact ID.",
		Required: true,
	},
}

func toggleOutput(res *api.Response[model.Envelope[*model.ToggleData]], id int64) (*ToggleOutput, error) {
	if err := res.Err(); err != nil {
		return nil, err
	}
	out := &ToggleOutput{ProductID: id, Message: res.Body.Message}
	if res.Body.Data != nil {
		out.Name = res.Body.Data.Product.Name
	}
	return out, nil
}

func createToggleFavoriteTool(svc api.Service) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        "toggle_favorite",
			Desc:        "Add the product to the customer's favorites, or remove it if it is already there. Requires a logged in session.",
			ParamsOneOf: schema.NewParamsOneOfByParams(productIDParam),
		},
		func(ctx context.Context, in *ToggleInput) (*ToggleOutput, error) {
			if in.ProductID <= 0 {
				return nil, fmt.Errorf("product_id is required")
			}
			res, err := svc.AddOrDeleteFavorite(ctx, model.AddOrDeleteFavRequest{ProductID: in.ProductID})
			if err != nil {
				return nil, err
			}
			return toggleOutput(res, in.ProductID)
		},
	)
}

func createToggleCartTool(svc api.Service) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        "toggle_cart",
			Desc:        "Put the product in the customer's cart, or take it out if it is already there. Requires a logged in session.",
			ParamsOneOf: schema.NewParamsOneOfByParams(productIDParam),
		},
		func(ctx context.Context, in *ToggleInput) (*ToggleOutput, error) {
			if in.ProductID <= 0 {
				return nil, fmt.Errorf("product_id is required")
			}
			res, err := svc.AddOrDeleteCart(ctx, model.AddOrDeleteCartRequest{ProductID: in.ProductID})
			if err != nil {
				return nil, err
			}
			return toggleOutput(res, in.ProductID)
		},
	)
}
