package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/trendify-core/client/internal/home"
	"github.com/trendify-core/client/internal/model"
)

const (
	defaultMaxResults = 10
	maxMaxResults     = 20
)

// ErrFeedUnavailable is returned when the home feed could not be fetched.
var ErrFeedUnavailable = errors.New("home feed unavailable")

// ===================================
// Search Product Tool
// ===================================

type SearchProductInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchProductOutput struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

func createSearchProductTool(vm *home.ViewModel) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "search_product",
			Desc: "Search the Trendify home feed by product name. Matching is a case-insensitive substring match. Returns id, name, price, old price and favorite/cart flags for every match.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Part of the product name, e.g. shoe, hat, Red.",
					Required: true,
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of products to return (default: 10, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}
			if in.MaxResults <= 0 {
				in.MaxResults = defaultMaxResults
			}
			if in.MaxResults > maxMaxResults {
				in.MaxResults = maxMaxResults
			}

			vm.Load(ctx)
			feed := vm.Feed()
			if feed == nil {
				return nil, ErrFeedUnavailable
			}

			matched := home.Filter(feed.Products, in.Query)
			total := len(matched)
			if len(matched) > in.MaxResults {
				matched = matched[:in.MaxResults]
			}

			return &SearchProductOutput{
				Products: matched,
				Total:    total,
			}, nil
		},
	)
}
