// Package tools exposes the shop operations as Eino tools so an assistant
// runtime can search the feed and manage favorites and the cart.
package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/home"
)

// GetShopTools returns every shop tool. The feed tools share vm, so the feed
// is fetched at most once however many lookups run.
func GetShopTools(svc api.Service, vm *home.ViewModel) []tool.InvokableTool {
	return []tool.InvokableTool{
		createSearchProductTool(vm),
		createGetProductDetailsTool(vm),
		createToggleFavoriteTool(svc),
		createToggleCartTool(svc),
	}
}

// Find returns the tool registered under name.
func Find(ctx context.Context, tools []tool.InvokableTool, name string) (tool.InvokableTool, error) {
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		if info.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}
