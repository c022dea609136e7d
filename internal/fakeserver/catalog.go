package fakeserver

import (
	"github.com/shopspring/decimal"

	"github.com/trendify-core/client/internal/model"
)

// DefaultCatalog is the product list served when New is given none.
var DefaultCatalog = []model.Product{
	{ID: 52, Name: "Red Running Shoe", Price: decimal.RequireFromString("25.5"), OldPrice: decimal.RequireFromString("32"), Image: "https://cdn.trendify.local/p/52.png", Description: "Lightweight mesh running shoe"},
	{ID: 53, Name: "Blue Bucket Hat", Price: decimal.RequireFromString("12"), OldPrice: decimal.RequireFromString("15"), Image: "https://cdn.trendify.local/p/53.png", Description: "Cotton bucket hat"},
	{ID: 54, Name: "Leather Crossbody Bag", Price: decimal.RequireFromString("79.99"), OldPrice: decimal.RequireFromString("99.99"), Image: "https://cdn.trendify.local/p/54.png", Description: "Full grain leather"},
	{ID: 55, Name: "Wireless Earbuds", Price: decimal.RequireFromString("49"), OldPrice: decimal.RequireFromString("49"), Image: "https://cdn.trendify.local/p/55.png", Description: "Noise cancelling earbuds"},
	{ID: 56, Name: "red velvet scarf", Price: decimal.RequireFromString("18.75"), OldPrice: decimal.RequireFromString("25"), Image: "https://cdn.trendify.local/p/56.png", Description: "Soft velvet scarf"},
	{ID: 57, Name: "Smart Watch Series 4", Price: decimal.RequireFromString("199"), OldPrice: decimal.RequireFromString("249"), Image: "https://cdn.trendify.local/p/57.png", Description: "Fitness and notifications"},
}

// DefaultBanners accompany DefaultCatalog on the home feed.
var DefaultBanners = []model.Banner{
	{ID: 11, Image: "https://cdn.trendify.local/b/spring.png", Category: &model.Category{ID: 44, Name: "Spring Sale"}},
	{ID: 12, Image: "https://cdn.trendify.local/b/cashback.png"},
}
