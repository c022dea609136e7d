package model

import "github.com/shopspring/decimal"

type AddOrDeleteFavRequest struct {
	ProductID int64 `json:"product_id"`
}

// ToggledProduct is the short product shape echoed by the toggle endpoints.
type ToggledProduct struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	OldPrice decimal.Decimal `json:"old_price"`
	Discount int             `json:"discount"`
	Image    string          `json:"image,omitempty"`
}

type ToggleData struct {
	ID      int64          `json:"id"`
	Product ToggledProduct `json:"product"`
}

type AddOrDeleteFavResponse = Envelope[*ToggleData]

type FavoriteItem struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
}

type FavoritesData struct {
	CurrentPage int            `json:"current_page"`
	Data        []FavoriteItem `json:"data"`
	Total       int            `json:"total"`
}

type GetFavoritesResponse = Envelope[FavoritesData]
