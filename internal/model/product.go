package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	OldPrice    decimal.Decimal `json:"old_price"`
	Discount    int             `json:"discount"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
	InFavorites bool            `json:"in_favorites"`
	InCart      bool            `json:"in_cart"`
}

// DiscountPercent returns the reduction from OldPrice to Price, rounded to a
// whole percent. Products without a higher old price report the server's
// Discount field.
func (p Product) DiscountPercent() int {
	if !p.OldPrice.IsPositive() || !p.OldPrice.GreaterThan(p.Price) {
		return p.Discount
	}
	pct := p.OldPrice.Sub(p.Price).Div(p.OldPrice).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}

type Banner struct {
	ID       int64     `json:"id"`
	Image    string    `json:"image"`
	Category *Category `json:"category,omitempty"`
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// HomeData is the feed payload behind Home/Gethomedata.
type HomeData struct {
	Banners  []Banner  `json:"banners"`
	Products []Product `json:"products"`
	Ad       string    `json:"ad,omitempty"`
}

type Home = Envelope[HomeData]
