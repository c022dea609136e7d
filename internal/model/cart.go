package model

import "github.com/shopspring/decimal"

type AddOrDeleteCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type AddOrDeleteCartResponse = Envelope[*ToggleData]

type CartItem struct {
	ID       int64   `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

// LineTotal is price times quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type CartsData struct {
	CartItems []CartItem      `json:"cart_items"`
	SubTotal  decimal.Decimal `json:"sub_total"`
	Total     decimal.Decimal `json:"total"`
}

// ComputeTotal sums the line totals of every item.
func (c CartsData) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.CartItems {
		total = total.Add(item.LineTotal())
	}
	return total
}

type GetCartsResponse = Envelope[CartsData]
