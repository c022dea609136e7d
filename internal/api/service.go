package api

import (
	"context"

	"github.com/trendify-core/client/internal/model"
)

const (
	PathRegister       = "User/Register"
	PathLogin          = "User/Login"
	PathHome           = "Home/Gethomedata"
	PathFavorites      = "Favorites/GetFavorites"
	PathToggleFavorite = "Favorites/addordeletefavoritewithproductid"
	PathCarts          = "Carts/GetCarts"
	PathToggleCart     = "Carts/addorremovecartwithproductid"
)

// Service is the remote Trendify API. Every call blocks until the round trip
// completes. A non-2xx answer is reported through Response.StatusCode, not as
// an error; the error return is reserved for transport failures.
type Service interface {
	Register(ctx context.Context, req model.RegisterRequest) (*Response[model.RegisterResponse], error)
	Login(ctx context.Context, req model.LoginRequest) (*Response[model.LoginResponse], error)

	GetHome(ctx context.Context) (*Response[model.Home], error)

	GetFavorites(ctx context.Context) (*Response[model.GetFavoritesResponse], error)
	AddOrDeleteFavorite(ctx context.Context, req model.AddOrDeleteFavRequest) (*Response[model.AddOrDeleteFavResponse], error)

	GetCarts(ctx context.Context) (*Response[model.GetCartsResponse], error)
	AddOrDeleteCart(ctx context.Context, req model.AddOrDeleteCartRequest) (*Response[model.AddOrDeleteCartResponse], error)
}

// HomeFetcher is the slice of Service the home screen needs.
type HomeFetcher interface {
	GetHome(ctx context.Context) (*Response[model.Home], error)
}
