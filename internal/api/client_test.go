package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/trendify-core/client/internal/api"
	errx "github.com/trendify-core/client/internal/core/error"
	"github.com/trendify-core/client/internal/fakeserver"
	"github.com/trendify-core/client/internal/model"
	"github.com/trendify-core/client/internal/session"
)

func newTestClient(t *testing.T) (*api.Client, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(fakeserver.New(nil).Handler("/api"))
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	c := api.NewClient(api.Config{BaseURL: srv.URL + "/api/", Timeout: 5, Lang: "en"},
		api.WithHTTPClient(srv.Client()),
		api.WithTokenSource(store))
	return c, store
}

func login(t *testing.T, c *api.Client, store *session.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	reg, err := c.Register(ctx, model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret", Phone: "0100"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Err(); err != nil {
		t.Fatalf("register rejected: %v", err)
	}

	res, err := c.Login(ctx, model.LoginRequest{Email: "ada@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.Successful() || res.Err() != nil || res.Body.Data == nil || res.Body.Data.Token == "" {
		t.Fatalf("unexpected login response %+v", res)
	}
	if err := store.SetToken(ctx, res.Body.Data.Token); err != nil {
		t.Fatalf("store token: %v", err)
	}
}

func TestClient_GetHome(t *testing.T) {
	c, _ := newTestClient(t)

	res, err := c.GetHome(context.Background())
	if err != nil {
		t.Fatalf("get home: %v", err)
	}
	if res.StatusCode != http.StatusOK || !res.Successful() {
		t.Fatalf("unexpected response %+v", res)
	}
	if got := len(res.Body.Data.Products); got != len(fakeserver.DefaultCatalog) {
		t.Fatalf("expected %d products, got %d", len(fakeserver.DefaultCatalog), got)
	}
	if res.RequestID == "" {
		t.Fatal("expected request id to be recorded")
	}
	first := res.Body.Data.Products[0]
	if !first.Price.Equal(fakeserver.DefaultCatalog[0].Price) || first.Discount == 0 {
		t.Fatalf("unexpected first product %+v", first)
	}
}

func TestClient_LoginWrongPasswordIsRejected(t *testing.T) {
	c, store := newTestClient(t)
	login(t, c, store)

	res, err := c.Login(context.Background(), model.LoginRequest{Email: "ada@example.com", Password: "nope"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if err := res.Err(); !errors.Is(err, errx.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	c, _ := newTestClient(t)

	res, err := c.GetFavorites(context.Background())
	if err != nil {
		t.Fatalf("expected no transport error, got %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	if res.Body != nil || res.Successful() {
		t.Fatalf("expected no body for non-2xx answer, got %+v", res.Body)
	}
	err = res.Err()
	if !errors.Is(err, errx.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var appErr *errx.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Unauthorized" {
		t.Fatalf("expected server message to be preserved, got %v", err)
	}
}

func TestClient_ToggleFavoriteTwiceRestoresMembership(t *testing.T) {
	c, store := newTestClient(t)
	login(t, c, store)
	ctx := context.Background()
	pid := fakeserver.DefaultCatalog[1].ID

	first, err := c.AddOrDeleteFavorite(ctx, model.AddOrDeleteFavRequest{ProductID: pid})
	if err != nil || first.Err() != nil {
		t.Fatalf("first toggle: %v / %v", err, first.Err())
	}
	if first.Body.Message != "Added Successfully" || first.Body.Data.Product.ID != pid {
		t.Fatalf("unexpected first toggle %+v", first.Body)
	}

	favs, err := c.GetFavorites(ctx)
	if err != nil || !favs.Successful() {
		t.Fatalf("get favorites: %v", err)
	}
	if len(favs.Body.Data.Data) != 1 || favs.Body.Data.Data[0].Product.ID != pid || !favs.Body.Data.Data[0].Product.InFavorites {
		t.Fatalf("unexpected favorites %+v", favs.Body.Data)
	}

	second, err := c.AddOrDeleteFavorite(ctx, model.AddOrDeleteFavRequest{ProductID: pid})
	if err != nil || second.Err() != nil {
		t.Fatalf("second toggle: %v / %v", err, second.Err())
	}
	if second.Body.Message != "Deleted Successfully" {
		t.Fatalf("expected delete message, got %q", second.Body.Message)
	}

	favs, _ = c.GetFavorites(ctx)
	if len(favs.Body.Data.Data) != 0 {
		t.Fatalf("expected empty favorites, got %+v", favs.Body.Data.Data)
	}
}

func TestClient_ToggleCartAndTotals(t *testing.T) {
	c, store := newTestClient(t)
	login(t, c, store)
	ctx := context.Background()

	for _, p := range fakeserver.DefaultCatalog[:2] {
		res, err := c.AddOrDeleteCart(ctx, model.AddOrDeleteCartRequest{ProductID: p.ID})
		if err != nil || res.Err() != nil {
			t.Fatalf("toggle cart %d: %v / %v", p.ID, err, res.Err())
		}
	}

	carts, err := c.GetCarts(ctx)
	if err != nil || !carts.Successful() {
		t.Fatalf("get carts: %v", err)
	}
	want := fakeserver.DefaultCatalog[0].Price.Add(fakeserver.DefaultCatalog[1].Price)
	if !carts.Body.Data.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, carts.Body.Data.Total)
	}

	home, _ := c.GetHome(ctx)
	if !home.Body.Data.Products[0].InCart || home.Body.Data.Products[2].InCart {
		t.Fatal("home feed should reflect cart membership for the session")
	}
}

func TestClient_UnknownProductIsRejected(t *testing.T) {
	c, store := newTestClient(t)
	login(t, c, store)

	res, err := c.AddOrDeleteCart(context.Background(), model.AddOrDeleteCartRequest{ProductID: 999999})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !errors.Is(res.Err(), errx.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", res.Err())
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := api.NewClient(api.Config{BaseURL: base, Timeout: 1})
	res, err := c.GetHome(context.Background())
	if res != nil {
		t.Fatalf("expected nil response, got %+v", res)
	}
	if !errors.Is(err, errx.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		if r.URL.Path != "/api/Home/Gethomedata" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":{"products":[]}}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	_ = store.SetToken(context.Background(), "tok-1")
	c := api.NewClient(api.Config{BaseURL: srv.URL + "/api", Lang: "ar"}, api.WithTokenSource(store))

	res, err := c.GetHome(context.Background())
	if err != nil || !res.Successful() {
		t.Fatalf("get home: %v", err)
	}
	if got.Get("Authorization") != "Bearer tok-1" {
		t.Fatalf("unexpected Authorization %q", got.Get("Authorization"))
	}
	if got.Get("lang") != "ar" {
		t.Fatalf("unexpected lang %q", got.Get("lang"))
	}
	if got.Get("X-Request-ID") != res.RequestID {
		t.Fatalf("request id mismatch %q vs %q", got.Get("X-Request-ID"), res.RequestID)
	}
}

func TestClient_UndecodableBodyLeavesBodyNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := api.NewClient(api.Config{BaseURL: srv.URL})
	res, err := c.GetHome(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Body != nil || res.Raw == "" {
		t.Fatalf("expected raw body only, got %+v", res)
	}
	if res.Err() == nil {
		t.Fatal("expected Err for missing body")
	}
}

func TestClient_UnreadableSessionSendsAnonymously(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(fakeserver.New(nil).Handler("/api"))
	defer srv.Close()

	dir := t.TempDir()
	store := session.NewFileStore(dir, "default")
	if err := os.WriteFile(store.Path(), []byte("{garbage"), 0o600); err != nil {
		t.Fatalf("write session: %v", err)
	}
	c := api.NewClient(api.Config{BaseURL: srv.URL + "/api", Timeout: 5}, api.WithTokenSource(store))
	ctx := context.Background()

	home, err := c.GetHome(ctx)
	if err != nil {
		t.Fatalf("get home with unreadable session: %v", err)
	}
	if !home.Successful() || len(home.Body.Data.Products) != len(fakeserver.DefaultCatalog) {
		t.Fatalf("unexpected home response %+v", home)
	}

	favs, err := c.GetFavorites(ctx)
	if err != nil {
		t.Fatalf("get favorites with unreadable session: %v", err)
	}
	if favs.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous favorites, got %d", favs.StatusCode)
	}
}
