// Package fakeserver is an in-memory implementation of the Trendify REST API
// used by tests and for local development.
package fakeserver

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/model"
	logx "github.com/trendify-core/client/pkg/logger"
)

const (
	msgAdded        = "Added Successfully"
	msgDeleted      = "Deleted Successfully"
	msgUnauthorized = "Unauthorized"
)

type account struct {
	user      model.UserData
	password  string
	favorites []int64
	favIDs    map[int64]int64
	cart      []int64
	cartIDs   map[int64]int64
}

type Server struct {
	mu       sync.Mutex
	products []model.Product
	index    map[int64]int
	banners  []model.Banner
	byEmail  map[string]*account
	byToken  map[string]*account
	seq      int64
}

// New builds a server over products; a nil slice uses DefaultCatalog.
func New(products []model.Product) *Server {
	banners := []model.Banner(nil)
	if products == nil {
		products = DefaultCatalog
		banners = DefaultBanners
	}
	s := &Server{
		products: append([]model.Product(nil), products...),
		index:    make(map[int64]int, len(products)),
		banners:  banners,
		byEmail:  make(map[string]*account),
		byToken:  make(map[string]*account),
		seq:      1000,
	}
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	return s
}

// Handler returns a gin engine serving the API under prefix (e.g. "/api").
func (s *Server) Handler(prefix string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	s.Register(r.Group(prefix))
	return r
}

// Register mounts the seven endpoints on g.
func (s *Server) Register(g gin.IRouter) {
	g.POST("/"+api.PathRegister, s.register)
	g.POST("/"+api.PathLogin, s.login)
	g.GET("/"+api.PathHome, s.home)
	g.GET("/"+api.PathFavorites, s.authed(s.favorites))
	g.POST("/"+api.PathToggleFavorite, s.authed(s.toggleFavorite))
	g.GET("/"+api.PathCarts, s.authed(s.carts))
	g.POST("/"+api.PathToggleCart, s.authed(s.toggleCart))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logx.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetHeader("X-Request-ID")).
			Int("status", c.Writer.Status()).
			Msg("fake api served request")
	}
}

func reject[T any](c *gin.Context, status int, message string) {
	var zero T
	c.JSON(status, model.Envelope[T]{Status: false, Message: message, Data: zero})
}

func (s *Server) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Server) register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject[*model.UserData](c, http.StatusBadRequest, "malformed request body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		reject[*model.UserData](c, http.StatusOK, "name, email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		reject[*model.UserData](c, http.StatusOK, "This email is already taken")
		return
	}
	acc := &account{
		user: model.UserData{
			ID:    s.nextID(),
			Name:  req.Name,
			Email: email,
			Phone: req.Phone,
			Token: uuid.NewString(),
		},
		password: req.Password,
		favIDs:   make(map[int64]int64),
		cartIDs:  make(map[int64]int64),
	}
	s.byEmail[email] = acc
	s.byToken[acc.user.Token] = acc

	user := acc.user
	c.JSON(http.StatusOK, model.RegisterResponse{Status: true, Message: "Registered Successfully", Data: &user})
}

func (s *Server) login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject[*model.UserData](c, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byEmail[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok || acc.password != req.Password {
		reject[*model.UserData](c, http.StatusOK, "Invalid email or password")
		return
	}
	delete(s.byToken, acc.user.Token)
	acc.user.Token = uuid.NewString()
	s.byToken[acc.user.Token] = acc

	user := acc.user
	c.JSON(http.StatusOK, model.LoginResponse{Status: true, Message: "Login Successfully", Data: &user})
}

func (s *Server) lookup(c *gin.Context) *account {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if token == "" {
		return nil
	}
	return s.byToken[token]
}

func (s *Server) authed(h func(*gin.Context, *account)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		acc := s.lookup(c)
		if acc == nil {
			reject[any](c, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		h(c, acc)
	}
}

// decorate returns the catalog entry with per-account flags set.
func (s *Server) decorate(p model.Product, acc *account) model.Product {
	p.Discount = p.DiscountPercent()
	if acc != nil {
		_, p.InFavorites = acc.favIDs[p.ID]
		_, p.InCart = acc.cartIDs[p.ID]
	}
	return p
}

func (s *Server) home(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.lookup(c)

	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, s.decorate(p, acc))
	}
	c.JSON(http.StatusOK, model.Home{
		Status: true,
		Data: model.HomeData{
			Banners:  s.banners,
			Products: products,
		},
	})
}

func (s *Server) favorites(c *gin.Context, acc *account) {
	items := make([]model.FavoriteItem, 0, len(acc.favorites))
	for _, pid := range acc.favorites {
		items = append(items, model.FavoriteItem{
			ID:      acc.favIDs[pid],
			Product: s.decorate(s.products[s.index[pid]], acc),
		})
	}
	c.JSON(http.StatusOK, model.GetFavoritesResponse{
		Status: true,
		Data:   model.FavoritesData{CurrentPage: 1, Data: items, Total: len(items)},
	})
}

func (s *Server) carts(c *gin.Context, acc *account) {
	data := model.CartsData{CartItems: make([]model.CartItem, 0, len(acc.cart))}
	for _, pid := range acc.cart {
		data.CartItems = append(data.CartItems, model.CartItem{
			ID:       acc.cartIDs[pid],
			Quantity: 1,
			Product:  s.decorate(s.products[s.index[pid]], acc),
		})
	}
	data.SubTotal = data.ComputeTotal()
	data.Total = data.SubTotal
	c.JSON(http.StatusOK, model.GetCartsResponse{Status: true, Data: data})
}

func (s *Server) toggleFavorite(c *gin.Context, acc *account) {
	var req model.AddOrDeleteFavRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject[*model.ToggleData](c, http.StatusBadRequest, "malformed request body")
		return
	}
	s.toggle(c, req.ProductID, &acc.favorites, acc.favIDs)
}

func (s *Server) toggleCart(c *gin.Context, acc *account) {
	var req model.AddOrDeleteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject[*model.ToggleData](c, http.StatusBadRequest, "malformed request body")
		return
	}
	s.toggle(c, req.ProductID, &acc.cart, acc.cartIDs)
}

// toggle flips membership of productID in order/ids. Called with s.mu held.
func (s *Server) toggle(c *gin.Context, productID int64, order *[]int64, ids map[int64]int64) {
	i, ok := s.index[productID]
	if !ok {
		reject[*model.ToggleData](c, http.StatusOK, "This product not found")
		return
	}
	p := s.products[i]

	message := msgAdded
	entryID, present := ids[productID]
	if present {
		delete(ids, productID)
		*order = removeID(*order, productID)
		message = msgDeleted
	} else {
		entryID = s.nextID()
		ids[productID] = entryID
		*order = append(*order, productID)
	}

	c.JSON(http.StatusOK, model.Envelope[*model.ToggleData]{
		Status:  true,
		Message: message,
		Data: &model.ToggleData{
			ID: entryID,
			Product: model.ToggledProduct{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				OldPrice: p.OldPrice,
				Discount: p.DiscountPercent(),
				Image:    p.Image,
			},
		},
	})
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
