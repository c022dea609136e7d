// Package home holds the home screen flow: a single feed fetch on entry, the
// latest feed in observable state, and the product list filtered by a live
// search query.
package home

import (
	"context"
	"sync"

	"github.com/trendify-core/client/internal/api"
	"github.com/trendify-core/client/internal/model"
	logx "github.com/trendify-core/client/pkg/logger"
	"github.com/trendify-core/client/pkg/observable"
)

// Phase is the coarse screen state. A failed fetch stays in PhaseEmpty.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "empty"
}

// Categories is the fixed category row shown under the promotion.
var Categories = []string{"Flash Deal", "Bill", "Game", "Daily Gift", "More"}

// State is an immutable snapshot of what the screen shows.
type State struct {
	Phase      Phase
	Query      string
	Products   []model.Product
	Banners    []model.Banner
	Total      int // unfiltered product count
	Categories []string
}

type ViewModel struct {
	api   api.HomeFetcher
	once  sync.Once
	done  chan struct{}
	feed  *observable.Value[*model.HomeData]
	query *observable.Value[string]
}

func NewViewModel(fetcher api.HomeFetcher) *ViewModel {
	return &ViewModel{
		api:   fetcher,
		done:  make(chan struct{}),
		feed:  observable.New[*model.HomeData](nil),
		query: observable.New(""),
	}
}

// Load issues the feed request the first time it is called and blocks until
// that request completes. Later calls return immediately without a request.
func (vm *ViewModel) Load(ctx context.Context) {
	vm.once.Do(func() {
		defer close(vm.done)
		vm.fetch(ctx)
	})
}

// Loaded is closed once the single fetch has finished, successfully or not.
func (vm *ViewModel) Loaded() <-chan struct{} {
	return vm.done
}

func (vm *ViewModel) fetch(ctx context.Context) {
	res, err := vm.api.GetHome(ctx)
	if err != nil {
		logx.Warn().Err(err).Msg("home feed request failed")
		return
	}
	if err := res.Err(); err != nil {
		logx.Warn().Err(err).Int("status", res.StatusCode).Str("requestID", res.RequestID).Msg("home feed not available")
		return
	}
	data := res.Body.Data
	logx.Debug().Int("products", len(data.Products)).Int("banners", len(data.Banners)).Msg("home feed loaded")
	vm.feed.Set(&data)
}

// SetQuery replaces the live search query.
func (vm *ViewModel) SetQuery(q string) {
	vm.query.Set(q)
}

// Feed returns the latest feed or nil before the first successful fetch.
func (vm *ViewModel) Feed() *model.HomeData {
	return vm.feed.Get()
}

func (vm *ViewModel) State() State {
	return vm.snapshot(vm.feed.Get(), vm.query.Get())
}

func (vm *ViewModel) snapshot(feed *model.HomeData, q string) State {
	st := State{Phase: PhaseEmpty, Query: q, Categories: Categories}
	if feed == nil {
		return st
	}
	st.Phase = PhaseReady
	st.Banners = feed.Banners
	st.Total = len(feed.Products)
	st.Products = Filter(feed.Products, q)
	return st
}

// Watch emits the current state and then a fresh state every time the feed
// or the query changes. The channel closes when ctx is done.
func (vm *ViewModel) Watch(ctx context.Context) <-chan State {
	out := make(chan State, 1)
	feedCh := vm.feed.Notify(ctx)
	queryCh := vm.query.Notify(ctx)
	out <- vm.State()

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-feedCh:
			case <-queryCh:
			}
			st := vm.State()
			select {
			case <-out:
			default:
			}
			select {
			case out <- st:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
