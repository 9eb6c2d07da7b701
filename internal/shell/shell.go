package shell

import (
	"context"
	"strings"

	"github.com/partmart/partmart/internal/api"
	"github.com/partmart/partmart/internal/storage"
)

// Msg is the result of an asynchronous shell effect. Msgs are produced by
// Cmds and consumed by Apply.
type Msg interface{ shellMsg() }

// Cmd is a deferred effect: the event loop runs it off the main goroutine and
// feeds the resulting Msg back into Apply. A nil Cmd means nothing to do.
type Cmd func() Msg

type scrollMsg struct{}

type profileMsg struct {
	seq     uint64
	profile *api.Profile
	err     error
}

type cartSyncMsg struct {
	id      string
	seq     uint64
	payload *api.CartPayload
	err     error
}

type cartFetchMsg struct {
	seq     uint64
	payload *api.CartPayload
	err     error
}

type logoutMsg struct{ err error }

type cartClearedMsg struct{ err error }

func (scrollMsg) shellMsg()      {}
func (profileMsg) shellMsg()     {}
func (cartSyncMsg) shellMsg()    {}
func (cartFetchMsg) shellMsg()   {}
func (logoutMsg) shellMsg()      {}
func (cartClearedMsg) shellMsg() {}

// AddressBar mirrors the active page name into the embedding environment's
// address parameter and supplies the deep-linked page on load.
type AddressBar interface {
	Page() string
	SetPage(page string)
}

// MemBar is the in-process AddressBar used by the TUI and by tests.
type MemBar struct {
	page string
}

// NewMemBar returns a MemBar seeded with the given page parameter.
func NewMemBar(page string) *MemBar { return &MemBar{page: page} }

// Page returns the current page parameter.
func (b *MemBar) Page() string { return b.page }

// SetPage records the page parameter; an empty page removes it.
func (b *MemBar) SetPage(page string) { b.page = page }

// Scroller resets the view to its origin after a page transition.
type Scroller interface{ ScrollToTop() }

type nopScroller struct{}

func (nopScroller) ScrollToTop() {}

// Navigator is the navigation capability handed to screens.
type Navigator interface {
	CurrentPage() string
	PrevPage() string
	Navigate(page string) Cmd
	GoBack() Cmd
	Search(filters SearchFilters) Cmd
	TakeSearchFilters() (SearchFilters, bool)
}

// SessionStore is the identity capability handed to screens.
type SessionStore interface {
	User() *User
	SessionChecked() bool
	CompleteLogin(u User, token string) []Cmd
	Logout() []Cmd
}

// CartStore is the cart capability handed to screens.
type CartStore interface {
	CartItems() []CartItem
	CartCount() int
	AddToCart(item CartItem) Cmd
	UpdateCartQty(id string, qty int) Cmd
	RemoveFromCart(id string) Cmd
	ClearCart() Cmd
}

// WishlistStore is the wishlist capability handed to screens.
type WishlistStore interface {
	WishlistItems() []WishlistItem
	AddToWishlist(item WishlistItem)
	RemoveFromWishlist(id string)
	IsInWishlist(id string) bool
}

var (
	_ Navigator     = (*Shell)(nil)
	_ SessionStore  = (*Shell)(nil)
	_ CartStore     = (*Shell)(nil)
	_ WishlistStore = (*Shell)(nil)
)

// Shell owns all cross-page state: the navigation stack, the current user,
// and the cart/wishlist collections. It is constructed once at startup and
// passed to screens through the narrow capability interfaces.
//
// Shell is single-loop: mutators and Apply must be called from the event
// loop goroutine. Cmds returned by mutators are safe to run concurrently -
// they only touch the gateway and captured values, never the Shell.
type Shell struct {
	ctx     context.Context
	store   storage.Store
	gateway api.Gateway
	bar     AddressBar
	scroll  Scroller
	routes  map[string]Route

	currentPage string
	history     []string
	prevPage    string
	returnTo    string

	user           *User
	sessionChecked bool
	sessionSeq     uint64
	token          string

	cart     []CartItem
	wishlist []WishlistItem
	filters  *SearchFilters

	itemSeq  map[string]uint64
	fetchSeq uint64
	closed   bool
}

// Options configure a Shell.
type Options struct {
	Context     context.Context
	Store       storage.Store
	Gateway     api.Gateway
	Bar         AddressBar
	Scroller    Scroller
	Routes      map[string]Route
	DefaultPage string
}

// New builds a Shell and seeds it from the address bar and the persisted
// store: current page from the address parameter (default page when absent),
// previous page from the last-page key, cart from the cart key, token from
// the token key. The session itself is restored by RestoreSession.
func New(opts Options) *Shell {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemStore()
	}
	bar := opts.Bar
	if bar == nil {
		bar = NewMemBar("")
	}
	scroll := opts.Scroller
	if scroll == nil {
		scroll = nopScroller{}
	}
	routes := opts.Routes
	if routes == nil {
		routes = DefaultRoutes()
	}

	s := &Shell{
		ctx:     ctx,
		store:   store,
		gateway: opts.Gateway,
		bar:     bar,
		scroll:  scroll,
		routes:  routes,
		itemSeq: make(map[string]uint64),
	}

	if page := strings.TrimSpace(bar.Page()); page != "" {
		s.currentPage = page
	} else {
		s.currentPage = strings.TrimSpace(opts.DefaultPage)
	}

	var lastPage string
	if storage.ReadJSON(store, storage.KeyLastPage, &lastPage) {
		s.prevPage = lastPage
	}

	var cart []CartItem
	if storage.ReadJSON(store, storage.KeyCart, &cart) {
		for i := range cart {
			cart[i].Quantity = clampQuantity(cart[i].Quantity, cart[i].MaxQuantity)
		}
		s.cart = cart
	}

	var token string
	if storage.ReadJSON(store, storage.KeyToken, &token) {
		s.token = token
	}

	return s
}

// Apply consumes the Msg produced by a Cmd. It may return a follow-up Cmd.
// Msgs arriving after Close are discarded rather than applied to torn-down
// state.
func (s *Shell) Apply(msg Msg) Cmd {
	if s.closed || msg == nil {
		return nil
	}
	switch m := msg.(type) {
	case scrollMsg:
		s.scroll.ScrollToTop()
	case profileMsg:
		return s.applyProfile(m)
	case cartSyncMsg:
		s.applyCartSync(m)
	case cartFetchMsg:
		s.applyCartFetch(m)
	case logoutMsg, cartClearedMsg:
		// Fire-and-forget results; outcome is ignored either way.
	}
	return nil
}

// Close marks the shell torn down. Late-resolving Msgs are discarded; there
// is no cancellation of in-flight requests themselves.
func (s *Shell) Close() {
	s.closed = true
}

// User returns a copy of the current user, or nil for a guest.
func (s *Shell) User() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SessionChecked reports whether the restore-on-load pass has finished.
func (s *Shell) SessionChecked() bool { return s.sessionChecked }

func (s *Shell) scrollRetryCmd() Cmd {
	return func() Msg { return scrollMsg{} }
}
