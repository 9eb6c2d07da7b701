package shell

import (
	"strings"

	"github.com/partmart/partmart/internal/api"
	"github.com/partmart/partmart/internal/storage"
)

// CartItems returns a copy of the cart.
func (s *Shell) CartItems() []CartItem {
	if len(s.cart) == 0 {
		return nil
	}
	dup := make([]CartItem, len(s.cart))
	copy(dup, s.cart)
	return dup
}

// CartCount returns the total quantity across all cart rows.
func (s *Shell) CartCount() int {
	var total int
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// AddToCart applies the add optimistically - merging by id rather than
// duplicating the row - and, for authenticated users, returns the backend
// sync Cmd. A well-formed success response replaces the whole cart; any
// failure leaves the optimistic state standing.
func (s *Shell) AddToCart(item CartItem) Cmd {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return nil
	}
	requested := clampQuantity(item.Quantity, item.MaxQuantity)
	item.Quantity = requested

	if i := s.cartIndex(item.ID); i >= 0 {
		existing := &s.cart[i]
		existing.Quantity = clampQuantity(existing.Quantity+requested, existing.MaxQuantity)
	} else {
		s.cart = append(s.cart, item)
	}
	s.persistCart()

	if s.user == nil {
		return nil
	}
	seq := s.nextItemSeq(item.ID)
	gw, ctx := s.gateway, s.ctx
	req := api.AddItemRequest{ID: item.ID, Quantity: requested, Price: item.Price}
	return func() Msg {
		payload, err := gw.AddCartItem(ctx, req)
		return cartSyncMsg{id: req.ID, seq: seq, payload: payload, err: err}
	}
}

// UpdateCartQty sets an item's quantity, clamped to at least 1 and at most
// the item's maximum. Unknown ids are ignored.
func (s *Shell) UpdateCartQty(id string, qty int) Cmd {
	i := s.cartIndex(id)
	if i < 0 {
		return nil
	}
	qty = clampQuantity(qty, s.cart[i].MaxQuantity)
	s.cart[i].Quantity = qty
	s.persistCart()

	if s.user == nil {
		return nil
	}
	seq := s.nextItemSeq(id)
	gw, ctx := s.gateway, s.ctx
	return func() Msg {
		payload, err := gw.UpdateCartItem(ctx, id, qty)
		return cartSyncMsg{id: id, seq: seq, payload: payload, err: err}
	}
}

// RemoveFromCart drops the row with the given id. Removing an absent id is a
// no-op, which makes the operation idempotent.
func (s *Shell) RemoveFromCart(id string) Cmd {
	i := s.cartIndex(id)
	if i < 0 {
		return nil
	}
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	s.persistCart()

	if s.user == nil {
		return nil
	}
	seq := s.nextItemSeq(id)
	gw, ctx := s.gateway, s.ctx
	return func() Msg {
		payload, err := gw.RemoveCartItem(ctx, id)
		return cartSyncMsg{id: id, seq: seq, payload: payload, err: err}
	}
}

// ClearCart empties the cart locally and fires a best-effort backend clear
// whose result is ignored. Pending reconciliations are invalidated so a late
// success cannot resurrect cleared rows.
func (s *Shell) ClearCart() Cmd {
	s.cart = nil
	s.persistCart()
	s.itemSeq = make(map[string]uint64)
	s.fetchSeq++

	if s.user == nil {
		return nil
	}
	gw, ctx := s.gateway, s.ctx
	return func() Msg {
		return cartClearedMsg{err: gw.ClearCart(ctx)}
	}
}

// refreshCartCmd fetches the authoritative cart, used on login and on session
// restore to reconcile the local cart by backend authority rather than by
// merge.
func (s *Shell) refreshCartCmd() Cmd {
	s.fetchSeq++
	seq := s.fetchSeq
	gw, ctx := s.gateway, s.ctx
	return func() Msg {
		payload, err := gw.FetchCart(ctx)
		return cartFetchMsg{seq: seq, payload: payload, err: err}
	}
}

// applyCartSync installs a per-item reconciliation response. Responses that
// are stale (a newer request exists for the same item), failed, or malformed
// leave the optimistic state standing.
func (s *Shell) applyCartSync(m cartSyncMsg) {
	if m.seq == 0 || m.seq != s.itemSeq[m.id] {
		return
	}
	if m.err != nil || m.payload == nil || m.payload.Items == nil {
		return
	}
	s.cart = cartFromPayload(m.payload)
	s.persistCart()
}

// applyCartFetch installs a whole-cart fetch response. The server is
// authoritative on success, even when it says the cart is empty.
func (s *Shell) applyCartFetch(m cartFetchMsg) {
	if m.seq != s.fetchSeq {
		return
	}
	if m.err != nil || m.payload == nil || m.payload.Items == nil {
		return
	}
	s.cart = cartFromPayload(m.payload)
	s.persistCart()
}

func cartFromPayload(payload *api.CartPayload) []CartItem {
	items := make([]CartItem, 0, len(payload.Items))
	for _, line := range payload.Items {
		items = append(items, CartItem{
			ID:       string(line.ID),
			Name:     line.Name,
			Price:    line.Price,
			Brand:    line.Brand,
			Image:    line.Image,
			Quantity: line.Quantity,
		})
	}
	return items
}

func (s *Shell) cartIndex(id string) int {
	for i, item := range s.cart {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Shell) nextItemSeq(id string) uint64 {
	s.itemSeq[id]++
	return s.itemSeq[id]
}

func (s *Shell) persistCart() {
	items := s.cart
	if items == nil {
		items = []CartItem{}
	}
	storage.WriteJSON(s.store, storage.KeyCart, items)
}

// WishlistItems returns a copy of the wishlist.
func (s *Shell) WishlistItems() []WishlistItem {
	if len(s.wishlist) == 0 {
		return nil
	}
	dup := make([]WishlistItem, len(s.wishlist))
	copy(dup, s.wishlist)
	return dup
}

// AddToWishlist appends the item unless its id is already present;
// first write wins.
func (s *Shell) AddToWishlist(item WishlistItem) {
	if s.IsInWishlist(item.ID) {
		return
	}
	s.wishlist = append(s.wishlist, item)
}

// RemoveFromWishlist drops the row with the given id.
func (s *Shell) RemoveFromWishlist(id string) {
	for i, item := range s.wishlist {
		if item.ID == id {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return
		}
	}
}

// IsInWishlist reports membership by id.
func (s *Shell) IsInWishlist(id string) bool {
	for _, item := range s.wishlist {
		if item.ID == id {
			return true
		}
	}
	return false
}
