package shell

import (
	"context"
	"testing"

	"github.com/partmart/partmart/internal/api"
	"github.com/partmart/partmart/internal/storage"
)

// fakeGateway is an in-memory api.Gateway whose responses are set per test.
// Cmds are executed synchronously by the tests, so no locking is needed.
type fakeGateway struct {
	profile    *api.Profile
	profileErr error

	cartPayload   *api.CartPayload
	cartErr       error
	addPayload    *api.CartPayload
	addErr        error
	updatePayload *api.CartPayload
	updateErr     error
	removePayload *api.CartPayload
	removeErr     error
	clearErr      error
	logoutErr     error

	fetchCalls  int
	addCalls    []api.AddItemRequest
	updateCalls []updateCall
	removeCalls []string
	clearCalls  int
	logoutCalls int
}

type updateCall struct {
	id  string
	qty int
}

var _ api.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) FetchProfile(ctx context.Context) (*api.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeGateway) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeGateway) FetchCart(ctx context.Context) (*api.CartPayload, error) {
	f.fetchCalls++
	return f.cartPayload, f.cartErr
}

func (f *fakeGateway) AddCartItem(ctx context.Context, req api.AddItemRequest) (*api.CartPayload, error) {
	f.addCalls = append(f.addCalls, req)
	return f.addPayload, f.addErr
}

func (f *fakeGateway) UpdateCartItem(ctx context.Context, id string, quantity int) (*api.CartPayload, error) {
	f.updateCalls = append(f.updateCalls, updateCall{id: id, qty: quantity})
	return f.updatePayload, f.updateErr
}

func (f *fakeGateway) RemoveCartItem(ctx context.Context, id string) (*api.CartPayload, error) {
	f.removeCalls = append(f.removeCalls, id)
	return f.removePayload, f.removeErr
}

func (f *fakeGateway) ClearCart(ctx context.Context) error {
	f.clearCalls++
	return f.clearErr
}

// countingScroller records ScrollToTop calls.
type countingScroller struct {
	calls int
}

func (c *countingScroller) ScrollToTop() { c.calls++ }

// run executes a Cmd synchronously and applies its Msg, draining any
// follow-up Cmds the same way. Nil Cmds are fine.
func run(t *testing.T, s *Shell, cmds ...Cmd) {
	t.Helper()
	for len(cmds) > 0 {
		cmd := cmds[0]
		cmds = cmds[1:]
		if cmd == nil {
			continue
		}
		if next := s.Apply(cmd()); next != nil {
			cmds = append(cmds, next)
		}
	}
}

// seedUser persists a complete user and restores the session so the shell is
// authenticated without going through a login screen.
func seedUser(t *testing.T, store storage.Store, role Role) User {
	t.Helper()
	u := User{ID: "u1", Name: "Aya", Email: "aya@example.com", Role: role}
	storage.WriteJSON(store, storage.KeyUser, u)
	return u
}

func newGuestShell(t *testing.T, gw *fakeGateway) (*Shell, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	s := New(Options{Store: store, Gateway: gw, DefaultPage: PageHome})
	run(t, s, s.RestoreSession()...)
	if s.User() != nil {
		t.Fatalf("guest shell has a user")
	}
	return s, store
}

func newUserShell(t *testing.T, gw *fakeGateway, role Role) (*Shell, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	seedUser(t, store, role)
	s := New(Options{Store: store, Gateway: gw, DefaultPage: PageHome})
	// Restore only; the profile refresh Cmd is intentionally not executed so
	// tests control exactly which responses arrive.
	for _, cmd := range s.RestoreSession() {
		_ = cmd
	}
	if s.User() == nil {
		t.Fatalf("seeded user did not restore")
	}
	return s, store
}
