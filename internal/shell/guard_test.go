package shell

import (
	"testing"

	"github.com/partmart/partmart/internal/storage"
)

func TestDecide(t *testing.T) {
	routes := DefaultRoutes()
	customer := &User{ID: "u1", Name: "Aya", Email: "a@example.com", Role: RoleCustomer}
	admin := &User{ID: "u2", Name: "Omar", Email: "o@example.com", Role: RoleAdmin}

	tests := []struct {
		name    string
		page    string
		user    *User
		checked bool
		want    Decision
	}{
		{"unchecked session never decides", PageAdmin, nil, false, DecisionAllow},
		{"unknown page is open", "mystery", nil, true, DecisionAllow},
		{"open route", PageProducts, nil, true, DecisionAllow},
		{"auth route without user", PageCheckout, nil, true, DecisionLogin},
		{"auth route with user", PageCheckout, customer, true, DecisionAllow},
		{"role restricted, wrong role", PageAdmin, customer, true, DecisionHome},
		{"role restricted, allowed role", PageAdmin, admin, true, DecisionAllow},
		{"vendor page admits admin", PageVendor, admin, true, DecisionAllow},
		{"vendor page rejects customer", PageVendor, customer, true, DecisionHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(routes, tt.page, tt.user, tt.checked); got != tt.want {
				t.Errorf("Decide(%q) = %v, want %v", tt.page, got, tt.want)
			}
		})
	}
}

func TestShell_AuthRouteRedirectsToLoginAndRecordsReturnTo(t *testing.T) {
	s, _ := newGuestShell(t, &fakeGateway{})

	run(t, s, s.Navigate(PageCheckout))

	if s.CurrentPage() != PageLogin {
		t.Fatalf("CurrentPage = %q, want %q", s.CurrentPage(), PageLogin)
	}
	if s.ReturnTo() != PageCheckout {
		t.Fatalf("ReturnTo = %q, want %q", s.ReturnTo(), PageCheckout)
	}
}

func TestShell_RoleRestrictedRouteRedirectsHome(t *testing.T) {
	s, _ := newUserShell(t, &fakeGateway{}, RoleCustomer)

	run(t, s, s.Navigate(PageAdmin))

	if s.CurrentPage() != PageHome {
		t.Fatalf("CurrentPage = %q, want %q", s.CurrentPage(), PageHome)
	}
	if s.ReturnTo() != "" {
		t.Fatalf("ReturnTo = %q, want empty for a role downgrade", s.ReturnTo())
	}
}

func TestShell_GuardWaitsForSessionCheck(t *testing.T) {
	// Deep link straight to a protected page: no redirect may happen before
	// the session restore finished, and the redirect must happen right after.
	s := New(Options{Store: storage.NewMemStore(), Gateway: &fakeGateway{}, Bar: NewMemBar(PageCheckout)})

	if s.CurrentPage() != PageCheckout {
		t.Fatalf("CurrentPage before restore = %q, want %q", s.CurrentPage(), PageCheckout)
	}

	run(t, s, s.RestoreSession()...)

	if s.CurrentPage() != PageLogin {
		t.Fatalf("CurrentPage after restore = %q, want %q", s.CurrentPage(), PageLogin)
	}
	if s.ReturnTo() != PageCheckout {
		t.Fatalf("ReturnTo = %q, want %q", s.ReturnTo(), PageCheckout)
	}
}

func TestShell_AllowedNavigationStands(t *testing.T) {
	s, _ := newUserShell(t, &fakeGateway{}, RoleVendor)

	run(t, s, s.Navigate(PageVendor))

	if s.CurrentPage() != PageVendor {
		t.Fatalf("CurrentPage = %q, want %q", s.CurrentPage(), PageVendor)
	}
}

func TestCompleteLogin_ReturnsToInterruptedPage(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newGuestShell(t, gw)

	run(t, s, s.Navigate(PageCheckout))
	if s.CurrentPage() != PageLogin {
		t.Fatalf("setup: CurrentPage = %q, want login", s.CurrentPage())
	}

	u := User{ID: "u1", Name: "Aya", Email: "aya@example.com", Role: RoleCustomer}
	run(t, s, s.CompleteLogin(u, "")...)

	if s.CurrentPage() != PageCheckout {
		t.Fatalf("CurrentPage = %q, want %q", s.CurrentPage(), PageCheckout)
	}
	if s.ReturnTo() != "" {
		t.Fatalf("ReturnTo = %q, want cleared", s.ReturnTo())
	}
}
