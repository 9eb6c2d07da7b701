package shell

import "strings"

// Role is the application-side role of an authenticated user.
type Role string

// Known roles. Anything the backend sends outside this set maps to customer.
const (
	RoleCustomer   Role = "customer"
	RoleVendor     Role = "vendor"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

// RoleFromBackend maps a backend role string to an application Role.
func RoleFromBackend(name string) Role {
	switch strings.TrimSpace(name) {
	case "Admin":
		return RoleAdmin
	case "Merchant":
		return RoleVendor
	case "Technician":
		return RoleTechnician
	case "Customer":
		return RoleCustomer
	default:
		return RoleCustomer
	}
}

func validRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

// User is the current identity. The zero value is never stored; absence of a
// user is expressed as a nil pointer.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	FirstName  string `json:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// DisplayName joins the name parts with single spaces, falling back to Name
// with any trailing literal "User" seed-data suffix stripped.
func (u User) DisplayName() string {
	if name := joinNameParts(u.FirstName, u.MiddleName, u.LastName); name != "" {
		return name
	}
	return stripSeedSuffix(u.Name)
}

func joinNameParts(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			joined = append(joined, trimmed)
		}
	}
	return strings.Join(joined, " ")
}

// stripSeedSuffix removes a trailing literal "User" left behind by upstream
// seed accounts ("Ahmed User" -> "Ahmed").
func stripSeedSuffix(name string) string {
	trimmed := strings.TrimSpace(name)
	if strings.HasSuffix(trimmed, "User") {
		return strings.TrimSpace(strings.TrimSuffix(trimmed, "User"))
	}
	return trimmed
}

// defaultMaxQuantity caps cart quantities for items that don't declare a
// per-item maximum.
const defaultMaxQuantity = 99

// CartItem is one cart row. Quantity stays within [1, MaxQuantity or 99] on
// every local mutation; at most one row exists per ID.
type CartItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	PartNumber    string  `json:"partNumber,omitempty"`
	Quantity      int     `json:"quantity"`
	InStock       bool    `json:"inStock,omitempty"`
	MaxQuantity   int     `json:"maxQuantity,omitempty"`
}

func clampQuantity(qty, maxQty int) int {
	if maxQty <= 0 {
		maxQty = defaultMaxQuantity
	}
	if qty < 1 {
		return 1
	}
	if qty > maxQty {
		return maxQty
	}
	return qty
}

// WishlistItem is one wishlist row; at most one row exists per ID.
type WishlistItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	PartNumber    string  `json:"partNumber,omitempty"`
	InStock       bool    `json:"inStock,omitempty"`
}

// SearchFilters is the transient cross-page parameter carried from a search
// trigger (hero search) to the catalog screen. It is never persisted.
type SearchFilters struct {
	Term         string
	CarType      string
	Model        string
	PartCategory string
}

// Route is a static route-table entry.
type Route struct {
	RequiresAuth bool
	AllowedRoles []Role
}

// Page names known to the default route table.
const (
	PageHome     = "home"
	PageProducts = "products"
	PageProduct  = "product"
	PageCart     = "cart"
	PageCheckout = "checkout"
	PageWishlist = "wishlist"
	PageLogin    = "login"
	PageRegister = "register"
	PageAccount  = "account"
	PageOrders   = "orders"
	PageVendor   = "vendor"
	PageAdmin    = "admin"
)

// DefaultRoutes returns the standard route table. The table is not mutated at
// runtime; pages missing from it are open navigation.
func DefaultRoutes() map[string]Route {
	return map[string]Route{
		PageHome:     {},
		PageProducts: {},
		PageProduct:  {},
		PageCart:     {},
		PageWishlist: {},
		PageLogin:    {},
		PageRegister: {},
		PageCheckout: {RequiresAuth: true},
		PageAccount:  {RequiresAuth: true},
		PageOrders:   {RequiresAuth: true},
		PageVendor:   {RequiresAuth: true, AllowedRoles: []Role{RoleVendor, RoleAdmin}},
		PageAdmin:    {RequiresAuth: true, AllowedRoles: []Role{RoleAdmin}},
	}
}
