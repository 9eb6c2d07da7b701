package api

import (
	"encoding/json"
	"fmt"
)

// Profile is the backend's view of the current account.
type Profile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	MiddleName  string   `json:"middleName"`
	LastName    string   `json:"lastName"`
	Name        string   `json:"name"`
	Roles       []string `json:"roles"`
	Role        string   `json:"role"`
	PhoneNumber string   `json:"phoneNumber"`
	Avatar      string   `json:"avatar"`
}

// CartPayload is the success shape shared by every cart endpoint. A nil Items
// slice means the response was malformed and must not replace local state.
type CartPayload struct {
	Items []CartLine `json:"items"`
}

// CartLine is one cart row as the backend reports it.
type CartLine struct {
	ID       FlexID  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Brand    string  `json:"brand"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// AddItemRequest is the body of the add-cart-item call.
type AddItemRequest struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// FlexID tolerates the backend's inconsistent item ids: some endpoints return
// them as JSON strings, others as numbers. Either way it lands as a string.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}
	return fmt.Errorf("cart item id: unsupported JSON value %s", b)
}
