package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Locale     key.Binding
	Back       key.Binding

	// Page switching
	GoHome     key.Binding
	GoProducts key.Binding
	GoCart     key.Binding
	GoWishlist key.Binding
	GoAccount  key.Binding
	GoCheckout key.Binding
	GoOrders   key.Binding
	GoLogin    key.Binding
	Logout     key.Binding

	// Catalog actions
	AddToCart    key.Binding
	AddWish      key.Binding
	Search       key.Binding
	QtyUp        key.Binding
	QtyDown      key.Binding
	Remove       key.Binding
	ClearCart    key.Binding
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Locale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle locale"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),

		GoHome: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Home"),
		),
		GoProducts: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Products"),
		),
		GoCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cart"),
		),
		GoWishlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Wishlist"),
		),
		GoAccount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Account"),
		),
		GoCheckout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Checkout"),
		),
		GoOrders: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "Orders"),
		),
		GoLogin: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Sign in"),
		),
		Logout: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "Sign out"),
		),

		AddToCart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Add to cart"),
		),
		AddWish: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "Toggle wishlist"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		QtyUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Quantity up"),
		),
		QtyDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Quantity down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Clear cart"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}
