package ui

import (
	"fmt"
	"strings"

	"github.com/partmart/partmart/internal/shell"
)

// renderHeader renders the top status bar: logo, identity, cart badge, page.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("partmart")}

	if u := m.shell.User(); u != nil {
		parts = append(parts, styles.SuccessText.Render("● ")+styles.Text.Render(u.DisplayName()))
		if u.Role != shell.RoleCustomer {
			parts = append(parts, styles.AccentText.Render(string(u.Role)))
		}
	} else if m.shell.SessionChecked() {
		parts = append(parts, styles.MutedText.Render(m.tr("Guest")))
	} else {
		parts = append(parts, styles.WarningText.Render("..."))
	}

	if count := m.shell.CartCount(); count > 0 {
		parts = append(parts, styles.MutedText.Render(m.tr("Cart")+":")+" "+styles.Text.Render(fmt.Sprintf("%d", count)))
	}

	page := m.shell.CurrentPage()
	if page != "" {
		parts = append(parts, styles.AccentText.Render(page))
	}
	if prev := m.shell.PrevPage(); prev != "" {
		parts = append(parts, styles.FaintText.Render("← "+prev))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the key hints bar for the active page.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.shell.CurrentPage() {
	case shell.PageCart:
		commands = []cmd{
			{"+/-", "Qty"},
			{"x", "Remove"},
			{"X", "Clear"},
			{"o", "Checkout"},
			{"p", "Parts"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case shell.PageWishlist:
		commands = []cmd{
			{"enter", "To cart"},
			{"x", "Remove"},
			{"p", "Parts"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case shell.PageLogin:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Sign in"},
			{"esc", "Back"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"enter", "Add to cart"},
			{"*", "Wishlist"},
			{"c", "Cart"},
			{"w", "Wishlist"},
			{"a", "Account"},
			{"esc", "Back"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments, styles.AccentText.Render(c.key)+":"+styles.MutedText.Render(m.tr(c.desc)))
	}

	// Theme and locale indicators
	segments = append(segments, styles.AccentText.Render("T")+":"+styles.FaintText.Render(m.theme.Name))
	segments = append(segments, styles.AccentText.Render("L")+":"+styles.FaintText.Render(m.locale))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}
