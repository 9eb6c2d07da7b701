package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/partmart/partmart/internal/shell"
)

// refreshBody re-renders the active page into the viewport.
func (m *Model) refreshBody() {
	if !m.ready {
		return
	}
	m.body.SetContent(m.renderBody())
}

func (m *Model) renderBody() string {
	switch m.shell.CurrentPage() {
	case shell.PageHome:
		return m.renderHome()
	case shell.PageProducts, shell.PageProduct:
		return m.renderCatalog()
	case shell.PageCart:
		return m.renderCart()
	case shell.PageWishlist:
		return m.renderWishlist()
	case shell.PageLogin:
		return m.renderLogin()
	case shell.PageAccount:
		return m.renderAccount()
	default:
		return m.renderPlaceholder(m.shell.CurrentPage())
	}
}

func (m *Model) renderHome() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.tr("Welcome to PartMart")))
	b.WriteString("\n")
	if u := m.shell.User(); u != nil {
		b.WriteString(styles.MutedText.Render(m.tr("Signed in as") + " " + u.DisplayName()))
	} else {
		b.WriteString(styles.MutedText.Render(m.tr("Browsing as guest; your cart is kept on this device.")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderCatalog())
	return b.String()
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.shell.CartItems()
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
		m.refreshBody()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.QtyUp):
		if m.selectedRow < len(items) {
			item := items[m.selectedRow]
			cmd := m.shell.UpdateCartQty(item.ID, item.Quantity+1)
			m.afterShell()
			return m, toCmd(cmd)
		}
	case key.Matches(msg, m.keys.QtyDown):
		if m.selectedRow < len(items) {
			item := items[m.selectedRow]
			cmd := m.shell.UpdateCartQty(item.ID, item.Quantity-1)
			m.afterShell()
			return m, toCmd(cmd)
		}
	case key.Matches(msg, m.keys.Remove):
		if m.selectedRow < len(items) {
			cmd := m.shell.RemoveFromCart(items[m.selectedRow].ID)
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			m.afterShell()
			return m, toCmd(cmd)
		}
	case key.Matches(msg, m.keys.ClearCart):
		cmd := m.shell.ClearCart()
		m.selectedRow = 0
		m.afterShell()
		return m, toCmd(cmd)
	}
	return m.handleViewportKey(msg)
}

func (m *Model) renderCart() string {
	styles := m.theme.Styles()
	items := m.shell.CartItems()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.tr("Cart")))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(styles.MutedText.Render(m.tr("Your cart is empty.")))
		return b.String()
	}

	var total float64
	for i, item := range items {
		total += item.Price * float64(item.Quantity)
		line := fmt.Sprintf("%-28s %-8s x%-3d %9.2f", truncate(item.Name, 28), item.Brand, item.Quantity, item.Price*float64(item.Quantity))
		if i == m.selectedRow {
			line = styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("%s %.2f", m.tr("Total"), total)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(m.tr("+/- quantity, x remove, X clear, o checkout")))
	return b.String()
}

func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.shell.WishlistItems()
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
		m.refreshBody()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if m.selectedRow < len(items) {
			item := items[m.selectedRow]
			cmd := m.shell.AddToCart(shell.CartItem{
				ID:       item.ID,
				Name:     item.Name,
				Brand:    item.Brand,
				Price:    item.Price,
				Quantity: 1,
			})
			m.afterShell()
			return m, toCmd(cmd)
		}
	case key.Matches(msg, m.keys.Remove):
		if m.selectedRow < len(items) {
			m.shell.RemoveFromWishlist(items[m.selectedRow].ID)
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			m.refreshBody()
			return m, nil
		}
	}
	return m.handleViewportKey(msg)
}

func (m *Model) renderWishlist() string {
	styles := m.theme.Styles()
	items := m.shell.WishlistItems()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.tr("Wishlist")))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(styles.MutedText.Render(m.tr("Nothing saved yet.")))
		return b.String()
	}

	for i, item := range items {
		line := fmt.Sprintf("%-28s %-8s %9.2f", truncate(item.Name, 28), item.Brand, item.Price)
		if i == m.selectedRow {
			line = styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(m.tr("enter to add to cart, x to remove")))
	return b.String()
}

func (m *Model) renderAccount() string {
	styles := m.theme.Styles()
	u := m.shell.User()
	if u == nil {
		// The route guard sends guests to login before this renders.
		return styles.MutedText.Render(m.tr("Sign in to see your account."))
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.tr("Account")))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(m.tr("Name")) + "   " + styles.Text.Render(u.DisplayName()) + "\n")
	b.WriteString(styles.MutedText.Render(m.tr("Email")) + "  " + styles.Text.Render(u.Email) + "\n")
	b.WriteString(styles.MutedText.Render(m.tr("Role")) + "   " + styles.Text.Render(string(u.Role)) + "\n")
	if u.Phone != "" {
		b.WriteString(styles.MutedText.Render(m.tr("Phone")) + "  " + styles.Text.Render(u.Phone) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(m.tr("I to sign out")))
	return b.String()
}

func (m *Model) renderPlaceholder(page string) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.tr(pageTitle(page))))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(m.tr("This area is under construction.")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(m.tr("esc to go back")))
	return b.String()
}

func pageTitle(page string) string {
	switch page {
	case shell.PageCheckout:
		return "Checkout"
	case shell.PageOrders:
		return "Orders"
	case shell.PageVendor:
		return "Vendor dashboard"
	case shell.PageAdmin:
		return "Admin"
	case shell.PageRegister:
		return "Register"
	}
	if page == "" {
		return "PartMart"
	}
	return strings.ToUpper(page[:1]) + page[1:]
}
