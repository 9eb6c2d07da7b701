package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/partmart/partmart/internal/shell"
)

// catalogItem is a browsable part. The real catalog lives behind the product
// service; this static sample exercises cart and wishlist flows end to end.
type catalogItem struct {
	ID       string
	Name     string
	Brand    string
	Category string
	Price    float64
	MaxQty   int
	Stock    string
}

func demoCatalog() []catalogItem {
	return []catalogItem{
		{ID: "bp-3401", Name: "Ceramic Brake Pads (Front)", Brand: "Bosch", Category: "brakes", Price: 64.50, MaxQty: 10, Stock: "in_stock"},
		{ID: "of-1020", Name: "Oil Filter", Brand: "Mann", Category: "filters", Price: 11.90, Stock: "in_stock"},
		{ID: "af-2210", Name: "Air Filter", Brand: "K&N", Category: "filters", Price: 42.00, Stock: "low_stock"},
		{ID: "sp-8845", Name: "Spark Plug Set (4)", Brand: "NGK", Category: "ignition", Price: 28.75, MaxQty: 6, Stock: "in_stock"},
		{ID: "wb-5530", Name: "Wiper Blades 24\"", Brand: "Valeo", Category: "exterior", Price: 17.20, Stock: "in_stock"},
		{ID: "bt-7700", Name: "AGM Battery 70Ah", Brand: "Varta", Category: "electrical", Price: 189.00, MaxQty: 2, Stock: "low_stock"},
		{ID: "cl-9106", Name: "Coolant Concentrate 1L", Brand: "Febi", Category: "fluids", Price: 9.40, Stock: "out_of_stock"},
		{ID: "tm-4415", Name: "Timing Belt Kit", Brand: "Gates", Category: "engine", Price: 132.60, MaxQty: 3, Stock: "in_stock"},
	}
}

// visibleCatalog applies the pending search filters, consuming them on the
// first render after a search landed.
func (m *Model) visibleCatalog() []catalogItem {
	if filters, ok := m.shell.TakeSearchFilters(); ok {
		m.activeFilter = filters
		m.selectedRow = 0
	}
	term := strings.ToLower(strings.TrimSpace(m.activeFilter.Term))
	category := strings.ToLower(strings.TrimSpace(m.activeFilter.PartCategory))
	if term == "" && category == "" {
		return m.catalog
	}
	out := make([]catalogItem, 0, len(m.catalog))
	for _, item := range m.catalog {
		if category != "" && item.Category != category {
			continue
		}
		if term != "" {
			hay := strings.ToLower(item.Name + " " + item.Brand + " " + item.ID)
			if !strings.Contains(hay, term) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visibleCatalog()
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
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		m.refreshBody()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		if len(items) > 0 {
			m.selectedRow = len(items) - 1
		}
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if m.selectedRow >= len(items) {
			return m, nil
		}
		item := items[m.selectedRow]
		if item.Stock == "out_of_stock" {
			return m, nil
		}
		cmd := m.shell.AddToCart(shell.CartItem{
			ID:          item.ID,
			Name:        item.Name,
			Brand:       item.Brand,
			Price:       item.Price,
			Quantity:    1,
			MaxQuantity: item.MaxQty,
			InStock:     true,
		})
		m.afterShell()
		return m, toCmd(cmd)

	case key.Matches(msg, m.keys.AddWish):
		if m.selectedRow >= len(items) {
			return m, nil
		}
		item := items[m.selectedRow]
		if m.shell.IsInWishlist(item.ID) {
			m.shell.RemoveFromWishlist(item.ID)
		} else {
			m.shell.AddToWishlist(shell.WishlistItem{
				ID:    item.ID,
				Name:  item.Name,
				Brand: item.Brand,
				Price: item.Price,
			})
		}
		m.refreshBody()
		return m, nil
	}
	return m.handleViewportKey(msg)
}

func (m *Model) renderCatalog() string {
	styles := m.theme.Styles()
	items := m.visibleCatalog()
	var b strings.Builder

	title := m.tr("Parts")
	if m.activeFilter.Term != "" {
		title += "  " + styles.AccentText.Render("/"+m.activeFilter.Term)
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")

	if m.searchMode {
		b.WriteString(styles.MutedText.Render(m.tr("Search")))
		b.WriteString(" ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if len(items) == 0 {
		b.WriteString(styles.MutedText.Render(m.tr("No parts match your search.")))
		return b.String()
	}

	for i, item := range items {
		line := fmt.Sprintf("%-28s %-8s %8.2f  ", truncate(item.Name, 28), item.Brand, item.Price)
		badge := styles.StatusStyle(item.Stock).Render(stockLabel(item.Stock))
		wish := "  "
		if m.shell.IsInWishlist(item.ID) {
			wish = styles.WarningText.Render("★ ")
		}
		row := wish + line + badge
		if i == m.selectedRow {
			row = styles.Selected.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func stockLabel(status string) string {
	switch status {
	case "in_stock":
		return "in stock"
	case "low_stock":
		return "low stock"
	case "out_of_stock":
		return "out of stock"
	}
	return status
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
