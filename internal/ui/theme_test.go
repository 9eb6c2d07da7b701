package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesCoverMarketplaceStatuses(t *testing.T) {
	statuses := []string{"in_stock", "low_stock", "out_of_stock", "pending", "paid", "shipped", "delivered", "cancelled"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range statuses {
			if th.StatusColors[status] == "" {
				t.Errorf("theme %s missing status color %q", name, status)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"brake pads", 20, "brake pads"},
		{"brake pads", 7, "brak..."},
		{"brake pads", 3, "bra"},
		{"brake pads", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aya.hassan@example.com", "Aya Hassan"},
		{"omar_k@example.com", "Omar K"},
		{"plain@example.com", "Plain"},
		{"noatsign", "Noatsign"},
	}
	for _, tt := range tests {
		if got := displayNameFromEmail(tt.in); got != tt.want {
			t.Errorf("displayNameFromEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	m := Model{locale: "ar"}
	if got := m.tr("Cart"); got == "Cart" {
		t.Fatalf("tr(Cart) not translated in Arabic locale")
	}
	if got := m.tr("untranslated string"); got != "untranslated string" {
		t.Fatalf("tr fallback = %q", got)
	}

	m.locale = "en"
	if got := m.tr("Cart"); got != "Cart" {
		t.Fatalf("tr(Cart) in English = %q", got)
	}
}
