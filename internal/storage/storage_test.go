package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, ok := store.Get(KeyCart); ok {
		t.Fatalf("Get on empty store reported a value")
	}

	store.Set(KeyCart, []byte(`[{"id":"p1"}]`))
	raw, ok := store.Get(KeyCart)
	if !ok {
		t.Fatalf("Get after Set reported absent")
	}
	if string(raw) != `[{"id":"p1"}]` {
		t.Fatalf("Get returned %q", raw)
	}

	store.Remove(KeyCart)
	if _, ok := store.Get(KeyCart); ok {
		t.Fatalf("Get after Remove reported a value")
	}
	// Removing twice is fine.
	store.Remove(KeyCart)
}

func TestFileStore_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewFileStore(dir)

	store.Set(KeyLastPage, []byte(`"products"`))

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("state dir not created: %v", err)
	}
	if raw, ok := store.Get(KeyLastPage); !ok || string(raw) != `"products"` {
		t.Fatalf("Get = %q, %v", raw, ok)
	}
}

func TestFileStore_UnwritableDirIsSilent(t *testing.T) {
	// A state dir path that collides with an existing file cannot be created;
	// writes must be dropped without panicking and reads must report absent.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	store := NewFileStore(blocker)
	store.Set(KeyUser, []byte(`{}`))
	if _, ok := store.Get(KeyUser); ok {
		t.Fatalf("Get reported a value after a failed write")
	}
	store.Remove(KeyUser)
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"session.user", "session.user"},
		{"nav.last_page", "nav.last_page"},
		{"weird/key with spaces", "weird_key_with_spaces"},
		{"../../escape", ".._.._escape"},
	}
	for _, tt := range tests {
		if got := sanitizeKey(tt.in); got != tt.want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadJSON_CorruptValueReportsAbsent(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyUser, []byte("{not-json"))

	var dest map[string]any
	if ReadJSON(store, KeyUser, &dest) {
		t.Fatalf("ReadJSON succeeded on corrupt value")
	}
	if dest != nil {
		t.Fatalf("dest mutated on failed read: %#v", dest)
	}
}

func TestWriteJSON_ReadJSON(t *testing.T) {
	store := NewMemStore()

	type payload struct {
		Page string `json:"page"`
		N    int    `json:"n"`
	}
	WriteJSON(store, KeyLastPage, payload{Page: "cart", N: 2})

	var got payload
	if !ReadJSON(store, KeyLastPage, &got) {
		t.Fatalf("ReadJSON reported absent after WriteJSON")
	}
	if got.Page != "cart" || got.N != 2 {
		t.Fatalf("round trip = %#v", got)
	}
}

func TestMemStore_CopiesValues(t *testing.T) {
	store := NewMemStore()
	value := []byte(`"en"`)
	store.Set(KeyLocale, value)
	value[1] = 'X'

	raw, ok := store.Get(KeyLocale)
	if !ok || string(raw) != `"en"` {
		t.Fatalf("stored value shared caller's backing array: %q", raw)
	}

	raw[1] = 'Y'
	again, _ := store.Get(KeyLocale)
	if string(again) != `"en"` {
		t.Fatalf("returned value shared store's backing array: %q", again)
	}
}
