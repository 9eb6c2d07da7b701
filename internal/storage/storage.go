package storage

import "encoding/json"

// Store is the synchronous key/value byte store backing session, cart, and
// navigation recovery. Implementations never surface errors: a failed read is
// an absent value and a failed write is a silent no-op, so callers can treat
// every method as infallible.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

// Well-known keys. Values are JSON-serialized.
const (
	KeyUser     = "session.user"
	KeyToken    = "session.token"
	KeyCart     = "cart.items"
	KeyLastPage = "nav.last_page"
	KeyLocale   = "prefs.locale"
	KeyTheme    = "prefs.theme"
)

// ReadJSON decodes the value stored under key into dest. It reports false when
// the key is absent or the stored bytes do not parse; dest is left untouched
// in that case.
func ReadJSON(s Store, key string, dest any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// WriteJSON encodes v and stores it under key. Marshal failures drop the write.
func WriteJSON(s Store, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Set(key, raw)
}
