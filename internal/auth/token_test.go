package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return raw
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "empty token",
			raw:  "",
			want: false,
		},
		{
			name: "opaque token",
			raw:  "not-a-jwt-at-all",
			want: false,
		},
		{
			name: "future expiry",
			raw:  signedToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(time.Hour).Unix()}),
			want: false,
		},
		{
			name: "past expiry",
			raw:  signedToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(-time.Hour).Unix()}),
			want: true,
		},
		{
			name: "no exp claim",
			raw:  signedToken(t, jwt.MapClaims{"sub": "u1"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expired(tt.raw, now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
