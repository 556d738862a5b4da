package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveGuestIDDeterministic(t *testing.T) {
	a := DeriveGuestID("session-token-abc")
	b := DeriveGuestID("session-token-abc")
	assert.Equal(t, a, b, "same token must derive the same identity")
}

func TestDeriveGuestIDDistinctTokens(t *testing.T) {
	seen := map[string]bool{}
	tokens := []string{"alpha", "beta", "gamma", "alpha ", "Alpha", ""}
	for _, token := range tokens {
		id := DeriveGuestID(token).String()
		assert.False(t, seen[id], "token %q collided", token)
		seen[id] = true
	}
}

func TestDeriveGuestIDKnownValue(t *testing.T) {
	// First 16 bytes of sha256("hello"), laid out as a UUID.
	assert.Equal(t, "2cf24dba-5fb0-a30e-26e8-3b2ac5b9e29e", DeriveGuestID("hello").String())
}
