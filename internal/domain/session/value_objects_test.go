//go:build unit

package session_test

import (
	"strings"
	"testing"

	"checkout-service/internal/domain/session"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid email passes", input: "buyer@example.com", want: "buyer@example.com"},
		{name: "trimmed and lowercased", input: "  Buyer@Example.COM  ", want: "buyer@example.com"},
		{name: "missing at sign discarded", input: "buyerexample.com", want: ""},
		{name: "missing tld discarded", input: "buyer@example", want: ""},
		{name: "empty discarded", input: "", want: ""},
		{name: "whitespace only discarded", input: "   ", want: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, session.SanitizeEmail(c.input))
		})
	}
}

func TestSanitizeFullName(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "Ada Lovelace", session.SanitizeFullName("  Ada Lovelace  "))
	})

	t.Run("empty after trim is discarded", func(t *testing.T) {
		assert.Equal(t, "", session.SanitizeFullName("   "))
	})

	t.Run("truncates to 100 characters", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		got := session.SanitizeFullName(long)
		assert.Len(t, got, 100)
	})
}

func TestBuyerMerge(t *testing.T) {
	base := session.Buyer{Email: "buyer@example.com", FullName: "Ada Lovelace"}

	t.Run("absent fields are preserved", func(t *testing.T) {
		merged := base.Merge(session.BuyerPatch{})
		assert.Equal(t, base, merged)
	})

	t.Run("present fields are replaced", func(t *testing.T) {
		email := "Other@Example.com"
		merged := base.Merge(session.BuyerPatch{Email: &email})
		assert.Equal(t, "other@example.com", merged.Email)
		assert.Equal(t, "Ada Lovelace", merged.FullName)
	})

	t.Run("invalid submitted email keeps existing value", func(t *testing.T) {
		email := "not-an-email"
		merged := base.Merge(session.BuyerPatch{Email: &email})
		assert.Equal(t, "buyer@example.com", merged.Email)
	})

	t.Run("blank submitted name keeps existing value", func(t *testing.T) {
		name := "   "
		merged := base.Merge(session.BuyerPatch{FullName: &name})
		assert.Equal(t, "Ada Lovelace", merged.FullName)
	})
}

func TestBuyerIsComplete(t *testing.T) {
	assert.False(t, session.Buyer{}.IsComplete())
	assert.False(t, session.Buyer{Email: "buyer@example.com"}.IsComplete())
	assert.False(t, session.Buyer{FullName: "Ada Lovelace"}.IsComplete())
	assert.True(t, session.Buyer{Email: "buyer@example.com", FullName: "Ada Lovelace"}.IsComplete())
}
