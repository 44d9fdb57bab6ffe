package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	store.Set("sess-1", "checkout_address", "House 7")
	store.Set("sess-1", "checkout_phone", "01700000000")
	store.Set("sess-2", "checkout_address", "Elsewhere")

	assert.Equal(t, "House 7", store.Get("sess-1", "checkout_address"))
	assert.Equal(t, "Elsewhere", store.Get("sess-2", "checkout_address"))
	assert.Empty(t, store.Get("sess-1", "missing"))

	store.Forget("sess-1", "checkout_address", "checkout_phone")
	assert.Empty(t, store.Get("sess-1", "checkout_address"))
	assert.Empty(t, store.Get("sess-1", "checkout_phone"))

	// other sessions untouched
	assert.Equal(t, "Elsewhere", store.Get("sess-2", "checkout_address"))
}
