package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFromPoolEmpty(t *testing.T) {
	_, err := SelectFromPool(nil)
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = SelectFromPool([]string{})
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestSelectFromPoolCoversAllEntries(t *testing.T) {
	pool := []string{"a", "b", "c"}
	counts := map[string]int{}

	for i := 0; i < 3000; i++ {
		msg, err := SelectFromPool(pool)
		require.NoError(t, err)
		require.Contains(t, pool, msg)
		counts[msg]++
	}

	// Roughly uniform: each entry should land well clear of zero.
	for _, entry := range pool {
		assert.Greater(t, counts[entry], 500, "entry %q starved", entry)
	}
}

func TestRenderTemplate(t *testing.T) {
	assert.Equal(t, "Asr ends soon! Asr!", RenderTemplate("{prayer} ends soon! {prayer}!", "Asr"))
	assert.Equal(t, "no placeholder", RenderTemplate("no placeholder", "Asr"))
}

func TestCatalogStartMessage(t *testing.T) {
	catalog := NewMessageCatalog()

	msg, err := catalog.StartMessage("Fajr")
	require.NoError(t, err)
	assert.Contains(t, prayerStartMessages["Fajr"], msg)

	_, err = catalog.StartMessage("NotAPrayer")
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestCatalogEndingMessage(t *testing.T) {
	catalog := NewMessageCatalog()

	msg, err := catalog.EndingMessage("Maghrib")
	require.NoError(t, err)
	assert.Contains(t, msg, "Maghrib")
	assert.NotContains(t, msg, prayerPlaceholder)
}

func TestCatalogDuaMessage(t *testing.T) {
	catalog := NewMessageCatalog()

	for _, slot := range []string{"morning", "midday", "evening", "night"} {
		msg, err := catalog.DuaMessage(slot)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(msg))
	}

	_, err := catalog.DuaMessage("noon")
	assert.ErrorIs(t, err, ErrEmptyPool)
}
