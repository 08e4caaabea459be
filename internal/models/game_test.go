package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLeavesDecimalJSONDefault(t *testing.T) {
	game := Game{Price: decimal.RequireFromString("19.99")}

	raw, err := json.Marshal(game.Price)
	require.NoError(t, err)

	assert.False(t, decimal.MarshalJSONWithoutQuotes)
	assert.Equal(t, `"19.99"`, string(raw))
}
