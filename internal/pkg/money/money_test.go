package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 20.0, Round2(19.999999), "float artifact must round up, not truncate")
	assert.Equal(t, 110.0, Round2(100*1.1))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, -0.01, Round2(-0.005), "half away from zero on negatives")
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 25.0, Round2(25.0))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFormatKnownCurrency(t *testing.T) {
	got := Format(19.99, "USD")
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "19.99")
}

func TestFormatUnknownCurrencyFallsBack(t *testing.T) {
	assert.Equal(t, "ABC 12.34", Format(12.34, "abc"))
	assert.Equal(t, "ABC 20.00", Format(19.999999, "ABC"), "fallback rounds too")
}
