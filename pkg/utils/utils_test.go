package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 3.14, RoundWithTwoDecimalPlace(3.14159))
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.675000001))
	assert.Equal(t, -1.5, RoundWithTwoDecimalPlace(-1.499))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, first, 10)

	for _, r := range first {
		assert.True(t, strings.ContainsRune(characters, r))
	}

	second, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
