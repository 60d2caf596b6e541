package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{Model: "gemini-2.5-flash"})
	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestFactory_PropagatesInitError(t *testing.T) {
	m, err := Factory(Config{})(context.Background())
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestNew_CreatesChat(t *testing.T) {
	c, err := New(context.Background(), Config{
		APIKey:            "test-key",
		Model:             "gemini-2.5-flash",
		SystemInstruction: "Eres Fin.",
	})
	require.NoError(t, err)
	assert.NotNil(t, c.chat)
}
